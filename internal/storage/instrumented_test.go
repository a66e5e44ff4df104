// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package storage_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/storage"
	"github.com/tomtom215/marquee/internal/storage/memory"
	"github.com/tomtom215/marquee/internal/storage/storagetest"
)

func TestInstrumentedConformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return storage.Instrument(memory.New(), "instrumented_test")
	})
}

func TestInstrumentedRecordsErrors(t *testing.T) {
	s := storage.Instrument(memory.New(), "instrumented_errors")
	defer s.Close()

	errs := metrics.DBQueryErrors.WithLabelValues("instrumented_errors", "get_film", "not_found")
	before := testutil.ToFloat64(errs)

	if _, err := s.GetFilm(context.Background(), 404); err == nil {
		t.Fatal("GetFilm(404) succeeded on empty store")
	}
	if _, err := s.ListGenres(context.Background()); err != nil {
		t.Fatalf("ListGenres: %v", err)
	}

	if got := testutil.ToFloat64(errs) - before; got != 1 {
		t.Errorf("storage_query_errors_total{get_film,not_found} delta = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(metrics.DBQueryDuration, "storage_query_duration_seconds"); n == 0 {
		t.Error("expected storage_query_duration_seconds samples")
	}
}
