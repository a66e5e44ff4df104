// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage/memory"
)

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(memory.New())
	ctx := context.Background()

	genres, err := svc.ListGenres(ctx)
	if err != nil || len(genres) != 6 {
		t.Fatalf("ListGenres = %v, %v", genres, err)
	}
	mpa, err := svc.ListMpa(ctx)
	if err != nil || len(mpa) != 5 {
		t.Fatalf("ListMpa = %v, %v", mpa, err)
	}

	g, err := svc.GetGenre(ctx, 6)
	if err != nil || g.Name != "Action" {
		t.Errorf("GetGenre(6) = %v, %v", g, err)
	}
	m, err := svc.GetMpa(ctx, 5)
	if err != nil || m.Name != "NC-17" {
		t.Errorf("GetMpa(5) = %v, %v", m, err)
	}

	if _, err := svc.GetGenre(ctx, 7); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetGenre(7) = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetMpa(ctx, -1); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetMpa(-1) = %v, want ErrNotFound", err)
	}
}
