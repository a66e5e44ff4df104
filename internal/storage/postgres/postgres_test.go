// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
	"github.com/tomtom215/marquee/internal/storage/storagetest"
	"github.com/tomtom215/marquee/internal/testinfra"
)

// startPostgres boots one server per test and returns a factory that hands out
// a freshly truncated store for each subtest.
func startPostgres(t *testing.T) (storagetest.Factory, *config.PostgresConfig) {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start postgres: %v", err)
	}
	t.Cleanup(func() { testinfra.CleanupContainer(t, context.Background(), pg) })

	cfg := &config.PostgresConfig{DSN: pg.DSN, MaxConns: 4, MigrateOnStart: true}

	factory := func(t *testing.T) storage.Store {
		t.Helper()
		ctx := context.Background()

		s, err := Open(ctx, cfg)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if _, err := s.pool.Exec(ctx,
			`TRUNCATE likes, friendships, film_genres, films, users RESTART IDENTITY`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return s
	}
	return factory, cfg
}

func TestPostgresConformance(t *testing.T) {
	factory, _ := startPostgres(t)
	storagetest.Run(t, factory)
}

func TestPostgresMigrationsIdempotent(t *testing.T) {
	_, cfg := startPostgres(t)
	ctx := context.Background()

	s, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	version, err := s.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != 4 {
		t.Errorf("SchemaVersion = %d, want 4", version)
	}
}

func TestPostgresConfirmedAtUsesClock(t *testing.T) {
	factory, _ := startPostgres(t)
	ctx := context.Background()

	s := factory(t).(*Store)
	defer s.Close()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a := storagetest.NewUser("alpha")
	b := storagetest.NewUser("bravo")
	for _, u := range []*models.User{a, b} {
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
	}

	if err := s.AddFriend(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("AddFriend: %v", err)
	}
	if err := s.AddFriend(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("AddFriend reverse: %v", err)
	}

	edges, err := s.Friendships(ctx, a.ID)
	if err != nil {
		t.Fatalf("Friendships: %v", err)
	}
	if len(edges) != 1 || edges[0].ConfirmedAt == nil || !edges[0].ConfirmedAt.Equal(fixed) {
		t.Errorf("edges = %+v, want confirmed at %v", edges, fixed)
	}
}

func TestPostgresPingAfterClose(t *testing.T) {
	factory, _ := startPostgres(t)

	s := factory(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Ping(context.Background()); err != storage.ErrClosed {
		t.Errorf("Ping after Close = %v, want ErrClosed", err)
	}
}
