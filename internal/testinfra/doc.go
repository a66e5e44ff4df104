// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package testinfra starts throwaway Docker containers for integration tests.
//
// Everything here builds only with the integration tag:
//
//	go test -tags integration ./internal/storage/postgres/...
//
// Tests call SkipIfNoDocker first so machines without a Docker daemon skip
// instead of failing.
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg)
//
//	store, err := postgres.Open(ctx, &config.PostgresConfig{DSN: pg.DSN, MaxConns: 4, MigrateOnStart: true})
//
// The first run pulls the postgres image; later runs use the local cache.
package testinfra
