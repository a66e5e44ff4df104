// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/storage"
	"github.com/tomtom215/marquee/internal/storage/memory"
	"github.com/tomtom215/marquee/internal/storage/postgres"
)

// openStore builds the configured backend wrapped with query metrics.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.Storage.Backend {
	case storage.BackendMemory:
		store = memory.New()
		logging.Warn().Msg("Using in-memory storage; data is lost on restart")

	case storage.BackendDuckDB:
		store, err = database.New(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
		logging.Info().Str("path", cfg.Database.Path).Msg("DuckDB storage initialized")

	case storage.BackendPostgres:
		store, err = postgres.Open(ctx, &cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		logging.Info().Bool("migrate_on_start", cfg.Postgres.MigrateOnStart).Msg("PostgreSQL storage initialized")

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return storage.Instrument(store, cfg.Storage.Backend), nil
}
