// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee


// Package main is the entry point for the marquee server.
//
// marquee keeps a film catalog, a user registry and two relationship ledgers
// (likes and one-directional friendships) behind a JSON HTTP API.
//
// # Startup
//
//  1. Configuration: defaults, then config.yaml, then environment (koanf v2)
//  2. Logging: zerolog, bridged to slog for the supervisor
//  3. Storage: memory, DuckDB or PostgreSQL, selected by STORAGE_BACKEND and
//     wrapped with Prometheus instrumentation
//  4. Services and router: chi with CORS, httprate, compression and metrics
//  5. Supervisor tree: store monitor (data layer) and HTTP server (api layer)
//
// # Signals
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
// in-flight requests for SHUTDOWN_TIMEOUT, then the store is closed.
//
// # Examples
//
// In-memory, for development:
//
//	./marquee
//
// DuckDB file:
//
//	export STORAGE_BACKEND=duckdb
//	export DUCKDB_PATH=/data/marquee.duckdb
//	./marquee
//
// PostgreSQL with migrations applied on start:
//
//	export STORAGE_BACKEND=postgres
//	export POSTGRES_DSN=postgres://marquee:secret@db:5432/marquee?sslmode=disable
//	./marquee
package main
