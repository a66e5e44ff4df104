// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package storage defines the persistence port shared by every Marquee backend.
//
// A Store combines three concerns:
//
//   - Reference catalogs (genres, MPA ratings): seeded, read-only
//   - Entity stores (films, users): CRUD keyed by store-assigned int64 IDs
//   - Relationship ledger (likes, friendships): set-semantics edges
//
// Contract shared by all backends (enforced by storagetest.Run):
//
//   - Get, Update and Delete on a missing id return models.ErrNotFound
//   - Films are returned with GenreIDs and Likes sorted ascending
//   - Edge inserts are idempotent; edge removals of absent edges are no-ops
//   - Edge mutations on unknown endpoints return models.ErrNotFound
//   - Deleting an entity removes every edge that references it
//   - Replacing a film's genre set is atomic
//   - A confirmed friendship edge stays confirmed until that edge is removed
//
// Implementations:
//
//   - memory: mutex-guarded maps, used by default and by unit tests
//   - database (DuckDB): embedded analytical store via database/sql
//   - postgres: pgx v4 pool with goose migrations
package storage
