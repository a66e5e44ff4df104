// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package database provides the DuckDB implementation of storage.Store.
//
// # Overview
//
// DuckDB is embedded through the CGO driver github.com/duckdb/duckdb-go/v2
// and accessed with database/sql. A path of ":memory:" gives an isolated
// in-process database, which the tests use.
//
// # Files
//
//   - database.go: connection lifecycle and pool configuration
//   - migrations.go: versioned schema migrations tracked in schema_migrations
//   - schema.go: catalog seeding
//   - films.go / users.go: entity CRUD
//   - ledger.go: like and friendship edges
//   - tx.go: transaction helper with rollback logging
//
// # Schema
//
//	genres(id, name)            mpa_ratings(id, name)
//	films(id, name, description, release_date, duration, mpa_id)
//	film_genres(film_id, genre_id)
//	users(id, email, login, name, birthday)
//	likes(film_id, user_id)                     PRIMARY KEY (film_id, user_id)
//	friendships(user_id, friend_id, status, created_at, confirmed_at)
//	                                            PRIMARY KEY (user_id, friend_id)
//
// Film and user ids come from sequences (film_id_seq, user_id_seq) and are
// returned with INSERT ... RETURNING.
//
// # Integrity
//
// Tables carry no foreign keys. DuckDB checks constraints eagerly, so a
// parent row cannot be removed in the same transaction as its children.
// Cascades are therefore explicit, and every multi-statement write runs in
// one transaction through withTx.
//
// Friendship status is stored on each edge. Adding the reverse of an existing
// edge confirms both in one transaction; removing an edge leaves the status of
// its reverse edge alone.
package database
