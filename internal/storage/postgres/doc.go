// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package postgres implements storage.Store on PostgreSQL through a pgx
connection pool.

The schema is versioned with goose; migrations are embedded in the binary and
applied by Migrate (or by Open when MigrateOnStart is set). Referential
integrity is enforced by foreign keys, so deleting a film or user cascades to
its genre links, likes and friendship edges inside the database. Friendship
status is stored on each edge and flipped in the same transaction that adds the
reverse edge. Removing an edge never demotes its reverse edge.
*/
package postgres
