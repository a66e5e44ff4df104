// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package service implements Marquee's business operations on top of a
storage.Store.

Key Components:

  - FilmService: film CRUD, likes, popularity ranking
  - UserService: user CRUD, friendships, friend lists, common friends
  - CatalogService: genre and MPA lookups

Every write passes the validation gate before storage is touched. Film
writes additionally resolve their MPA and genre references; a missing
reference fails with models.ErrNotFound and nothing is persisted.

Edge mutations (likes, friendships) check that both endpoints exist and
then delegate to the ledger, whose add and remove operations are
idempotent. Aggregates (popular films, friend lists, common friends) are
recomputed from the ledger on every read; there is no cache.

Errors are returned unmodified so the API layer can map them by kind with
errors.Is.
*/
package service
