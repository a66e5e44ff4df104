// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the domain types shared by every Marquee component.

Key Components:

  - Film: catalog entry with MPA reference, genre references and liking users
  - User: account identity (email, login, display name, birthday)
  - Genre / MpaRating: immutable reference data
  - Friendship: one-directional follow edge with a pending/confirmed status
  - FilmDetails: read-side view with catalog names resolved
  - Error: typed error kinds (NotFound, Validation, InvalidOperation)

Entities carry identity and scalar fields only. Relationship membership
(likes, friendships) is owned by the storage ledger and copied onto read
models when they are loaded, never written back from them.
*/
package models
