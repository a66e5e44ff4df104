// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation enforces write-time business rules for films and users.
//
// # Rules
//
// Film:
//   - name must not be blank
//   - description is at most 200 code points
//   - releaseDate must be on or after 1895-12-28
//   - duration must be strictly positive
//
// User:
//   - email must not be blank and must contain "@"
//   - login must not be blank and must not contain whitespace
//   - birthday must not be in the future
//   - a blank name is replaced with the login after successful validation
//
// Catalog references (MPA, genres) are not checked here; they need storage
// and are resolved by the service layer, which reports missing items as
// models.ErrNotFound.
//
// # Errors
//
// Failures are returned as *RequestValidationError, which unwraps to
// models.ErrValidation and exposes a per-field breakdown through Details.
//
// # Thread Safety
//
// GetValidator initializes the shared validator once with sync.Once; the
// returned instance is safe for concurrent use.
package validation
