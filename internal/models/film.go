// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"slices"
	"time"
)

// CinemaEpoch is the first public film screening (1895-12-28). Release dates
// before it are rejected.
var CinemaEpoch = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// MaxDescriptionLength is the maximum description length in code points.
const MaxDescriptionLength = 200

// Film is a catalog entry. GenreIDs and Likes are kept sorted ascending.
//
// Likes is derived from the like ledger on read and ignored on write.
type Film struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"notblank"`
	Description string    `json:"description" validate:"max=200"`
	ReleaseDate time.Time `json:"releaseDate" validate:"releasedate"`
	Duration    int       `json:"duration" validate:"gt=0"`
	MpaID       *int      `json:"mpaId,omitempty"`
	GenreIDs    []int     `json:"genreIds"`
	Likes       []int64   `json:"likes"`
}

// LikeCount returns the number of users who liked the film.
func (f *Film) LikeCount() int {
	return len(f.Likes)
}

// Normalize sorts and de-duplicates the genre and like sets in place.
func (f *Film) Normalize() {
	f.GenreIDs = NormalizeGenreIDs(f.GenreIDs)
	f.Likes = NormalizeIDs(f.Likes)
}

// NormalizeGenreIDs returns the unique genre ids in ascending order.
// A nil or empty input yields an empty, non-nil slice.
func NormalizeGenreIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	out = append(out, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

// NormalizeIDs returns the unique ids in ascending order.
func NormalizeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	out = append(out, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

// FilmDetails is the read-side view of a Film with catalog names resolved.
type FilmDetails struct {
	Film
	Mpa    *MpaRating `json:"mpa,omitempty"`
	Genres []Genre    `json:"genres"`
}
