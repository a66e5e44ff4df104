// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// Genre is a reference catalog item.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MpaRating is a Motion Picture Association rating catalog item.
type MpaRating struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultGenres is the genre catalog seeded by every storage backend.
func DefaultGenres() []Genre {
	return []Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Animation"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
}

// DefaultMpaRatings is the MPA catalog seeded by every storage backend.
func DefaultMpaRatings() []MpaRating {
	return []MpaRating{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}
