// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"slices"

	"github.com/tomtom215/marquee/internal/models"
)

// DefaultPopularCount is used when the caller does not ask for a size.
const DefaultPopularCount = 10

// RankPopular orders films by descending like count, breaking ties by
// ascending id, and keeps at most count entries. The input is not modified.
func RankPopular(films []models.Film, count int) []models.Film {
	if count <= 0 {
		return []models.Film{}
	}

	ranked := slices.Clone(films)
	slices.SortFunc(ranked, func(a, b models.Film) int {
		if c := b.LikeCount() - a.LikeCount(); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}

// IntersectIDs returns the ids present in both ascending, duplicate-free
// slices, in ascending order.
func IntersectIDs(a, b []int64) []int64 {
	out := make([]int64, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
