// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package memory

import (
	"context"
	"slices"

	"github.com/tomtom215/marquee/internal/models"
)

// filmView copies a stored film and attaches its current likes.
// Caller holds at least the read lock.
func (s *Store) filmView(f models.Film) models.Film {
	f.GenreIDs = slices.Clone(f.GenreIDs)
	if f.MpaID != nil {
		id := *f.MpaID
		f.MpaID = &id
	}
	likes := make([]int64, 0, len(s.likes[f.ID]))
	for userID := range s.likes[f.ID] {
		likes = append(likes, userID)
	}
	slices.Sort(likes)
	f.Likes = likes
	return f
}

// stored normalizes a film for storage. Likes belong to the ledger.
func stored(f *models.Film) models.Film {
	c := *f
	c.GenreIDs = models.NormalizeGenreIDs(f.GenreIDs)
	c.Likes = nil
	if f.MpaID != nil {
		id := *f.MpaID
		c.MpaID = &id
	}
	return c
}

func (s *Store) ListFilms(_ context.Context) ([]models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Film, 0, len(s.films))
	for _, f := range s.films {
		out = append(out, s.filmView(f))
	}
	slices.SortFunc(out, func(a, b models.Film) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (s *Store) GetFilm(_ context.Context, id int64) (*models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.films[id]
	if !ok {
		return nil, models.NotFound(models.EntityFilm, id)
	}
	v := s.filmView(f)
	return &v, nil
}

func (s *Store) CreateFilm(_ context.Context, f *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := stored(f)
	rec.ID = s.filmSeq.Next()
	s.films[rec.ID] = rec

	f.ID = rec.ID
	f.GenreIDs = slices.Clone(rec.GenreIDs)
	f.Likes = []int64{}
	return nil
}

func (s *Store) UpdateFilm(_ context.Context, f *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[f.ID]; !ok {
		return models.NotFound(models.EntityFilm, f.ID)
	}
	rec := stored(f)
	s.films[f.ID] = rec

	v := s.filmView(rec)
	f.GenreIDs = v.GenreIDs
	f.Likes = v.Likes
	return nil
}

func (s *Store) DeleteFilm(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[id]; !ok {
		return models.NotFound(models.EntityFilm, id)
	}
	delete(s.films, id)
	delete(s.likes, id)
	return nil
}

func cmpID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
