// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/tomtom215/marquee/internal/models"
)

func (s *Store) ListGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (s *Store) GetGenre(ctx context.Context, id int) (*models.Genre, error) {
	g := models.Genre{ID: id}
	err := s.pool.QueryRow(ctx, `SELECT name FROM genres WHERE id = $1`, id).Scan(&g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NotFound(models.EntityGenre, int64(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	return &g, nil
}

func (s *Store) ListMpa(ctx context.Context) ([]models.MpaRating, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list MPA ratings: %w", err)
	}
	defer rows.Close()

	ratings := []models.MpaRating{}
	for rows.Next() {
		var m models.MpaRating
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan MPA rating: %w", err)
		}
		ratings = append(ratings, m)
	}
	return ratings, rows.Err()
}

func (s *Store) GetMpa(ctx context.Context, id int) (*models.MpaRating, error) {
	m := models.MpaRating{ID: id}
	err := s.pool.QueryRow(ctx, `SELECT name FROM mpa_ratings WHERE id = $1`, id).Scan(&m.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NotFound(models.EntityMpa, int64(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get MPA rating %d: %w", id, err)
	}
	return &m, nil
}
