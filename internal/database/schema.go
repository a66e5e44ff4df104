// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

// seedCatalogs inserts the default genres and MPA ratings. Existing rows
// are left untouched so restarts are harmless.
func (db *DB) seedCatalogs() error {
	ctx, cancel := schemaContext()
	defer cancel()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		for _, g := range models.DefaultGenres() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO genres (id, name) VALUES (?, ?) ON CONFLICT DO NOTHING`, g.ID, g.Name); err != nil {
				return fmt.Errorf("failed to seed genre %d: %w", g.ID, err)
			}
		}
		for _, m := range models.DefaultMpaRatings() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO mpa_ratings (id, name) VALUES (?, ?) ON CONFLICT DO NOTHING`, m.ID, m.Name); err != nil {
				return fmt.Errorf("failed to seed mpa rating %d: %w", m.ID, err)
			}
		}
		return nil
	})
}

func (db *DB) ListGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
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

func (db *DB) GetGenre(ctx context.Context, id int) (*models.Genre, error) {
	var g models.Genre
	err := db.conn.QueryRowContext(ctx, `SELECT id, name FROM genres WHERE id = ?`, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.EntityGenre, int64(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	return &g, nil
}

func (db *DB) ListMpa(ctx context.Context) ([]models.MpaRating, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mpa ratings: %w", err)
	}
	defer rows.Close()

	ratings := []models.MpaRating{}
	for rows.Next() {
		var m models.MpaRating
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan mpa rating: %w", err)
		}
		ratings = append(ratings, m)
	}
	return ratings, rows.Err()
}

func (db *DB) GetMpa(ctx context.Context, id int) (*models.MpaRating, error) {
	var m models.MpaRating
	err := db.conn.QueryRowContext(ctx, `SELECT id, name FROM mpa_ratings WHERE id = ?`, id).Scan(&m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.EntityMpa, int64(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mpa rating %d: %w", id, err)
	}
	return &m, nil
}
