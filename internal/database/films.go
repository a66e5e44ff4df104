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
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

const filmColumns = `id, name, description, release_date, duration, mpa_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFilm(row rowScanner) (models.Film, error) {
	var (
		f   models.Film
		mpa sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration, &mpa); err != nil {
		return f, err
	}
	f.ReleaseDate = f.ReleaseDate.UTC()
	if mpa.Valid {
		id := int(mpa.Int64)
		f.MpaID = &id
	}
	f.GenreIDs = []int{}
	f.Likes = []int64{}
	return f, nil
}

func nullableMpa(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}

// ListFilms returns every film with genres and likes attached.
func (db *DB) ListFilms(ctx context.Context) ([]models.Film, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT `+filmColumns+` FROM films ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list films: %w", err)
	}
	defer rows.Close()

	films := []models.Film{}
	index := make(map[int64]int)
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		index[f.ID] = len(films)
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachEdges(ctx, films, index, "", nil); err != nil {
		return nil, err
	}
	return films, nil
}

// GetFilm returns one film with genres and likes attached.
func (db *DB) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+filmColumns+` FROM films WHERE id = ?`, id)
	f, err := scanFilm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.EntityFilm, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get film %d: %w", id, err)
	}

	films := []models.Film{f}
	if err := db.attachEdges(ctx, films, map[int64]int{id: 0}, " WHERE film_id = ?", []any{id}); err != nil {
		return nil, err
	}
	return &films[0], nil
}

// attachEdges loads genre and like edges in ascending order and appends
// them to the films found in index.
func (db *DB) attachEdges(ctx context.Context, films []models.Film, index map[int64]int, where string, args []any) error {
	genreRows, err := db.conn.QueryContext(ctx,
		`SELECT film_id, genre_id FROM film_genres`+where+` ORDER BY film_id, genre_id`, args...)
	if err != nil {
		return fmt.Errorf("failed to load film genres: %w", err)
	}
	for genreRows.Next() {
		var filmID int64
		var genreID int
		if err := genreRows.Scan(&filmID, &genreID); err != nil {
			closeQuietly(genreRows)
			return fmt.Errorf("failed to scan film genre: %w", err)
		}
		if i, ok := index[filmID]; ok {
			films[i].GenreIDs = append(films[i].GenreIDs, genreID)
		}
	}
	if err := genreRows.Err(); err != nil {
		closeQuietly(genreRows)
		return err
	}
	closeQuietly(genreRows)

	likeRows, err := db.conn.QueryContext(ctx,
		`SELECT film_id, user_id FROM likes`+where+` ORDER BY film_id, user_id`, args...)
	if err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var filmID, userID int64
		if err := likeRows.Scan(&filmID, &userID); err != nil {
			return fmt.Errorf("failed to scan like: %w", err)
		}
		if i, ok := index[filmID]; ok {
			films[i].Likes = append(films[i].Likes, userID)
		}
	}
	return likeRows.Err()
}

// CreateFilm inserts the film and its genre references in one transaction.
func (db *DB) CreateFilm(ctx context.Context, f *models.Film) error {
	genres := models.NormalizeGenreIDs(f.GenreIDs)

	var id int64
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO films (name, description, release_date, duration, mpa_id)
			 VALUES (?, ?, ?, ?, ?) RETURNING id`,
			f.Name, f.Description, f.ReleaseDate.UTC(), f.Duration, nullableMpa(f.MpaID),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert film: %w", err)
		}
		return insertFilmGenres(ctx, tx, id, genres)
	})
	if err != nil {
		return err
	}

	f.ID = id
	f.GenreIDs = genres
	f.Likes = []int64{}
	return nil
}

// UpdateFilm replaces the film's fields and its whole genre set atomically.
func (db *DB) UpdateFilm(ctx context.Context, f *models.Film) error {
	genres := models.NormalizeGenreIDs(f.GenreIDs)

	err := db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE films SET name = ?, description = ?, release_date = ?, duration = ?, mpa_id = ?
			 WHERE id = ?`,
			f.Name, f.Description, f.ReleaseDate.UTC(), f.Duration, nullableMpa(f.MpaID), f.ID)
		if err != nil {
			return fmt.Errorf("failed to update film %d: %w", f.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return models.NotFound(models.EntityFilm, f.ID)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM film_genres WHERE film_id = ?`, f.ID); err != nil {
			return fmt.Errorf("failed to clear genres of film %d: %w", f.ID, err)
		}
		return insertFilmGenres(ctx, tx, f.ID, genres)
	})
	if err != nil {
		return err
	}

	f.GenreIDs = genres
	return nil
}

// DeleteFilm removes the film, its genre references and its likes.
func (db *DB) DeleteFilm(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, `SELECT COUNT(*) FROM films WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to check film %d: %w", id, err)
		}
		if !found {
			return models.NotFound(models.EntityFilm, id)
		}

		for _, q := range []string{
			`DELETE FROM likes WHERE film_id = ?`,
			`DELETE FROM film_genres WHERE film_id = ?`,
			`DELETE FROM films WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return fmt.Errorf("failed to delete film %d: %w", id, err)
			}
		}
		return nil
	})
}

// insertFilmGenres writes already de-duplicated genre ids in one statement.
func insertFilmGenres(ctx context.Context, tx *sql.Tx, filmID int64, genres []int) error {
	if len(genres) == 0 {
		return nil
	}

	placeholders := make([]string, len(genres))
	args := make([]any, 0, len(genres)*2)
	for i, g := range genres {
		placeholders[i] = "(?, ?)"
		args = append(args, filmID, g)
	}

	query := `INSERT INTO film_genres (film_id, genre_id) VALUES ` + strings.Join(placeholders, ", ")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert genres for film %d: %w", filmID, err)
	}
	return nil
}
