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

const filmColumns = `id, name, description, release_date, duration, mpa_id`

func scanFilm(row pgx.Row) (models.Film, error) {
	var (
		f   models.Film
		mpa *int32
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration, &mpa); err != nil {
		return f, err
	}
	f.ReleaseDate = f.ReleaseDate.UTC()
	if mpa != nil {
		id := int(*mpa)
		f.MpaID = &id
	}
	f.GenreIDs = []int{}
	f.Likes = []int64{}
	return f, nil
}

func mpaArg(id *int) interface{} {
	if id == nil {
		return nil
	}
	return int32(*id)
}

func (s *Store) ListFilms(ctx context.Context) ([]models.Film, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+filmColumns+` FROM films ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list films: %w", err)
	}

	films := []models.Film{}
	index := make(map[int64]int)
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		index[f.ID] = len(films)
		films = append(films, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachEdges(ctx, films, index, nil); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *Store) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	f, err := scanFilm(s.pool.QueryRow(ctx, `SELECT `+filmColumns+` FROM films WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NotFound(models.EntityFilm, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get film %d: %w", id, err)
	}

	films := []models.Film{f}
	if err := s.attachEdges(ctx, films, map[int64]int{id: 0}, []int64{id}); err != nil {
		return nil, err
	}
	return &films[0], nil
}

// attachEdges fills GenreIDs and Likes. A nil ids slice loads every film's edges.
func (s *Store) attachEdges(ctx context.Context, films []models.Film, index map[int64]int, ids []int64) error {
	filter, args := "", []interface{}{}
	if ids != nil {
		filter, args = ` WHERE film_id = ANY($1)`, []interface{}{ids}
	}

	genreRows, err := s.pool.Query(ctx,
		`SELECT film_id, genre_id FROM film_genres`+filter+` ORDER BY film_id, genre_id`, args...)
	if err != nil {
		return fmt.Errorf("failed to load film genres: %w", err)
	}
	for genreRows.Next() {
		var (
			filmID  int64
			genreID int32
		)
		if err := genreRows.Scan(&filmID, &genreID); err != nil {
			genreRows.Close()
			return fmt.Errorf("failed to scan film genre: %w", err)
		}
		if i, ok := index[filmID]; ok {
			films[i].GenreIDs = append(films[i].GenreIDs, int(genreID))
		}
	}
	genreRows.Close()
	if err := genreRows.Err(); err != nil {
		return err
	}

	likeRows, err := s.pool.Query(ctx,
		`SELECT film_id, user_id FROM likes`+filter+` ORDER BY film_id, user_id`, args...)
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

func (s *Store) CreateFilm(ctx context.Context, f *models.Film) error {
	genres := models.NormalizeGenreIDs(f.GenreIDs)

	var id int64
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO films (name, description, release_date, duration, mpa_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			f.Name, f.Description, f.ReleaseDate.UTC(), f.Duration, mpaArg(f.MpaID),
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

func (s *Store) UpdateFilm(ctx context.Context, f *models.Film) error {
	genres := models.NormalizeGenreIDs(f.GenreIDs)

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE films SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
			 WHERE id = $6`,
			f.Name, f.Description, f.ReleaseDate.UTC(), f.Duration, mpaArg(f.MpaID), f.ID)
		if err != nil {
			return fmt.Errorf("failed to update film %d: %w", f.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return models.NotFound(models.EntityFilm, f.ID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, f.ID); err != nil {
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

// DeleteFilm removes the film; genre links and likes go with it via ON DELETE CASCADE.
func (s *Store) DeleteFilm(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete film %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound(models.EntityFilm, id)
	}
	return nil
}

func insertFilmGenres(ctx context.Context, tx pgx.Tx, filmID int64, genres []int) error {
	if len(genres) == 0 {
		return nil
	}

	ids := make([]int32, len(genres))
	for i, g := range genres {
		ids[i] = int32(g)
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO film_genres (film_id, genre_id) SELECT $1, unnest($2::integer[])`, filmID, ids)
	if err != nil {
		return fmt.Errorf("failed to insert genres for film %d: %w", filmID, err)
	}
	return nil
}
