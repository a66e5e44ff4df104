// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/tomtom215/marquee/internal/models"
)

var existsQueries = map[string]string{
	models.EntityFilm: `SELECT 1 FROM films WHERE id = $1`,
	models.EntityUser: `SELECT 1 FROM users WHERE id = $1`,
}

// requireRow reports NotFound for the first missing id.
func requireRow(ctx context.Context, q querier, entity string, ids ...int64) error {
	for _, id := range ids {
		found, err := rowExists(ctx, q, existsQueries[entity], id)
		if err != nil {
			return fmt.Errorf("failed to check %s %d: %w", entity, id, err)
		}
		if !found {
			return models.NotFound(entity, id)
		}
	}
	return nil
}

func (s *Store) AddLike(ctx context.Context, filmID, userID int64) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireRow(ctx, tx, models.EntityFilm, filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO likes (film_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, filmID, userID); err != nil {
			return fmt.Errorf("failed to add like: %w", err)
		}
		return nil
	})
}

func (s *Store) RemoveLike(ctx context.Context, filmID, userID int64) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireRow(ctx, tx, models.EntityFilm, filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM likes WHERE film_id = $1 AND user_id = $2`, filmID, userID); err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		return nil
	})
}

// AddFriend inserts userID -> friendID. When the reverse edge already exists
// both edges are marked confirmed; a reverse edge that is already confirmed
// keeps its original confirmation time.
func (s *Store) AddFriend(ctx context.Context, userID, friendID int64) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireRow(ctx, tx, models.EntityUser, userID, friendID); err != nil {
			return err
		}

		now := s.now().UTC()
		tag, err := tx.Exec(ctx,
			`INSERT INTO friendships (user_id, friend_id, status, created_at)
			 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			userID, friendID, string(models.FriendshipPending), now)
		if err != nil {
			return fmt.Errorf("failed to add friend: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `
			UPDATE friendships SET status = $1, confirmed_at = $2
			WHERE ((user_id = $3 AND friend_id = $4) OR (user_id = $4 AND friend_id = $3))
			  AND status <> $1
			  AND EXISTS (SELECT 1 FROM friendships WHERE user_id = $4 AND friend_id = $3)`,
			string(models.FriendshipConfirmed), now, userID, friendID); err != nil {
			return fmt.Errorf("failed to confirm friendship: %w", err)
		}
		return nil
	})
}

// RemoveFriend deletes userID -> friendID. The reverse edge, if any, is left
// untouched, including its confirmed status.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := requireRow(ctx, tx, models.EntityUser, userID, friendID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`, userID, friendID); err != nil {
			return fmt.Errorf("failed to remove friend: %w", err)
		}
		return nil
	})
}

func (s *Store) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	if err := requireRow(ctx, s.pool, models.EntityUser, userID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends of user %d: %w", userID, err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) Friendships(ctx context.Context, userID int64) ([]models.Friendship, error) {
	if err := requireRow(ctx, s.pool, models.EntityUser, userID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT friend_id, status, created_at, confirmed_at
		FROM friendships WHERE user_id = $1 ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships of user %d: %w", userID, err)
	}
	defer rows.Close()

	edges := []models.Friendship{}
	for rows.Next() {
		var (
			e         models.Friendship
			status    string
			confirmed *time.Time
		)
		if err := rows.Scan(&e.RecipientID, &status, &e.CreatedAt, &confirmed); err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		e.RequesterID = userID
		e.Status = models.FriendshipStatus(status)
		e.CreatedAt = e.CreatedAt.UTC()
		if confirmed != nil {
			at := confirmed.UTC()
			e.ConfirmedAt = &at
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
