// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

func requireRow(ctx context.Context, tx *sql.Tx, entity string, id int64) error {
	table := "users"
	if entity == models.EntityFilm {
		table = "films"
	}
	found, err := exists(ctx, tx, `SELECT COUNT(*) FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to check %s %d: %w", entity, id, err)
	}
	if !found {
		return models.NotFound(entity, id)
	}
	return nil
}

// ========================================
// Likes
// ========================================

// AddLike inserts the edge; a duplicate is a silent no-op.
func (db *DB) AddLike(ctx context.Context, filmID, userID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, models.EntityFilm, filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO likes (film_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`, filmID, userID)
		if err != nil && !isUniqueConstraintError(err) {
			return fmt.Errorf("failed to add like: %w", err)
		}
		return nil
	})
}

// RemoveLike deletes the edge if present.
func (db *DB) RemoveLike(ctx context.Context, filmID, userID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, models.EntityFilm, filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE film_id = ? AND user_id = ?`, filmID, userID); err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		return nil
	})
}

// ========================================
// Friendships
// ========================================

// AddFriend inserts userID -> friendID. When the reverse edge already exists
// both edges are marked confirmed; a reverse edge that is already confirmed
// keeps its original confirmation time.
func (db *DB) AddFriend(ctx context.Context, userID, friendID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, friendID); err != nil {
			return err
		}

		now := db.now().UTC()
		res, err := tx.ExecContext(ctx,
			`INSERT INTO friendships (user_id, friend_id, status, created_at) VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING`,
			userID, friendID, string(models.FriendshipPending), now)
		if err != nil {
			if isUniqueConstraintError(err) {
				return nil
			}
			return fmt.Errorf("failed to add friend: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil
		}

		var reverse int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM friendships WHERE user_id = ? AND friend_id = ?`, friendID, userID).Scan(&reverse)
		if err != nil {
			return fmt.Errorf("failed to look up reverse friendship: %w", err)
		}
		if reverse == 0 {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE friendships SET status = ?, confirmed_at = ?
			WHERE ((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?))
			  AND status <> ?`,
			string(models.FriendshipConfirmed), now,
			userID, friendID, friendID, userID,
			string(models.FriendshipConfirmed)); err != nil {
			return fmt.Errorf("failed to confirm friendship: %w", err)
		}
		return nil
	})
}

// RemoveFriend deletes userID -> friendID if present. The reverse edge keeps
// its status.
func (db *DB) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, models.EntityUser, userID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, models.EntityUser, friendID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM friendships WHERE user_id = ? AND friend_id = ?`, userID, friendID); err != nil {
			return fmt.Errorf("failed to remove friend: %w", err)
		}
		return nil
	})
}

// FriendIDs returns the recipients of userID's outgoing edges.
func (db *DB) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	if _, err := db.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT friend_id FROM friendships WHERE user_id = ? ORDER BY friend_id`, userID)
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

// Friendships returns userID's outgoing edges with their stored status.
func (db *DB) Friendships(ctx context.Context, userID int64) ([]models.Friendship, error) {
	if _, err := db.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT friend_id, status, created_at, confirmed_at
		FROM friendships
		WHERE user_id = ?
		ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships of user %d: %w", userID, err)
	}
	defer rows.Close()

	edges := []models.Friendship{}
	for rows.Next() {
		var (
			e         models.Friendship
			status    sql.NullString
			confirmed sql.NullTime
		)
		if err := rows.Scan(&e.RecipientID, &status, &e.CreatedAt, &confirmed); err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		e.RequesterID = userID
		e.CreatedAt = e.CreatedAt.UTC()
		e.Status = models.FriendshipPending
		if status.String == string(models.FriendshipConfirmed) && confirmed.Valid {
			e.Confirm(confirmed.Time.UTC())
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
