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
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

const userColumns = `id, email, login, name, birthday`

func scanUser(row rowScanner) (models.User, error) {
	var (
		u        models.User
		birthday sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
		return u, err
	}
	if birthday.Valid {
		u.Birthday = birthday.Time.UTC()
	}
	return u, nil
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

func (db *DB) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	return db.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(db.conn.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.EntityUser, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

func (db *DB) GetUsers(ctx context.Context, ids []int64) ([]models.User, error) {
	ids = models.NormalizeIDs(ids)
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY id`
	return db.queryUsers(ctx, query, args...)
}

func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO users (email, login, name, birthday) VALUES (?, ?, ?, ?) RETURNING id`,
		u.Email, u.Login, u.Name, nullableDate(u.Birthday),
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (db *DB) UpdateUser(ctx context.Context, u *models.User) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE users SET email = ?, login = ?, name = ?, birthday = ? WHERE id = ?`,
		u.Email, u.Login, u.Name, nullableDate(u.Birthday), u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}
	if n == 0 {
		return models.NotFound(models.EntityUser, u.ID)
	}
	return nil
}

// DeleteUser removes the user, their likes and every friendship edge that
// starts or ends at them.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, `SELECT COUNT(*) FROM users WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to check user %d: %w", id, err)
		}
		if !found {
			return models.NotFound(models.EntityUser, id)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE user_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete likes of user %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM friendships WHERE user_id = ? OR friend_id = ?`, id, id); err != nil {
			return fmt.Errorf("failed to delete friendships of user %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		return nil
	})
}
