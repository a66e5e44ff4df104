// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// Migration represents a versioned database migration.
type Migration struct {
	Version     int       // Unique version number (monotonically increasing)
	Name        string    // Human-readable migration name
	Description string    // Description of what this migration does
	Statements  []string  // SQL statements, executed in order
	AppliedAt   time.Time // When the migration was applied (populated on query)
}

// schemaMigrationsTable creates the migration tracking table
const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// getMigrations returns all versioned migrations in order.
// Migrations are append-only: never modify or remove one that has shipped.
func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Name:        "create_catalogs",
			Description: "Genre and MPA rating reference tables",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS genres (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL
)`,
				`CREATE TABLE IF NOT EXISTS mpa_ratings (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL
)`,
			},
		},
		{
			Version:     2,
			Name:        "create_films",
			Description: "Films with sequence-assigned ids and their genre references",
			Statements: []string{
				`CREATE SEQUENCE IF NOT EXISTS film_id_seq START 1`,
				`CREATE TABLE IF NOT EXISTS films (
	id BIGINT PRIMARY KEY DEFAULT nextval('film_id_seq'),
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	release_date DATE NOT NULL,
	duration INTEGER NOT NULL,
	mpa_id INTEGER
)`,
				`CREATE TABLE IF NOT EXISTS film_genres (
	film_id BIGINT NOT NULL,
	genre_id INTEGER NOT NULL
)`,
				`CREATE INDEX IF NOT EXISTS idx_film_genres_film ON film_genres(film_id)`,
			},
		},
		{
			Version:     3,
			Name:        "create_users",
			Description: "User accounts with sequence-assigned ids",
			Statements: []string{
				`CREATE SEQUENCE IF NOT EXISTS user_id_seq START 1`,
				`CREATE TABLE IF NOT EXISTS users (
	id BIGINT PRIMARY KEY DEFAULT nextval('user_id_seq'),
	email TEXT NOT NULL,
	login TEXT NOT NULL,
	name TEXT NOT NULL,
	birthday DATE
)`,
			},
		},
		{
			Version:     4,
			Name:        "create_ledger",
			Description: "Like and friendship edge tables",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS likes (
	film_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	PRIMARY KEY (film_id, user_id)
)`,
				`CREATE TABLE IF NOT EXISTS friendships (
	user_id BIGINT NOT NULL,
	friend_id BIGINT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (user_id, friend_id)
)`,
			},
		},
		{
			Version:     5,
			Name:        "persist_friendship_status",
			Description: "Store friendship status and confirmation time on each edge",
			Statements: []string{
				`ALTER TABLE friendships ADD COLUMN IF NOT EXISTS status VARCHAR DEFAULT 'pending'`,
				`ALTER TABLE friendships ADD COLUMN IF NOT EXISTS confirmed_at TIMESTAMP`,
				`UPDATE friendships SET status = 'confirmed', confirmed_at = (
	SELECT GREATEST(friendships.created_at, r.created_at) FROM friendships r
	WHERE r.user_id = friendships.friend_id AND r.friend_id = friendships.user_id
)
WHERE EXISTS (
	SELECT 1 FROM friendships r
	WHERE r.user_id = friendships.friend_id AND r.friend_id = friendships.user_id
)`,
			},
		},
	}
}

// createMigrationsTable creates the schema_migrations table if it doesn't exist
func (db *DB) createMigrationsTable(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, schemaMigrationsTable)
	return err
}

// getAppliedMigrations returns a map of version -> Migration for all applied migrations
func (db *DB) getAppliedMigrations(ctx context.Context) (map[int]Migration, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version, name, description, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]Migration)
	for rows.Next() {
		var m Migration
		if err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[m.Version] = m
	}
	return applied, rows.Err()
}

// runVersionedMigrations executes only the migrations not yet recorded.
func (db *DB) runVersionedMigrations() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if err := db.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range getMigrations() {
		if _, exists := applied[m.Version]; exists {
			continue
		}

		for _, stmt := range m.Statements {
			if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
			}
		}

		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`,
			m.Version, m.Name, m.Description)
		if err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}

		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}

	return nil
}

// GetCurrentSchemaVersion returns the highest applied migration version
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// GetMigrationHistory returns all applied migrations in order
func (db *DB) GetMigrationHistory(ctx context.Context) ([]Migration, error) {
	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	history := make([]Migration, 0, len(applied))
	for _, m := range getMigrations() {
		if a, ok := applied[m.Version]; ok {
			history = append(history, a)
		}
	}
	return history, nil
}
