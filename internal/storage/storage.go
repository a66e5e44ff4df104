// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package storage

import (
	"context"

	"github.com/tomtom215/marquee/internal/models"
)

// Backend names accepted by configuration.
const (
	BackendMemory   = "memory"
	BackendDuckDB   = "duckdb"
	BackendPostgres = "postgres"
)

// CatalogStore serves the immutable genre and MPA reference data.
type CatalogStore interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id int) (*models.Genre, error)
	ListMpa(ctx context.Context) ([]models.MpaRating, error)
	GetMpa(ctx context.Context, id int) (*models.MpaRating, error)
}

// FilmStore persists films and their genre references.
type FilmStore interface {
	// ListFilms returns every film ordered by ascending id.
	ListFilms(ctx context.Context) ([]models.Film, error)
	GetFilm(ctx context.Context, id int64) (*models.Film, error)
	// CreateFilm assigns f.ID. Likes on f are ignored.
	CreateFilm(ctx context.Context, f *models.Film) error
	// UpdateFilm replaces scalar fields and the whole genre set.
	UpdateFilm(ctx context.Context, f *models.Film) error
	// DeleteFilm removes the film with its genre and like edges.
	DeleteFilm(ctx context.Context, id int64) error
}

// UserStore persists user accounts.
type UserStore interface {
	// ListUsers returns every user ordered by ascending id.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// GetUsers returns the users with the given ids ordered by ascending id.
	// Unknown ids are skipped.
	GetUsers(ctx context.Context, ids []int64) ([]models.User, error)
	// CreateUser assigns u.ID.
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	// DeleteUser removes the user with its likes and friendships in both
	// directions.
	DeleteUser(ctx context.Context, id int64) error
}

// LikeLedger records which users like which films.
type LikeLedger interface {
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
}

// FriendLedger records directed friendship edges.
//
// AddFriend confirms both edges when the reverse edge already exists.
// RemoveFriend deletes only the given edge; a confirmed reverse edge stays
// confirmed.
type FriendLedger interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	// FriendIDs returns the recipients of userID's outgoing edges, ascending.
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	// Friendships returns userID's outgoing edges ordered by recipient id.
	Friendships(ctx context.Context, userID int64) ([]models.Friendship, error)
}

// Store is the full persistence port.
type Store interface {
	CatalogStore
	FilmStore
	UserStore
	LikeLedger
	FriendLedger

	// Ping reports whether the backend can serve requests.
	Ping(ctx context.Context) error
	Close() error
}
