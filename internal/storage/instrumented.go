// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package storage

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Instrument wraps s so every call is timed into storage_query_duration_seconds
// and failures are counted by error kind, labelled with backend.
func Instrument(s Store, backend string) Store {
	return &instrumented{next: s, backend: backend}
}

type instrumented struct {
	next    Store
	backend string
}

// track starts the clock; the returned func records the outcome.
//
//	defer i.track("get_film")(&err)
func (i *instrumented) track(op string) func(*error) {
	start := time.Now()
	return func(err *error) {
		metrics.RecordDBQuery(i.backend, op, time.Since(start), *err)
	}
}

func (i *instrumented) ListGenres(ctx context.Context) (_ []models.Genre, err error) {
	defer i.track("list_genres")(&err)
	return i.next.ListGenres(ctx)
}

func (i *instrumented) GetGenre(ctx context.Context, id int) (_ *models.Genre, err error) {
	defer i.track("get_genre")(&err)
	return i.next.GetGenre(ctx, id)
}

func (i *instrumented) ListMpa(ctx context.Context) (_ []models.MpaRating, err error) {
	defer i.track("list_mpa")(&err)
	return i.next.ListMpa(ctx)
}

func (i *instrumented) GetMpa(ctx context.Context, id int) (_ *models.MpaRating, err error) {
	defer i.track("get_mpa")(&err)
	return i.next.GetMpa(ctx, id)
}

func (i *instrumented) ListFilms(ctx context.Context) (_ []models.Film, err error) {
	defer i.track("list_films")(&err)
	return i.next.ListFilms(ctx)
}

func (i *instrumented) GetFilm(ctx context.Context, id int64) (_ *models.Film, err error) {
	defer i.track("get_film")(&err)
	return i.next.GetFilm(ctx, id)
}

func (i *instrumented) CreateFilm(ctx context.Context, f *models.Film) (err error) {
	defer i.track("create_film")(&err)
	return i.next.CreateFilm(ctx, f)
}

func (i *instrumented) UpdateFilm(ctx context.Context, f *models.Film) (err error) {
	defer i.track("update_film")(&err)
	return i.next.UpdateFilm(ctx, f)
}

func (i *instrumented) DeleteFilm(ctx context.Context, id int64) (err error) {
	defer i.track("delete_film")(&err)
	return i.next.DeleteFilm(ctx, id)
}

func (i *instrumented) ListUsers(ctx context.Context) (_ []models.User, err error) {
	defer i.track("list_users")(&err)
	return i.next.ListUsers(ctx)
}

func (i *instrumented) GetUser(ctx context.Context, id int64) (_ *models.User, err error) {
	defer i.track("get_user")(&err)
	return i.next.GetUser(ctx, id)
}

func (i *instrumented) GetUsers(ctx context.Context, ids []int64) (_ []models.User, err error) {
	defer i.track("get_users")(&err)
	return i.next.GetUsers(ctx, ids)
}

func (i *instrumented) CreateUser(ctx context.Context, u *models.User) (err error) {
	defer i.track("create_user")(&err)
	return i.next.CreateUser(ctx, u)
}

func (i *instrumented) UpdateUser(ctx context.Context, u *models.User) (err error) {
	defer i.track("update_user")(&err)
	return i.next.UpdateUser(ctx, u)
}

func (i *instrumented) DeleteUser(ctx context.Context, id int64) (err error) {
	defer i.track("delete_user")(&err)
	return i.next.DeleteUser(ctx, id)
}

func (i *instrumented) AddLike(ctx context.Context, filmID, userID int64) (err error) {
	defer i.track("add_like")(&err)
	return i.next.AddLike(ctx, filmID, userID)
}

func (i *instrumented) RemoveLike(ctx context.Context, filmID, userID int64) (err error) {
	defer i.track("remove_like")(&err)
	return i.next.RemoveLike(ctx, filmID, userID)
}

func (i *instrumented) AddFriend(ctx context.Context, userID, friendID int64) (err error) {
	defer i.track("add_friend")(&err)
	return i.next.AddFriend(ctx, userID, friendID)
}

func (i *instrumented) RemoveFriend(ctx context.Context, userID, friendID int64) (err error) {
	defer i.track("remove_friend")(&err)
	return i.next.RemoveFriend(ctx, userID, friendID)
}

func (i *instrumented) FriendIDs(ctx context.Context, userID int64) (_ []int64, err error) {
	defer i.track("friend_ids")(&err)
	return i.next.FriendIDs(ctx, userID)
}

func (i *instrumented) Friendships(ctx context.Context, userID int64) (_ []models.Friendship, err error) {
	defer i.track("friendships")(&err)
	return i.next.Friendships(ctx, userID)
}

func (i *instrumented) Ping(ctx context.Context) (err error) {
	defer i.track("ping")(&err)
	return i.next.Ping(ctx)
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
