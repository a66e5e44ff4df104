// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package storagetest is the conformance suite every storage.Store backend
// must pass. Backends call Run from their own tests with a factory that
// returns a fresh, empty store.
package storagetest

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
)

// Factory returns an isolated store. The suite closes it.
type Factory func(t *testing.T) storage.Store

// Run executes the full conformance suite.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, s storage.Store)
	}{
		{"CatalogsSeeded", testCatalogsSeeded},
		{"CatalogNotFound", testCatalogNotFound},
		{"FilmCreateAndGet", testFilmCreateAndGet},
		{"FilmGenresSortedAndUnique", testFilmGenresSortedAndUnique},
		{"FilmListOrder", testFilmListOrder},
		{"FilmUpdateReplacesGenres", testFilmUpdateReplacesGenres},
		{"FilmUpdateMissing", testFilmUpdateMissing},
		{"FilmDeleteCascadesLikes", testFilmDeleteCascadesLikes},
		{"UserCRUD", testUserCRUD},
		{"UserGetUsers", testUserGetUsers},
		{"LikeIdempotent", testLikeIdempotent},
		{"LikeRemoveAbsent", testLikeRemoveAbsent},
		{"LikeUnknownEndpoints", testLikeUnknownEndpoints},
		{"FriendDirected", testFriendDirected},
		{"FriendIdempotent", testFriendIdempotent},
		{"FriendConfirmation", testFriendConfirmation},
		{"FriendUnknownEndpoints", testFriendUnknownEndpoints},
		{"UserDeleteCascades", testUserDeleteCascades},
		{"Ping", testPing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() {
				if err := s.Close(); err != nil {
					t.Logf("close store: %v", err)
				}
			})
			tc.fn(t, s)
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

// NewFilm returns a valid film fixture.
func NewFilm(name string, genres ...int) *models.Film {
	return &models.Film{
		Name:        name,
		Description: name + " description",
		ReleaseDate: date(1999, time.March, 31),
		Duration:    136,
		MpaID:       intPtr(4),
		GenreIDs:    genres,
	}
}

// NewUser returns a valid user fixture.
func NewUser(login string) *models.User {
	return &models.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: date(1990, time.January, 2),
	}
}

func mustCreateFilm(t *testing.T, s storage.Store, f *models.Film) int64 {
	t.Helper()
	if err := s.CreateFilm(context.Background(), f); err != nil {
		t.Fatalf("CreateFilm(%q): %v", f.Name, err)
	}
	return f.ID
}

func mustCreateUser(t *testing.T, s storage.Store, login string) int64 {
	t.Helper()
	u := NewUser(login)
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%q): %v", login, err)
	}
	return u.ID
}

func mustFilm(t *testing.T, s storage.Store, id int64) *models.Film {
	t.Helper()
	f, err := s.GetFilm(context.Background(), id)
	if err != nil {
		t.Fatalf("GetFilm(%d): %v", id, err)
	}
	return f
}

func expectNotFound(t *testing.T, op string, err error) {
	t.Helper()
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("%s: error = %v, want ErrNotFound", op, err)
	}
}

func testCatalogsSeeded(t *testing.T, s storage.Store) {
	ctx := context.Background()

	genres, err := s.ListGenres(ctx)
	if err != nil {
		t.Fatalf("ListGenres: %v", err)
	}
	if !slices.Equal(genres, models.DefaultGenres()) {
		t.Errorf("ListGenres = %v, want %v", genres, models.DefaultGenres())
	}

	mpa, err := s.ListMpa(ctx)
	if err != nil {
		t.Fatalf("ListMpa: %v", err)
	}
	if !slices.Equal(mpa, models.DefaultMpaRatings()) {
		t.Errorf("ListMpa = %v, want %v", mpa, models.DefaultMpaRatings())
	}

	g, err := s.GetGenre(ctx, 3)
	if err != nil || g.Name != "Animation" {
		t.Errorf("GetGenre(3) = %v, %v; want Animation", g, err)
	}
	m, err := s.GetMpa(ctx, 3)
	if err != nil || m.Name != "PG-13" {
		t.Errorf("GetMpa(3) = %v, %v; want PG-13", m, err)
	}
}

func testCatalogNotFound(t *testing.T, s storage.Store) {
	ctx := context.Background()

	_, err := s.GetGenre(ctx, 999)
	expectNotFound(t, "GetGenre(999)", err)

	_, err = s.GetMpa(ctx, 0)
	expectNotFound(t, "GetMpa(0)", err)
}

func testFilmCreateAndGet(t *testing.T, s storage.Store) {
	in := NewFilm("The Matrix", 6, 4)
	id := mustCreateFilm(t, s, in)
	if id <= 0 {
		t.Fatalf("CreateFilm assigned id %d, want > 0", id)
	}

	got := mustFilm(t, s, id)
	if got.Name != in.Name || got.Description != in.Description || got.Duration != in.Duration {
		t.Errorf("GetFilm scalars = %+v, want %+v", got, in)
	}
	if !got.ReleaseDate.Equal(in.ReleaseDate) {
		t.Errorf("ReleaseDate = %v, want %v", got.ReleaseDate, in.ReleaseDate)
	}
	if got.MpaID == nil || *got.MpaID != 4 {
		t.Errorf("MpaID = %v, want 4", got.MpaID)
	}
	if len(got.Likes) != 0 {
		t.Errorf("Likes = %v, want empty", got.Likes)
	}

	second := mustCreateFilm(t, s, NewFilm("Alien"))
	if second <= id {
		t.Errorf("second id %d not greater than first %d", second, id)
	}

	_, err := s.GetFilm(context.Background(), second+100)
	expectNotFound(t, "GetFilm(unknown)", err)
}

func testFilmGenresSortedAndUnique(t *testing.T, s storage.Store) {
	id := mustCreateFilm(t, s, NewFilm("Toy Story", 1, 3, 2, 3))

	got := mustFilm(t, s, id)
	if want := []int{1, 2, 3}; !slices.Equal(got.GenreIDs, want) {
		t.Errorf("GenreIDs = %v, want %v", got.GenreIDs, want)
	}

	noGenres := NewFilm("Untitled")
	noGenres.MpaID = nil
	id = mustCreateFilm(t, s, noGenres)
	got = mustFilm(t, s, id)
	if len(got.GenreIDs) != 0 || got.MpaID != nil {
		t.Errorf("film without references = %+v", got)
	}
}

func testFilmListOrder(t *testing.T, s storage.Store) {
	a := mustCreateFilm(t, s, NewFilm("A"))
	b := mustCreateFilm(t, s, NewFilm("B"))
	c := mustCreateFilm(t, s, NewFilm("C"))

	films, err := s.ListFilms(context.Background())
	if err != nil {
		t.Fatalf("ListFilms: %v", err)
	}
	ids := make([]int64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	if want := []int64{a, b, c}; !slices.Equal(ids, want) {
		t.Errorf("ListFilms ids = %v, want %v", ids, want)
	}
}

func testFilmUpdateReplacesGenres(t *testing.T, s storage.Store) {
	ctx := context.Background()
	id := mustCreateFilm(t, s, NewFilm("Heat", 2, 4))

	upd := NewFilm("Heat (Director's Cut)", 6, 1)
	upd.ID = id
	upd.MpaID = nil
	upd.Duration = 170
	if err := s.UpdateFilm(ctx, upd); err != nil {
		t.Fatalf("UpdateFilm: %v", err)
	}

	got := mustFilm(t, s, id)
	if got.Name != "Heat (Director's Cut)" || got.Duration != 170 {
		t.Errorf("scalars not replaced: %+v", got)
	}
	if got.MpaID != nil {
		t.Errorf("MpaID = %v, want nil", *got.MpaID)
	}
	if want := []int{1, 6}; !slices.Equal(got.GenreIDs, want) {
		t.Errorf("GenreIDs = %v, want %v", got.GenreIDs, want)
	}

	upd.GenreIDs = nil
	if err := s.UpdateFilm(ctx, upd); err != nil {
		t.Fatalf("UpdateFilm(clear genres): %v", err)
	}
	if got := mustFilm(t, s, id); len(got.GenreIDs) != 0 {
		t.Errorf("GenreIDs = %v, want empty", got.GenreIDs)
	}
}

func testFilmUpdateMissing(t *testing.T, s storage.Store) {
	f := NewFilm("Ghost", 1)
	f.ID = 4242
	expectNotFound(t, "UpdateFilm(missing)", s.UpdateFilm(context.Background(), f))

	films, err := s.ListFilms(context.Background())
	if err != nil {
		t.Fatalf("ListFilms: %v", err)
	}
	if len(films) != 0 {
		t.Errorf("update of missing film persisted %d rows", len(films))
	}
}

func testFilmDeleteCascadesLikes(t *testing.T, s storage.Store) {
	ctx := context.Background()
	filmID := mustCreateFilm(t, s, NewFilm("Jaws", 4))
	other := mustCreateFilm(t, s, NewFilm("Jaws 2", 4))
	userID := mustCreateUser(t, s, "brody")

	for _, f := range []int64{filmID, other} {
		if err := s.AddLike(ctx, f, userID); err != nil {
			t.Fatalf("AddLike(%d): %v", f, err)
		}
	}

	if err := s.DeleteFilm(ctx, filmID); err != nil {
		t.Fatalf("DeleteFilm: %v", err)
	}
	_, err := s.GetFilm(ctx, filmID)
	expectNotFound(t, "GetFilm(deleted)", err)
	expectNotFound(t, "DeleteFilm(again)", s.DeleteFilm(ctx, filmID))

	if got := mustFilm(t, s, other); !slices.Equal(got.Likes, []int64{userID}) {
		t.Errorf("surviving film likes = %v, want [%d]", got.Likes, userID)
	}

	// A recreated film must not inherit stale edges.
	again := mustCreateFilm(t, s, NewFilm("Jaws 3"))
	if got := mustFilm(t, s, again); len(got.Likes) != 0 {
		t.Errorf("new film likes = %v, want empty", got.Likes)
	}
}

func testUserCRUD(t *testing.T, s storage.Store) {
	ctx := context.Background()

	u := NewUser("neo")
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID <= 0 {
		t.Fatalf("CreateUser assigned id %d", u.ID)
	}

	got, err := s.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != u.Email || got.Login != u.Login || got.Name != u.Name || !got.Birthday.Equal(u.Birthday) {
		t.Errorf("GetUser = %+v, want %+v", got, u)
	}

	u.Name = "Thomas Anderson"
	u.Birthday = time.Time{}
	if err := s.UpdateUser(ctx, u); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got, err = s.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser after update: %v", err)
	}
	if got.Name != "Thomas Anderson" || !got.Birthday.IsZero() {
		t.Errorf("updated user = %+v", got)
	}

	missing := NewUser("ghost")
	missing.ID = u.ID + 100
	expectNotFound(t, "UpdateUser(missing)", s.UpdateUser(ctx, missing))
	_, err = s.GetUser(ctx, missing.ID)
	expectNotFound(t, "GetUser(missing)", err)

	trinity := mustCreateUser(t, s, "trinity")
	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || users[0].ID != u.ID || users[1].ID != trinity {
		t.Errorf("ListUsers = %+v", users)
	}
}

func testUserGetUsers(t *testing.T, s storage.Store) {
	a := mustCreateUser(t, s, "a")
	b := mustCreateUser(t, s, "b")
	c := mustCreateUser(t, s, "c")

	users, err := s.GetUsers(context.Background(), []int64{c, a, 9999, a})
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	if want := []int64{a, c}; !slices.Equal(ids, want) {
		t.Errorf("GetUsers ids = %v, want %v (b=%d excluded)", ids, want, b)
	}

	empty, err := s.GetUsers(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("GetUsers(nil) = %v, %v", empty, err)
	}
}

func testLikeIdempotent(t *testing.T, s storage.Store) {
	ctx := context.Background()
	filmID := mustCreateFilm(t, s, NewFilm("Up", 3))
	u1 := mustCreateUser(t, s, "carl")
	u2 := mustCreateUser(t, s, "russell")

	for i := 0; i < 2; i++ {
		if err := s.AddLike(ctx, filmID, u2); err != nil {
			t.Fatalf("AddLike #%d: %v", i, err)
		}
	}
	if err := s.AddLike(ctx, filmID, u1); err != nil {
		t.Fatalf("AddLike: %v", err)
	}

	if got := mustFilm(t, s, filmID); !slices.Equal(got.Likes, []int64{u1, u2}) {
		t.Errorf("Likes = %v, want [%d %d]", got.Likes, u1, u2)
	}

	if err := s.RemoveLike(ctx, filmID, u2); err != nil {
		t.Fatalf("RemoveLike: %v", err)
	}
	if got := mustFilm(t, s, filmID); !slices.Equal(got.Likes, []int64{u1}) {
		t.Errorf("Likes after remove = %v, want [%d]", got.Likes, u1)
	}
}

func testLikeRemoveAbsent(t *testing.T, s storage.Store) {
	filmID := mustCreateFilm(t, s, NewFilm("Coco", 3))
	userID := mustCreateUser(t, s, "miguel")

	if err := s.RemoveLike(context.Background(), filmID, userID); err != nil {
		t.Fatalf("RemoveLike(never liked): %v", err)
	}
	if got := mustFilm(t, s, filmID); len(got.Likes) != 0 {
		t.Errorf("Likes = %v, want empty", got.Likes)
	}
}

func testLikeUnknownEndpoints(t *testing.T, s storage.Store) {
	ctx := context.Background()
	filmID := mustCreateFilm(t, s, NewFilm("Brazil", 1))
	userID := mustCreateUser(t, s, "sam")

	expectNotFound(t, "AddLike(unknown film)", s.AddLike(ctx, filmID+50, userID))
	expectNotFound(t, "AddLike(unknown user)", s.AddLike(ctx, filmID, userID+50))
	expectNotFound(t, "RemoveLike(unknown film)", s.RemoveLike(ctx, filmID+50, userID))
	expectNotFound(t, "RemoveLike(unknown user)", s.RemoveLike(ctx, filmID, userID+50))

	if got := mustFilm(t, s, filmID); len(got.Likes) != 0 {
		t.Errorf("Likes = %v, want empty", got.Likes)
	}
}

func friendIDs(t *testing.T, s storage.Store, userID int64) []int64 {
	t.Helper()
	ids, err := s.FriendIDs(context.Background(), userID)
	if err != nil {
		t.Fatalf("FriendIDs(%d): %v", userID, err)
	}
	return ids
}

func testFriendDirected(t *testing.T, s storage.Store) {
	ctx := context.Background()
	a := mustCreateUser(t, s, "alice")
	b := mustCreateUser(t, s, "bob")
	c := mustCreateUser(t, s, "carol")

	if err := s.AddFriend(ctx, a, c); err != nil {
		t.Fatalf("AddFriend(a,c): %v", err)
	}
	if err := s.AddFriend(ctx, a, b); err != nil {
		t.Fatalf("AddFriend(a,b): %v", err)
	}

	if got := friendIDs(t, s, a); !slices.Equal(got, []int64{b, c}) {
		t.Errorf("FriendIDs(a) = %v, want [%d %d]", got, b, c)
	}
	if got := friendIDs(t, s, b); len(got) != 0 {
		t.Errorf("FriendIDs(b) = %v, want empty (one-directional)", got)
	}

	if err := s.RemoveFriend(ctx, a, b); err != nil {
		t.Fatalf("RemoveFriend: %v", err)
	}
	if err := s.RemoveFriend(ctx, a, b); err != nil {
		t.Fatalf("RemoveFriend(absent): %v", err)
	}
	if got := friendIDs(t, s, a); !slices.Equal(got, []int64{c}) {
		t.Errorf("FriendIDs(a) after remove = %v, want [%d]", got, c)
	}
}

func testFriendIdempotent(t *testing.T, s storage.Store) {
	ctx := context.Background()
	a := mustCreateUser(t, s, "dave")
	b := mustCreateUser(t, s, "hal")

	for i := 0; i < 3; i++ {
		if err := s.AddFriend(ctx, a, b); err != nil {
			t.Fatalf("AddFriend #%d: %v", i, err)
		}
	}
	edges, err := s.Friendships(ctx, a)
	if err != nil {
		t.Fatalf("Friendships: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("Friendships = %v, want exactly one edge", edges)
	}
	if edges[0].Status != models.FriendshipPending {
		t.Errorf("Status = %q, want pending", edges[0].Status)
	}
}

func testFriendConfirmation(t *testing.T, s storage.Store) {
	ctx := context.Background()
	a := mustCreateUser(t, s, "romeo")
	b := mustCreateUser(t, s, "juliet")

	if err := s.AddFriend(ctx, a, b); err != nil {
		t.Fatalf("AddFriend(a,b): %v", err)
	}
	if err := s.AddFriend(ctx, b, a); err != nil {
		t.Fatalf("AddFriend(b,a): %v", err)
	}

	for _, id := range []int64{a, b} {
		edges, err := s.Friendships(ctx, id)
		if err != nil {
			t.Fatalf("Friendships(%d): %v", id, err)
		}
		if len(edges) != 1 {
			t.Fatalf("Friendships(%d) = %v, want one edge", id, edges)
		}
		e := edges[0]
		if e.RequesterID != id || e.Status != models.FriendshipConfirmed || e.ConfirmedAt == nil {
			t.Errorf("edge from %d = %+v, want confirmed", id, e)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("edge from %d has zero CreatedAt", id)
		}
	}

	before, err := s.Friendships(ctx, b)
	if err != nil {
		t.Fatalf("Friendships(b): %v", err)
	}
	confirmedAt := *before[0].ConfirmedAt

	if err := s.RemoveFriend(ctx, a, b); err != nil {
		t.Fatalf("RemoveFriend(a,b): %v", err)
	}
	edges, err := s.Friendships(ctx, b)
	if err != nil {
		t.Fatalf("Friendships(b): %v", err)
	}
	if len(edges) != 1 || edges[0].Status != models.FriendshipConfirmed ||
		edges[0].ConfirmedAt == nil || !edges[0].ConfirmedAt.Equal(confirmedAt) {
		t.Errorf("surviving edge = %+v, want still confirmed at %v", edges, confirmedAt)
	}
	if got := friendIDs(t, s, a); len(got) != 0 {
		t.Errorf("FriendIDs(a) after removal = %v, want empty", got)
	}

	// Re-adding the removed edge confirms it without touching the survivor.
	if err := s.AddFriend(ctx, a, b); err != nil {
		t.Fatalf("AddFriend(a,b) again: %v", err)
	}
	edges, err = s.Friendships(ctx, a)
	if err != nil {
		t.Fatalf("Friendships(a): %v", err)
	}
	if len(edges) != 1 || edges[0].Status != models.FriendshipConfirmed {
		t.Errorf("re-added edge = %+v, want confirmed", edges)
	}
	edges, err = s.Friendships(ctx, b)
	if err != nil {
		t.Fatalf("Friendships(b): %v", err)
	}
	if len(edges) != 1 || edges[0].ConfirmedAt == nil || !edges[0].ConfirmedAt.Equal(confirmedAt) {
		t.Errorf("survivor after re-add = %+v, want confirmed at %v", edges, confirmedAt)
	}
}

func testFriendUnknownEndpoints(t *testing.T, s storage.Store) {
	ctx := context.Background()
	a := mustCreateUser(t, s, "solo")

	expectNotFound(t, "AddFriend(unknown friend)", s.AddFriend(ctx, a, a+10))
	expectNotFound(t, "AddFriend(unknown user)", s.AddFriend(ctx, a+10, a))
	expectNotFound(t, "RemoveFriend(unknown)", s.RemoveFriend(ctx, a, a+10))

	_, err := s.FriendIDs(ctx, a+10)
	expectNotFound(t, "FriendIDs(unknown)", err)
	_, err = s.Friendships(ctx, a+10)
	expectNotFound(t, "Friendships(unknown)", err)

	if got := friendIDs(t, s, a); len(got) != 0 {
		t.Errorf("FriendIDs = %v, want empty", got)
	}
}

func testUserDeleteCascades(t *testing.T, s storage.Store) {
	ctx := context.Background()
	a := mustCreateUser(t, s, "gone")
	b := mustCreateUser(t, s, "stays")
	c := mustCreateUser(t, s, "other")
	filmID := mustCreateFilm(t, s, NewFilm("Memento", 4))

	steps := []struct {
		name string
		fn   func() error
	}{
		{"like a", func() error { return s.AddLike(ctx, filmID, a) }},
		{"like b", func() error { return s.AddLike(ctx, filmID, b) }},
		{"a->b", func() error { return s.AddFriend(ctx, a, b) }},
		{"b->a", func() error { return s.AddFriend(ctx, b, a) }},
		{"b->c", func() error { return s.AddFriend(ctx, b, c) }},
		{"c->a", func() error { return s.AddFriend(ctx, c, a) }},
	}
	for _, st := range steps {
		if err := st.fn(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
	}

	if err := s.DeleteUser(ctx, a); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	expectNotFound(t, "DeleteUser(again)", s.DeleteUser(ctx, a))

	if got := mustFilm(t, s, filmID); !slices.Equal(got.Likes, []int64{b}) {
		t.Errorf("Likes = %v, want [%d]", got.Likes, b)
	}
	if got := friendIDs(t, s, b); !slices.Equal(got, []int64{c}) {
		t.Errorf("FriendIDs(b) = %v, want [%d]", got, c)
	}
	if got := friendIDs(t, s, c); len(got) != 0 {
		t.Errorf("FriendIDs(c) = %v, want empty", got)
	}
}

func testPing(t *testing.T, s storage.Store) {
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
