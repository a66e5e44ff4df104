// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage/memory"
)

func newTestServices(t *testing.T) (*FilmService, *UserService, *memory.Store) {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })
	return NewFilmService(store), NewUserService(store), store
}

func intPtr(v int) *int { return &v }

func testFilm(name string, genres ...int) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "test film",
		ReleaseDate: time.Date(2001, time.July, 20, 0, 0, 0, 0, time.UTC),
		Duration:    125,
		MpaID:       intPtr(2),
		GenreIDs:    genres,
	}
}

func testUser(login string) *models.User {
	return &models.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     "User " + login,
		Birthday: time.Date(1985, time.October, 26, 0, 0, 0, 0, time.UTC),
	}
}

func mustUser(t *testing.T, users *UserService, login string) int64 {
	t.Helper()
	u, err := users.Create(context.Background(), testUser(login))
	if err != nil {
		t.Fatalf("Create user %q: %v", login, err)
	}
	return u.ID
}

func filmIDs(films []models.FilmDetails) []int64 {
	ids := make([]int64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	return ids
}

func userIDs(users []models.User) []int64 {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// ===================================================================================================
// Ranking
// ===================================================================================================

func TestRankPopular_TieBreakByID(t *testing.T) {
	likes := func(n int) []int64 {
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(i + 1)
		}
		return out
	}
	films := []models.Film{
		{ID: 4, Likes: likes(3)},
		{ID: 2, Likes: likes(3)},
		{ID: 7, Likes: likes(1)},
		{ID: 1, Likes: likes(0)},
	}

	tests := []struct {
		name  string
		count int
		want  []int64
	}{
		{"all", 10, []int64{2, 4, 7, 1}},
		{"exact", 4, []int64{2, 4, 7, 1}},
		{"truncated", 2, []int64{2, 4}},
		{"one", 1, []int64{2}},
		{"zero", 0, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankPopular(films, tt.count)
			ids := make([]int64, len(got))
			for i, f := range got {
				ids[i] = f.ID
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("RankPopular(%d) = %v, want %v", tt.count, ids, tt.want)
			}
		})
	}

	if films[0].ID != 4 {
		t.Error("RankPopular must not reorder its input")
	}
}

func TestIntersectIDs(t *testing.T) {
	tests := []struct {
		name string
		a, b []int64
		want []int64
	}{
		{"overlap", []int64{2, 3}, []int64{3, 4}, []int64{3}},
		{"disjoint", []int64{1, 2}, []int64{3, 4}, []int64{}},
		{"empty", nil, []int64{1}, []int64{}},
		{"identical", []int64{1, 5, 9}, []int64{1, 5, 9}, []int64{1, 5, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntersectIDs(tt.a, tt.b); !slices.Equal(got, tt.want) {
				t.Errorf("IntersectIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilmService_Popular(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	// Create films so that ids 1..4 exist, then like them to get counts
	// [film1:0, film2:3, film3:1, film4:3].
	var ids []int64
	for _, name := range []string{"one", "two", "three", "four"} {
		d, err := films.Create(ctx, testFilm(name))
		if err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		ids = append(ids, d.ID)
	}
	u1, u2, u3 := mustUser(t, users, "u1"), mustUser(t, users, "u2"), mustUser(t, users, "u3")

	for _, like := range []struct{ film, user int64 }{
		{ids[3], u1}, {ids[3], u2}, {ids[3], u3},
		{ids[1], u1}, {ids[1], u2}, {ids[1], u3},
		{ids[2], u1},
	} {
		if err := films.Like(ctx, like.film, like.user); err != nil {
			t.Fatalf("Like: %v", err)
		}
	}

	got, err := films.Popular(ctx, DefaultPopularCount)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if want := []int64{ids[1], ids[3], ids[2], ids[0]}; !slices.Equal(filmIDs(got), want) {
		t.Errorf("Popular ids = %v, want %v", filmIDs(got), want)
	}

	top, err := films.Popular(ctx, 1)
	if err != nil {
		t.Fatalf("Popular(1): %v", err)
	}
	if len(top) != 1 || top[0].ID != ids[1] {
		t.Errorf("Popular(1) = %v, want [%d]", filmIDs(top), ids[1])
	}

	if _, err := films.Popular(ctx, 0); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Popular(0) error = %v, want ErrValidation", err)
	}
}

// ===================================================================================================
// Likes
// ===================================================================================================

func TestFilmService_LikeIdempotent(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	f, err := films.Create(ctx, testFilm("Amelie", 1))
	if err != nil {
		t.Fatal(err)
	}
	u := mustUser(t, users, "amelie")

	for i := 0; i < 2; i++ {
		if err := films.Like(ctx, f.ID, u); err != nil {
			t.Fatalf("Like #%d: %v", i, err)
		}
	}

	got, err := films.Get(ctx, f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Likes) != 1 {
		t.Errorf("likes = %v, want exactly one", got.Likes)
	}
}

func TestFilmService_UnlikeNeverLiked(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	f, err := films.Create(ctx, testFilm("Ran", 2))
	if err != nil {
		t.Fatal(err)
	}
	u := mustUser(t, users, "kurosawa")

	if err := films.Unlike(ctx, f.ID, u); err != nil {
		t.Fatalf("Unlike(never liked) error = %v, want nil", err)
	}
	got, err := films.Get(ctx, f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Likes) != 0 {
		t.Errorf("likes = %v, want none", got.Likes)
	}
}

func TestFilmService_LikeUnknownEndpoints(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	f, err := films.Create(ctx, testFilm("Solaris"))
	if err != nil {
		t.Fatal(err)
	}
	u := mustUser(t, users, "kelvin")

	if err := films.Like(ctx, 999, u); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Like(unknown film) = %v, want ErrNotFound", err)
	}
	if err := films.Like(ctx, f.ID, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Like(unknown user) = %v, want ErrNotFound", err)
	}
	if err := films.Unlike(ctx, f.ID, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Unlike(unknown user) = %v, want ErrNotFound", err)
	}
}

// ===================================================================================================
// Film Writes
// ===================================================================================================

func TestFilmService_CreateGenresAscending(t *testing.T) {
	films, _, _ := newTestServices(t)
	ctx := context.Background()

	created, err := films.Create(ctx, testFilm("Spirited Away", 1, 3, 2))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := films.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !slices.Equal(got.GenreIDs, []int{1, 2, 3}) {
		t.Errorf("GenreIDs = %v, want [1 2 3]", got.GenreIDs)
	}
	names := make([]string, len(got.Genres))
	for i, g := range got.Genres {
		names[i] = g.Name
	}
	if want := []string{"Comedy", "Drama", "Animation"}; !slices.Equal(names, want) {
		t.Errorf("genre names = %v, want %v", names, want)
	}
	if got.Mpa == nil || got.Mpa.Name != "PG" {
		t.Errorf("Mpa = %v, want PG", got.Mpa)
	}
}

func TestFilmService_CreateRejectsUnknownReferences(t *testing.T) {
	tests := []struct {
		name string
		film *models.Film
	}{
		{"unknown genre", testFilm("Bad Genre", 1, 99)},
		{"unknown mpa", func() *models.Film { f := testFilm("Bad MPA", 1); f.MpaID = intPtr(42); return f }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, _, store := newTestServices(t)
			ctx := context.Background()

			if _, err := films.Create(ctx, tt.film); !errors.Is(err, models.ErrNotFound) {
				t.Fatalf("Create error = %v, want ErrNotFound", err)
			}
			all, err := store.ListFilms(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 0 {
				t.Errorf("rejected film was persisted: %v", all)
			}
		})
	}
}

func TestFilmService_CreateRejectsInvalidFields(t *testing.T) {
	films, _, store := newTestServices(t)
	ctx := context.Background()

	f := testFilm("")
	if _, err := films.Create(ctx, f); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("Create error = %v, want ErrValidation", err)
	}
	all, _ := store.ListFilms(ctx)
	if len(all) != 0 {
		t.Errorf("invalid film was persisted")
	}
}

func TestFilmService_UpdateAndDelete(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	created, err := films.Create(ctx, testFilm("Draft", 1))
	if err != nil {
		t.Fatal(err)
	}

	upd := testFilm("Final", 6, 4)
	upd.ID = created.ID
	got, err := films.Update(ctx, upd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Final" || !slices.Equal(got.GenreIDs, []int{4, 6}) {
		t.Errorf("Update result = %+v", got)
	}

	missing := testFilm("Missing")
	missing.ID = 12345
	if _, err := films.Update(ctx, missing); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}

	u := mustUser(t, users, "fan")
	if err := films.Like(ctx, created.ID, u); err != nil {
		t.Fatal(err)
	}
	if err := films.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := films.Get(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get(deleted) = %v, want ErrNotFound", err)
	}
	if err := films.Delete(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete(again) = %v, want ErrNotFound", err)
	}
}

func TestFilmService_List(t *testing.T) {
	films, _, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		if _, err := films.Create(ctx, testFilm(name, 5)); err != nil {
			t.Fatal(err)
		}
	}
	all, err := films.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Name != "A" || all[1].Genres[0].Name != "Documentary" {
		t.Errorf("List = %+v", all)
	}
}
