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

	"github.com/tomtom215/marquee/internal/models"
)

func TestUserService_BlankNameDefaultsToLogin(t *testing.T) {
	_, users, store := newTestServices(t)
	ctx := context.Background()

	u := testUser("jdoe")
	u.Name = " "
	created, err := users.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	persisted, err := store.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if persisted.Name != "jdoe" {
		t.Errorf("persisted name = %q, want %q", persisted.Name, "jdoe")
	}
}

func TestUserService_CreateRejectsInvalid(t *testing.T) {
	_, users, store := newTestServices(t)
	ctx := context.Background()

	u := testUser("john doe")
	if _, err := users.Create(ctx, u); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("Create error = %v, want ErrValidation", err)
	}
	all, _ := store.ListUsers(ctx)
	if len(all) != 0 {
		t.Errorf("invalid user persisted")
	}
}

func TestUserService_Update(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()

	id := mustUser(t, users, "before")
	u := testUser("after")
	u.ID = id
	u.Name = ""
	got, err := users.Update(ctx, u)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Login != "after" || got.Name != "after" {
		t.Errorf("Update = %+v", got)
	}

	missing := testUser("ghost")
	missing.ID = id + 10
	if _, err := users.Update(ctx, missing); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}
}

func TestUserService_AddFriendSelf(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()
	id := mustUser(t, users, "narcissus")

	err := users.AddFriend(ctx, id, id)
	if !errors.Is(err, models.ErrInvalidOperation) {
		t.Fatalf("AddFriend(self) = %v, want ErrInvalidOperation", err)
	}

	// Self-friendship is rejected even before the user is looked up.
	if err := users.AddFriend(ctx, 1000, 1000); !errors.Is(err, models.ErrInvalidOperation) {
		t.Errorf("AddFriend(1000,1000) = %v, want ErrInvalidOperation", err)
	}
}

func TestUserService_FriendsOneDirectional(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()
	a, b := mustUser(t, users, "a"), mustUser(t, users, "b")

	if err := users.AddFriend(ctx, a, b); err != nil {
		t.Fatal(err)
	}
	if err := users.AddFriend(ctx, a, b); err != nil {
		t.Fatalf("AddFriend retry: %v", err)
	}

	fa, err := users.Friends(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(userIDs(fa), []int64{b}) {
		t.Errorf("Friends(a) = %v, want [%d]", userIDs(fa), b)
	}
	fb, err := users.Friends(ctx, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(fb) != 0 {
		t.Errorf("Friends(b) = %v, want empty", userIDs(fb))
	}

	if err := users.RemoveFriend(ctx, a, b); err != nil {
		t.Fatal(err)
	}
	if err := users.RemoveFriend(ctx, a, b); err != nil {
		t.Errorf("RemoveFriend(absent) = %v, want nil", err)
	}
}

func TestUserService_CommonFriends(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()

	a := mustUser(t, users, "a")
	b := mustUser(t, users, "b")
	u2 := mustUser(t, users, "two")
	u3 := mustUser(t, users, "three")
	u4 := mustUser(t, users, "four")

	for _, e := range [][2]int64{{a, u2}, {a, u3}, {b, u3}, {b, u4}} {
		if err := users.AddFriend(ctx, e[0], e[1]); err != nil {
			t.Fatalf("AddFriend(%d,%d): %v", e[0], e[1], err)
		}
	}

	common, err := users.CommonFriends(ctx, a, b)
	if err != nil {
		t.Fatalf("CommonFriends: %v", err)
	}
	if !slices.Equal(userIDs(common), []int64{u3}) {
		t.Errorf("CommonFriends = %v, want [%d]", userIDs(common), u3)
	}

	if _, err := users.CommonFriends(ctx, a, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("CommonFriends(unknown) = %v, want ErrNotFound", err)
	}
}

func TestUserService_FriendUnknown(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()
	a := mustUser(t, users, "a")

	if err := users.AddFriend(ctx, a, 77); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("AddFriend(unknown) = %v, want ErrNotFound", err)
	}
	if err := users.RemoveFriend(ctx, 77, a); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("RemoveFriend(unknown) = %v, want ErrNotFound", err)
	}
	if _, err := users.Friends(ctx, 77); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Friends(unknown) = %v, want ErrNotFound", err)
	}
}

func TestUserService_FriendshipStatus(t *testing.T) {
	_, users, _ := newTestServices(t)
	ctx := context.Background()
	a, b := mustUser(t, users, "a"), mustUser(t, users, "b")

	if err := users.AddFriend(ctx, a, b); err != nil {
		t.Fatal(err)
	}
	edges, err := users.Friendships(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || edges[0].Status != models.FriendshipPending {
		t.Fatalf("Friendships(a) = %+v, want one pending edge", edges)
	}

	if err := users.AddFriend(ctx, b, a); err != nil {
		t.Fatal(err)
	}
	edges, err = users.Friendships(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if edges[0].Status != models.FriendshipConfirmed {
		t.Errorf("status after reciprocation = %q, want confirmed", edges[0].Status)
	}

	if err := users.RemoveFriend(ctx, b, a); err != nil {
		t.Fatal(err)
	}
	edges, err = users.Friendships(ctx, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || edges[0].Status != models.FriendshipConfirmed {
		t.Errorf("Friendships(a) after b removed its edge = %+v, want still confirmed", edges)
	}
}

func TestUserService_DeleteCascades(t *testing.T) {
	films, users, _ := newTestServices(t)
	ctx := context.Background()

	a, b := mustUser(t, users, "a"), mustUser(t, users, "b")
	f, err := films.Create(ctx, testFilm("Cascade"))
	if err != nil {
		t.Fatal(err)
	}
	if err := films.Like(ctx, f.ID, a); err != nil {
		t.Fatal(err)
	}
	if err := users.AddFriend(ctx, b, a); err != nil {
		t.Fatal(err)
	}

	if err := users.Delete(ctx, a); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := films.Get(ctx, f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Likes) != 0 {
		t.Errorf("likes after user delete = %v", got.Likes)
	}
	friends, err := users.Friends(ctx, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(friends) != 0 {
		t.Errorf("friends after user delete = %v", userIDs(friends))
	}
}
