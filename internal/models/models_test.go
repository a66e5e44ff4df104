// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"not found", NotFound(EntityFilm, 42), ErrNotFound, "film with id=42 not found"},
		{"validation", Validation("login", "login must not contain whitespace"), ErrValidation, "login must not contain whitespace"},
		{"invalid operation", InvalidOperation("a user cannot add themselves as a friend"), ErrInvalidOperation, "a user cannot add themselves as a friend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}

			wrapped := fmt.Errorf("create: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Error("kind lost through fmt.Errorf wrapping")
			}
		})
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	err := &Error{Kind: ErrNotFound, Entity: EntityUser, ID: 7}
	if got := err.Error(); got != "user 7: not found" {
		t.Errorf("Error() = %q", got)
	}

	bare := &Error{Kind: ErrValidation}
	if got := bare.Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("get: %w", NotFound(EntityGenre, 9))) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(Validation("name", "blank")) {
		t.Error("validation error reported as not found")
	}
}

func TestNormalizeGenreIDs(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{nil, []int{}},
		{[]int{6, 2, 6, 1}, []int{1, 2, 6}},
		{[]int{3}, []int{3}},
	}
	for _, tt := range tests {
		got := NormalizeGenreIDs(tt.in)
		if got == nil || !slices.Equal(got, tt.want) {
			t.Errorf("NormalizeGenreIDs(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	in := []int64{3, 1, 2}
	_ = NormalizeIDs(in)
	if !slices.Equal(in, []int64{3, 1, 2}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestFilmNormalize(t *testing.T) {
	f := Film{GenreIDs: []int{4, 4, 1}, Likes: []int64{9, 2, 9}}
	f.Normalize()

	if !slices.Equal(f.GenreIDs, []int{1, 4}) {
		t.Errorf("GenreIDs = %v", f.GenreIDs)
	}
	if f.LikeCount() != 2 {
		t.Errorf("LikeCount = %d, want 2", f.LikeCount())
	}
}

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name, login, want string
	}{
		{"Neo", "neo", "Neo"},
		{"", "neo", "neo"},
		{" \t", "neo", "neo"},
	}
	for _, tt := range tests {
		u := User{Name: tt.name, Login: tt.login}
		if got := u.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(name=%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFriendshipConfirm(t *testing.T) {
	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	f := Friendship{RequesterID: 1, RecipientID: 2, Status: FriendshipPending}

	f.Confirm(at)
	if f.Status != FriendshipConfirmed || f.ConfirmedAt == nil || !f.ConfirmedAt.Equal(at) {
		t.Errorf("after Confirm: %+v", f)
	}
}

func TestDefaultCatalogs(t *testing.T) {
	genres := DefaultGenres()
	if len(genres) != 6 || genres[0].Name != "Comedy" || genres[5].Name != "Action" {
		t.Errorf("genres = %v", genres)
	}
	mpa := DefaultMpaRatings()
	if len(mpa) != 5 || mpa[0].Name != "G" || mpa[4].Name != "NC-17" {
		t.Errorf("mpa = %v", mpa)
	}
	for i, m := range mpa {
		if m.ID != i+1 {
			t.Errorf("mpa[%d].ID = %d, want %d", i, m.ID, i+1)
		}
	}
}
