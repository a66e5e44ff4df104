// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// FilmResponse is the wire view of a film with resolved catalog references.
type FilmResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ReleaseDate string            `json:"releaseDate"`
	Duration    int               `json:"duration"`
	Mpa         *models.MpaRating `json:"mpa"`
	Genres      []models.Genre    `json:"genres"`
	Likes       []int64           `json:"likes"`
	LikeCount   int               `json:"likeCount"`
}

func newFilmResponse(d *models.FilmDetails) FilmResponse {
	genres := d.Genres
	if genres == nil {
		genres = []models.Genre{}
	}
	likes := d.Likes
	if likes == nil {
		likes = []int64{}
	}
	return FilmResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ReleaseDate: formatDate(d.ReleaseDate),
		Duration:    d.Duration,
		Mpa:         d.Mpa,
		Genres:      genres,
		Likes:       likes,
		LikeCount:   len(likes),
	}
}

func newFilmResponses(list []models.FilmDetails) []FilmResponse {
	out := make([]FilmResponse, len(list))
	for i := range list {
		out[i] = newFilmResponse(&list[i])
	}
	return out
}

// UserResponse is the wire view of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday,omitempty"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: formatDate(u.Birthday),
	}
}

func newUserResponses(list []models.User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = newUserResponse(&list[i])
	}
	return out
}

// FriendshipResponse is one outgoing friendship edge.
type FriendshipResponse struct {
	UserID      int64      `json:"userId"`
	FriendID    int64      `json:"friendId"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

func newFriendshipResponses(list []models.Friendship) []FriendshipResponse {
	out := make([]FriendshipResponse, len(list))
	for i, f := range list {
		out[i] = FriendshipResponse{
			UserID:      f.RequesterID,
			FriendID:    f.RecipientID,
			Status:      string(f.Status),
			CreatedAt:   f.CreatedAt,
			ConfirmedAt: f.ConfirmedAt,
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
