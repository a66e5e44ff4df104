// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/marquee/internal/models"
)

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	users, err := h.users.List(r.Context())
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newUserResponses(users), len(users))
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(newUserResponse(user))
}

// CreateUser handles POST /users. A blank name defaults to the login.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user, ok := decodeUser(rw, w, r)
	if !ok {
		return
	}

	created, err := h.users.Create(r.Context(), user)
	if err != nil {
		rw.ServiceError(err)
		return
	}

	rw.Created(newUserResponse(created))
}

// UpdateUser handles PUT /users.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	user, ok := decodeUser(rw, w, r)
	if !ok {
		return
	}

	updated, err := h.users.Update(r.Context(), user)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(newUserResponse(updated))
}

func decodeUser(rw *ResponseWriter, w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	var req UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return nil, false
	}
	user, err := req.toModel()
	if err != nil {
		rw.ServiceError(err)
		return nil, false
	}
	return user, true
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		rw.ServiceError(err)
		return
	}
	rw.NoContent()
}

// AddFriend handles PUT /users/{id}/friends/{friendId}.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	h.mutateFriend(w, r, h.users.AddFriend)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}.
func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	h.mutateFriend(w, r, h.users.RemoveFriend)
}

func (h *Handler) mutateFriend(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, friendID int64) error) {
	rw := NewResponseWriter(w, r)

	userID, friendID, err := pathPair(r, "id", "friendId")
	if err != nil {
		rw.ServiceError(err)
		return
	}
	if err := op(r.Context(), userID, friendID); err != nil {
		rw.ServiceError(err)
		return
	}
	rw.NoContent()
}

// ListFriends handles GET /users/{id}/friends.
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	friends, err := h.users.Friends(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newUserResponses(friends), len(friends))
}

// CommonFriends handles GET /users/{id}/friends/common/{otherId}.
func (h *Handler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, otherID, err := pathPair(r, "id", "otherId")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	common, err := h.users.CommonFriends(r.Context(), userID, otherID)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newUserResponses(common), len(common))
}

// ListFriendships handles GET /users/{id}/friendships.
func (h *Handler) ListFriendships(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	edges, err := h.users.Friendships(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newFriendshipResponses(edges), len(edges))
}

func pathPair(r *http.Request, first, second string) (int64, int64, error) {
	a, err := pathID(r, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := pathID(r, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
