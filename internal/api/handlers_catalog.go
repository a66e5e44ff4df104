// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/models"
)

// ListGenres handles GET /genres.
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	genres, err := h.catalog.ListGenres(r.Context())
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(genres, len(genres))
}

// GetGenre handles GET /genres/{id}.
func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := catalogID(r)
	if err != nil {
		rw.ServiceError(err)
		return
	}

	genre, err := h.catalog.GetGenre(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(genre)
}

// ListMpa handles GET /mpa.
func (h *Handler) ListMpa(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ratings, err := h.catalog.ListMpa(r.Context())
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(ratings, len(ratings))
}

// GetMpa handles GET /mpa/{id}.
func (h *Handler) GetMpa(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := catalogID(r)
	if err != nil {
		rw.ServiceError(err)
		return
	}

	rating, err := h.catalog.GetMpa(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(rating)
}

func catalogID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.Validation("id", fmt.Sprintf("id must be an integer, got %q", raw))
	}
	return id, nil
}
