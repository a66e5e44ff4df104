// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
)

// ListFilms handles GET /films.
func (h *Handler) ListFilms(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	films, err := h.films.List(r.Context())
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newFilmResponses(films), len(films))
}

// GetFilm handles GET /films/{id}.
func (h *Handler) GetFilm(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	film, err := h.films.Get(r.Context(), id)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(newFilmResponse(film))
}

// CreateFilm handles POST /films.
func (h *Handler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FilmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	film, err := req.toModel()
	if err != nil {
		rw.ServiceError(err)
		return
	}

	created, err := h.films.Create(r.Context(), film)
	if err != nil {
		rw.ServiceError(err)
		return
	}

	rw.Created(newFilmResponse(created))
}

// UpdateFilm handles PUT /films. The body must carry the id of an existing film.
func (h *Handler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FilmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	film, err := req.toModel()
	if err != nil {
		rw.ServiceError(err)
		return
	}

	updated, err := h.films.Update(r.Context(), film)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.Success(newFilmResponse(updated))
}

// DeleteFilm handles DELETE /films/{id}.
func (h *Handler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}
	if err := h.films.Delete(r.Context(), id); err != nil {
		rw.ServiceError(err)
		return
	}
	rw.NoContent()
}

// AddLike handles PUT /films/{id}/like/{userId}.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	h.mutateLike(w, r, h.films.Like)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}.
func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.mutateLike(w, r, h.films.Unlike)
}

func (h *Handler) mutateLike(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, filmID, userID int64) error) {
	rw := NewResponseWriter(w, r)

	filmID, err := pathID(r, "id")
	if err != nil {
		rw.ServiceError(err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		rw.ServiceError(err)
		return
	}

	if err := op(r.Context(), filmID, userID); err != nil {
		rw.ServiceError(err)
		return
	}
	rw.NoContent()
}

// PopularFilms handles GET /films/popular?count=N.
func (h *Handler) PopularFilms(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	count, err := countParam(r, h.defaultPopularCount)
	if err != nil {
		rw.ServiceError(err)
		return
	}

	films, err := h.films.Popular(r.Context(), count)
	if err != nil {
		rw.ServiceError(err)
		return
	}
	rw.SuccessList(newFilmResponses(films), len(films))
}
