// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/middleware"
)

// slowRequestThreshold is the latency above which the access log warns.
const slowRequestThreshold = time.Second

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMiddleware}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(middleware.AccessLog(slowRequestThreshold))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	// ========================
	// Operational Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Films and Likes
	// ========================
	r.Route("/films", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("films"))

		r.Get("/", router.handler.ListFilms)
		r.Post("/", router.handler.CreateFilm)
		r.Put("/", router.handler.UpdateFilm)
		r.Get("/popular", router.handler.PopularFilms)
		r.Get("/{id}", router.handler.GetFilm)
		r.Delete("/{id}", router.handler.DeleteFilm)
		r.Put("/{id}/like/{userId}", router.handler.AddLike)
		r.Delete("/{id}/like/{userId}", router.handler.RemoveLike)
	})

	// ========================
	// Users and Friendships
	// ========================
	r.Route("/users", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("users"))

		r.Get("/", router.handler.ListUsers)
		r.Post("/", router.handler.CreateUser)
		r.Put("/", router.handler.UpdateUser)
		r.Get("/{id}", router.handler.GetUser)
		r.Delete("/{id}", router.handler.DeleteUser)
		r.Get("/{id}/friends", router.handler.ListFriends)
		r.Put("/{id}/friends/{friendId}", router.handler.AddFriend)
		r.Delete("/{id}/friends/{friendId}", router.handler.RemoveFriend)
		r.Get("/{id}/friends/common/{otherId}", router.handler.CommonFriends)
		r.Get("/{id}/friendships", router.handler.ListFriendships)
	})

	// ========================
	// Reference Catalogs
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("catalog"))

		r.Get("/genres", router.handler.ListGenres)
		r.Get("/genres/{id}", router.handler.GetGenre)
		r.Get("/mpa", router.handler.ListMpa)
		r.Get("/mpa/{id}", router.handler.GetMpa)
	})

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound("no route for " + r.URL.Path)
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path)
}
