// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_films.go: /films and the like ledger
//   - handlers_users.go: /users and the friendship ledger
//   - handlers_catalog.go: /genres and /mpa
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	films   *service.FilmService
	users   *service.UserService
	catalog *service.CatalogService
	store   Pinger

	defaultPopularCount int
	readyTimeout        time.Duration
	startTime           time.Time
}

// NewHandler creates a new API handler.
func NewHandler(films *service.FilmService, users *service.UserService, catalog *service.CatalogService, store Pinger, cfg *config.APIConfig) *Handler {
	popular := service.DefaultPopularCount
	if cfg != nil && cfg.DefaultPopularCount > 0 {
		popular = cfg.DefaultPopularCount
	}

	return &Handler{
		films:               films,
		users:               users,
		catalog:             catalog,
		store:               store,
		defaultPopularCount: popular,
		readyTimeout:        2 * time.Second,
		startTime:           time.Now(),
	}
}
