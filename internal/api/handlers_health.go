// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status         string  `json:"status"`
	StoreReachable bool    `json:"store_reachable"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /health/live. It never touches the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /health/ready: 200 when the store answers a ping,
// 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.CtxWarn(r.Context()).Err(err).Msg("Readiness check failed")
		rw.ServiceUnavailable("store is not reachable")
		return
	}

	rw.Success(HealthStatus{
		Status:         "ready",
		StoreReachable: true,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
	})
}
