// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/marquee/internal/models"
)

var (
	// Storage Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_query_duration_seconds",
			Help:    "Duration of storage operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_query_errors_total",
			Help: "Total number of failed storage operations",
		},
		[]string{"backend", "operation", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Domain Metrics
	EntityOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_operations_total",
			Help: "Total number of successful entity writes",
		},
		[]string{"entity", "operation"}, // operation: create, update, delete
	)

	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_mutations_total",
			Help: "Total number of like and friendship edge mutations",
		},
		[]string{"relation", "action"}, // relation: like, friend; action: add, remove
	)

	RejectedWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejected_writes_total",
			Help: "Total number of writes rejected by business rules",
		},
		[]string{"entity", "kind"}, // kind: validation, not_found, invalid_operation
	)

	PopularRankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "popular_ranking_duration_seconds",
			Help:    "Time spent ranking films by like count",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	PopularRankingCandidates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "popular_ranking_candidates",
			Help: "Number of films considered by the most recent popularity ranking",
		},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application build information",
		},
		[]string{"version", "go_version", "backend"},
	)

	StoreUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_up",
			Help: "Whether the last store probe succeeded (1) or failed (0)",
		},
		[]string{"backend"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// ErrorKind maps an error onto a low-cardinality label value.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrValidation):
		return "validation"
	case errors.Is(err, models.ErrInvalidOperation):
		return "invalid_operation"
	default:
		return "internal"
	}
}

// RecordDBQuery records a storage operation metric
func RecordDBQuery(backend, operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(backend, operation, ErrorKind(err)).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordEntityOperation counts a successful create, update or delete.
func RecordEntityOperation(entity, operation string) {
	EntityOperations.WithLabelValues(entity, operation).Inc()
}

// RecordLedgerMutation counts an accepted edge mutation, including no-ops.
func RecordLedgerMutation(relation, action string) {
	LedgerMutations.WithLabelValues(relation, action).Inc()
}

// RecordRejectedWrite counts a write refused with a domain error kind.
// Infrastructure failures are not counted here.
func RecordRejectedWrite(entity string, err error) {
	kind := ErrorKind(err)
	if kind == "none" || kind == "internal" {
		return
	}
	RejectedWrites.WithLabelValues(entity, kind).Inc()
}

// RecordPopularRanking records one ranking pass over n candidate films.
func RecordPopularRanking(duration time.Duration, candidates int) {
	PopularRankingDuration.Observe(duration.Seconds())
	PopularRankingCandidates.Set(float64(candidates))
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion, backend string) {
	AppInfo.Reset()
	AppInfo.WithLabelValues(version, goVersion, backend).Set(1)
}

// SetStoreUp publishes the outcome of a store probe.
func SetStoreUp(backend string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	StoreUp.WithLabelValues(backend).Set(v)
}

// SetUptime publishes the time since start.
func SetUptime(d time.Duration) {
	AppUptime.Set(d.Seconds())
}
