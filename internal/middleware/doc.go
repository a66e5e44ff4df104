// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides the HTTP middleware shared by every Marquee route.

  - RequestID: accepts or generates X-Request-ID and stores it in the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by chi route pattern
  - AccessLog: one structured log line per request, warning on slow requests

All middleware uses the func(http.Handler) http.Handler shape so it composes
with chi's r.Use:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(500 * time.Millisecond))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
