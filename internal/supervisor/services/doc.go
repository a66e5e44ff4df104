// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee


// Package services adapts marquee's long-running components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//     when the supervisor context ends.
//   - StoreMonitorService: pings the configured store on an interval and
//     publishes the result as the store_up gauge.
//
// Both return ctx.Err() on shutdown so suture does not count a normal stop
// as a failure.
package services
