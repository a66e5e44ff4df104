// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package logging is the zerolog front end shared by every Marquee package.

A single global logger is configured once at startup from the LOG_LEVEL,
LOG_FORMAT and LOG_CALLER settings:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("addr", addr).Msg("HTTP server listening")

Request-scoped code logs through the context so the request ID assigned by the
HTTP middleware travels with every event:

	logging.CtxInfo(ctx).Int64("film_id", id).Msg("Like recorded")

Libraries that speak log/slog (sutureslog in the supervisor tree) get a
zerolog-backed handler from NewSlogLogger.

Always terminate an event with Msg or Send; an unterminated event is dropped.
*/
package logging
