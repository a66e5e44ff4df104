// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package api exposes the film and user services over HTTP using the chi router.
//
// Every response uses the APIResponse envelope:
//
//	{"success": true,  "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
//	{"success": false, "error": {"code": "NOT_FOUND", "message": "film 7 not found", "request_id": "..."}}
//
// Domain errors map to status codes in writeServiceError: not found is 404,
// validation and invalid operations are 400, everything else is 500.
//
// Film request bodies accept catalog references either embedded
// ({"mpa": {"id": 4}, "genres": [{"id": 1}]}) or as bare ids
// ({"mpaId": 4, "genreIds": [1]}). Responses always embed the resolved
// {id, name} objects.
package api
