// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package storage

import "errors"

// ErrClosed is returned by Ping after Close.
var ErrClosed = errors.New("storage closed")
