// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"strings"
	"time"
)

// User is an account. Friend membership lives in the friendship ledger.
type User struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email" validate:"notblank,contains=@"`
	Login    string    `json:"login" validate:"notblank,nowhitespace"`
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday" validate:"notfuture"`
}

// DisplayName returns Name, falling back to Login when Name is blank.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return u.Login
	}
	return u.Name
}
