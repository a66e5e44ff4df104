// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"errors"
	"fmt"
)

// Error kinds. Compare with errors.Is; never match on message text.
var (
	// ErrNotFound reports a missing entity, catalog item or edge endpoint.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a field that violates a business rule at write time.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidOperation reports a structurally invalid relationship request.
	ErrInvalidOperation = errors.New("invalid operation")
)

// Entity names used in error messages and log fields.
const (
	EntityFilm  = "film"
	EntityUser  = "user"
	EntityGenre = "genre"
	EntityMpa   = "mpa"
)

// Error carries a typed kind plus the context needed to render a message.
type Error struct {
	Kind    error
	Entity  string
	ID      int64
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s %d: %v", e.Entity, e.ID, e.Kind)
	}
	return e.Kind.Error()
}

// Unwrap exposes the kind so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound builds an ErrNotFound error for the given entity and id.
func NotFound(entity string, id int64) error {
	return &Error{
		Kind:    ErrNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s with id=%d not found", entity, id),
	}
}

// Validation builds an ErrValidation error naming the field rule broken.
func Validation(field, message string) error {
	return &Error{
		Kind:    ErrValidation,
		Field:   field,
		Message: message,
	}
}

// InvalidOperation builds an ErrInvalidOperation error.
func InvalidOperation(message string) error {
	return &Error{
		Kind:    ErrInvalidOperation,
		Message: message,
	}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
