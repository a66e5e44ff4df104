// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// ServiceError renders err with the status its kind maps to.
func (rw *ResponseWriter) ServiceError(err error) {
	var (
		reqErr   *validation.RequestValidationError
		modelErr *models.Error
	)

	switch {
	case errors.As(err, &reqErr):
		rw.ValidationError(reqErr.Error(), reqErr.Details())
	case errors.Is(err, models.ErrNotFound):
		rw.NotFound(err.Error())
	case errors.Is(err, models.ErrValidation):
		var details interface{}
		if errors.As(err, &modelErr) && modelErr.Field != "" {
			details = map[string]interface{}{"field": modelErr.Field}
		}
		rw.ValidationError(err.Error(), details)
	case errors.Is(err, models.ErrInvalidOperation):
		rw.Error(http.StatusBadRequest, ErrCodeInvalidOperation, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		logging.CtxDebug(rw.r.Context()).Err(err).Msg("Request canceled")
	default:
		logging.CtxErr(rw.r.Context(), err).
			Str("method", rw.r.Method).
			Str("path", rw.r.URL.Path).
			Msg("Request failed")
		rw.InternalError("An internal error occurred")
	}
}
