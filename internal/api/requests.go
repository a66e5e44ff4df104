// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
)

// DateLayout is the wire format for releaseDate and birthday.
const DateLayout = "2006-01-02"

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// idRef is an embedded catalog reference: {"id": 4}. A name, if sent, is ignored.
type idRef struct {
	ID int `json:"id"`
}

// FilmRequest is the body of POST and PUT /films.
type FilmRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"releaseDate"`
	Duration    int     `json:"duration"`
	Mpa         *idRef  `json:"mpa"`
	MpaID       *int    `json:"mpaId"`
	Genres      []idRef `json:"genres"`
	GenreIDs    []int   `json:"genreIds"`
}

// toModel merges both reference shapes; embedded objects win when both are sent.
func (req *FilmRequest) toModel() (*models.Film, error) {
	release, err := parseDate("releaseDate", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	f := &models.Film{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: release,
		Duration:    req.Duration,
		MpaID:       req.MpaID,
		GenreIDs:    req.GenreIDs,
	}
	if req.Mpa != nil {
		id := req.Mpa.ID
		f.MpaID = &id
	}
	if req.Genres != nil {
		f.GenreIDs = make([]int, len(req.Genres))
		for i, g := range req.Genres {
			f.GenreIDs[i] = g.ID
		}
	}
	return f, nil
}

// UserRequest is the body of POST and PUT /users.
type UserRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

func (req *UserRequest) toModel() (*models.User, error) {
	birthday, err := parseDate("birthday", req.Birthday)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:       req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     req.Name,
		Birthday: birthday,
	}, nil
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. Empty yields the
// zero time, which the validation rules treat per field.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, models.Validation(field, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// pathID parses an integer path parameter. Only malformed values are
// rejected here; ids that match nothing are left for the store to report.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.Validation(name, fmt.Sprintf("%s must be an integer, got %q", name, raw))
	}
	return id, nil
}

// countParam parses ?count=, falling back to def when absent. Zero, negative
// and non-numeric values are rejected.
func countParam(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, models.Validation("count", fmt.Sprintf("count must be a positive integer, got %q", raw))
	}
	return n, nil
}
