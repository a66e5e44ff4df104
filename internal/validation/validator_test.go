// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

func validFilm() models.Film {
	return models.Film{
		Name:        "Nosferatu",
		Description: "A symphony of horror",
		ReleaseDate: time.Date(1922, time.March, 4, 0, 0, 0, 0, time.UTC),
		Duration:    94,
	}
}

func validUser() models.User {
	return models.User{
		Email:    "jdoe@example.com",
		Login:    "jdoe",
		Name:     "John Doe",
		Birthday: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// Film Rules
// ===================================================================================================

func TestValidateFilm(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *models.Film)
		wantField string
	}{
		{name: "valid film", mutate: func(f *models.Film) {}},
		{name: "blank name", mutate: func(f *models.Film) { f.Name = "   " }, wantField: "name"},
		{name: "empty name", mutate: func(f *models.Film) { f.Name = "" }, wantField: "name"},
		{
			name:   "description exactly 200 code points",
			mutate: func(f *models.Film) { f.Description = strings.Repeat("é", 200) },
		},
		{
			name:      "description 201 code points",
			mutate:    func(f *models.Film) { f.Description = strings.Repeat("a", 201) },
			wantField: "description",
		},
		{
			name:   "release date on cinema epoch",
			mutate: func(f *models.Film) { f.ReleaseDate = models.CinemaEpoch },
		},
		{
			name:      "release date one day before cinema epoch",
			mutate:    func(f *models.Film) { f.ReleaseDate = models.CinemaEpoch.AddDate(0, 0, -1) },
			wantField: "releaseDate",
		},
		{
			name:      "missing release date",
			mutate:    func(f *models.Film) { f.ReleaseDate = time.Time{} },
			wantField: "releaseDate",
		},
		{name: "zero duration", mutate: func(f *models.Film) { f.Duration = 0 }, wantField: "duration"},
		{name: "negative duration", mutate: func(f *models.Film) { f.Duration = -5 }, wantField: "duration"},
		{name: "one minute duration", mutate: func(f *models.Film) { f.Duration = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFilm()
			tt.mutate(&f)

			err := ValidateFilm(&f)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateFilm() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateFilm() expected error on %s, got nil", tt.wantField)
			}
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("error should unwrap to ErrValidation, got %v", err)
			}
			var verr *RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *RequestValidationError, got %T", err)
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

// ===================================================================================================
// User Rules
// ===================================================================================================

func TestValidateUser(t *testing.T) {
	fixed := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	tests := []struct {
		name      string
		mutate    func(u *models.User)
		wantField string
	}{
		{name: "valid user", mutate: func(u *models.User) {}},
		{name: "blank email", mutate: func(u *models.User) { u.Email = " " }, wantField: "email"},
		{name: "email without at sign", mutate: func(u *models.User) { u.Email = "jdoe.example.com" }, wantField: "email"},
		{name: "empty login", mutate: func(u *models.User) { u.Login = "" }, wantField: "login"},
		{name: "login with space", mutate: func(u *models.User) { u.Login = "j doe" }, wantField: "login"},
		{name: "login with tab", mutate: func(u *models.User) { u.Login = "j\tdoe" }, wantField: "login"},
		{name: "birthday today", mutate: func(u *models.User) { u.Birthday = fixed }},
		{name: "birthday tomorrow", mutate: func(u *models.User) { u.Birthday = fixed.AddDate(0, 0, 1) }, wantField: "birthday"},
		{name: "birthday omitted", mutate: func(u *models.User) { u.Birthday = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := ValidateUser(&u)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateUser() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("ValidateUser() error = %v, want ErrValidation", err)
			}
			var verr *RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *RequestValidationError, got %T", err)
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestValidateUser_BlankNameDefaultsToLogin(t *testing.T) {
	for _, name := range []string{"", "   "} {
		u := validUser()
		u.Name = name

		if err := ValidateUser(&u); err != nil {
			t.Fatalf("ValidateUser() unexpected error: %v", err)
		}
		if u.Name != "jdoe" {
			t.Errorf("Name = %q, want %q", u.Name, "jdoe")
		}
	}
}

func TestValidateUser_NameUntouchedOnFailure(t *testing.T) {
	u := validUser()
	u.Name = ""
	u.Email = "bad"

	if err := ValidateUser(&u); err == nil {
		t.Fatal("expected validation error")
	}
	if u.Name != "" {
		t.Errorf("Name = %q, want empty after failed validation", u.Name)
	}
}

// ===================================================================================================
// Error Translation
// ===================================================================================================

func TestRequestValidationError_Messages(t *testing.T) {
	f := validFilm()
	f.Name = ""
	f.Duration = 0

	err := ValidateStruct(&f)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}

	msg := err.Error()
	for _, want := range []string{"name must not be blank", "duration must be greater than 0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	details := err.Details()
	fields, ok := details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details() fields = %#v", details["fields"])
	}
}

func TestRequestValidationError_SingleDetails(t *testing.T) {
	f := validFilm()
	f.ReleaseDate = time.Date(1800, time.January, 1, 0, 0, 0, 0, time.UTC)

	err := ValidateStruct(&f)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Details()["field"]; got != "releaseDate" {
		t.Errorf("Details()[field] = %v, want releaseDate", got)
	}
	if !strings.Contains(err.Error(), "1895-12-28") {
		t.Errorf("Error() = %q, should mention the earliest date", err.Error())
	}
}
