// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureGlobal swaps the global logger for one writing to a buffer.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no log output")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitWritesJSON(t *testing.T) {
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	Warn().Str("k", "v").Msg("kept")
	m := decodeLine(t, &buf)
	if m["message"] != "kept" || m["k"] != "v" || m["level"] != "warn" {
		t.Errorf("unexpected event: %v", m)
	}
	if _, ok := m["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestCtxAddsRequestID(t *testing.T) {
	buf := captureGlobal(t)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	CtxInfo(ctx).Msg("hello")

	m := decodeLine(t, buf)
	if m["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", m["request_id"])
	}
}

func TestCtxWithoutRequestID(t *testing.T) {
	buf := captureGlobal(t)

	CtxErr(context.Background(), errors.New("boom")).Msg("failed")

	m := decodeLine(t, buf)
	if _, ok := m["request_id"]; ok {
		t.Error("request_id should be absent")
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v, want boom", m["error"])
	}
}

func TestCtxPrefersContextLogger(t *testing.T) {
	captureGlobal(t)

	var own bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&own).With().Str("scope", "test").Logger())
	CtxWarn(ctx).Msg("scoped")

	m := decodeLine(t, &own)
	if m["scope"] != "test" {
		t.Errorf("scope = %v, want test", m["scope"])
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || len(a) != 36 {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("empty context should carry no request ID")
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.With("service", "http").WithGroup("req").Warn("restarting", "attempt", 2, "err", errors.New("bind"))

	m := decodeLine(t, &buf)
	if m["level"] != "warn" {
		t.Errorf("level = %v, want warn", m["level"])
	}
	if m["message"] != "restarting" {
		t.Errorf("message = %v", m["message"])
	}
	if m["service"] != "http" {
		t.Errorf("service = %v, want http", m["service"])
	}
	if m["req.attempt"] != float64(2) {
		t.Errorf("req.attempt = %v, want 2", m["req.attempt"])
	}
	if m["req.err"] != "bind" {
		t.Errorf("req.err = %v, want bind", m["req.err"])
	}
}

func TestSlogHandlerNestedGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.WithGroup("a").WithGroup("b").Info("x", slog.Group("c", slog.String("d", "e")))

	m := decodeLine(t, &buf)
	if m["a.b.c.d"] != "e" {
		t.Errorf("nested key missing, got %v", m)
	}
}

func TestSlogHandlerAttrsKeepBindingGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.WithGroup("a").With("k1", 1).WithGroup("b").With("k2", 2).Info("x", "k3", 3)

	m := decodeLine(t, &buf)
	want := map[string]float64{"a.k1": 1, "a.b.k2": 2, "a.b.k3": 3}
	for key, v := range want {
		if m[key] != v {
			t.Errorf("%s = %v, want %v", key, m[key], v)
		}
	}
	if _, ok := m["a.b.k1"]; ok {
		t.Error("k1 picked up a group opened after it was bound")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
