// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     slog.Level
		wantLevel string
	}{
		{"info", slog.LevelInfo, `"level":"info"`},
		{"warn", slog.LevelWarn, `"level":"warn"`},
		{"error", slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSlogHandler(zerolog.New(&buf).Level(zerolog.TraceLevel)))
			logger.Log(context.Background(), tt.level, "service restarted")

			output := buf.String()
			if !strings.Contains(output, tt.wantLevel) {
				t.Errorf("expected %s, got: %s", tt.wantLevel, output)
			}
			if !strings.Contains(output, "service restarted") {
				t.Errorf("expected message, got: %s", output)
			}
		})
	}
}

func TestSlogHandler_AttrKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	logger.Info("attrs",
		slog.String("service", "http"),
		slog.Int("restarts", 2),
		slog.Bool("failed", true),
		slog.Float64("ratio", 0.5),
		slog.Duration("backoff", 2*time.Second),
		slog.Any("err", errors.New("boom")),
	)

	output := buf.String()
	for _, want := range []string{
		`"service":"http"`,
		`"restarts":2`,
		`"failed":true`,
		`"ratio":0.5`,
		`"err":"boom"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	logger.With("supervisor", "api-layer").
		WithGroup("event").
		Info("terminated", slog.String("service", "http-server"))

	output := buf.String()
	if !strings.Contains(output, `"supervisor":"api-layer"`) {
		t.Errorf("expected pre-configured attr, got: %s", output)
	}
	if !strings.Contains(output, `"event.service":"http-server"`) {
		t.Errorf("expected grouped key, got: %s", output)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)

	SetLogger(NewTestLogger(&buf))
	NewSlogLogger("supervisor").Info("tree started")

	if !strings.Contains(buf.String(), `"component":"supervisor"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

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
