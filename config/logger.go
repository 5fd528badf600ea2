package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns the application logger writing to stdout. Production logs JSON,
// every other environment logs text with source positions. level accepts the slog
// names (debug, info, warn, error) and defaults to info.
func NewLogger(environment, level string) *slog.Logger {
	return newLogger(os.Stdout, environment, level)
}

func newLogger(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.AddSource = true
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
