// Package logging configures the process-wide slog logger. Logs always go
// to stderr so the report on stdout stays byte-for-byte reproducible.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the default slog logger on stderr. Callers pass structured
// when the report itself is JSON, so a run piped into a JSON consumer gets
// JSON log lines too; a text report keeps text logs for the terminal.
func Init(structured bool, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, structured, level)))
}

// NewHandler returns the handler Init would install, writing to w.
func NewHandler(w io.Writer, structured bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if structured {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
