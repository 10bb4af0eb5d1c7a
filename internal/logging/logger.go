// Package logging configures optional diagnostic logging for the dewpoint
// CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New builds a logger from the DEWPOINT_LOG environment variable. When the
// variable is unset or names no known level, logging is disabled entirely so
// that diagnostics never mix with the computed result on the contracted
// streams.
func New(w io.Writer, getenv func(string) string) *slog.Logger {
	level, ok := parseLevel(getenv("DEWPOINT_LOG"))
	if !ok {
		return slog.New(slog.DiscardHandler)
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "dewpoint")
}

func parseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
