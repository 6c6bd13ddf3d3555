// Package logger builds the process-wide slog logger and provides
// shared attribute helpers.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text-handler logger at the given level. Unknown levels
// fall back to info.
func New(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}

// Scope tags log records with the subsystem that emitted them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error wraps an error as a slog attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
