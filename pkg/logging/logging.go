// Package logging configures structured logging for billsplit binaries.
//
// Usage:
//
//	logging.Setup("debug", false) // colored tint output on stderr
//	logging.Setup("info", true)   // JSON lines on stdout, for log shipping
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger.
func Setup(level string, json bool) {
	if json {
		slog.SetDefault(slog.New(NewJSONHandler(os.Stdout, ParseLevel(level))))
		return
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, ParseLevel(level))))
}

// NewHandler returns a colored tint handler writing to w.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// NewJSONHandler returns a JSON handler writing to w.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
