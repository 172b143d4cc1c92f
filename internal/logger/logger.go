package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON-structured logger writing to stderr.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Default is the default logger instance.
var Default = New(slog.LevelInfo)
