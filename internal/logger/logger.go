// Package logger defines the logging contract used across the application
// and its log/slog backed implementation.
package logger

import (
	"io"
	"log/slog"
)

// AppLogger defines the contract for logging in the application.
type AppLogger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, args ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, args ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, args ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, args ...any)

	// With returns a new logger with the given key-value pairs added to its context.
	With(args ...any) AppLogger
}

// Discard returns an AppLogger that drops everything. Intended for tests.
func Discard() AppLogger {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
