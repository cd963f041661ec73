// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// moneydashboard client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Code should pass *Logger by pointer and obtain cycle-scoped loggers via
// FromContext or FromContextOr.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     components;
//   - a timestamp field added to every log entry;
//   - a caller field with the file:line of the log call.
//
// Package-level zerolog settings are left untouched, so loggers of the
// embedding application keep their own format.
func NewLogger(role string) *Logger {
	return NewWriterLogger(role, os.Stdout)
}

// NewWriterLogger is NewLogger with an explicit output writer.
func NewWriterLogger(role string, w io.Writer) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and as the library default when the caller
// does not supply a logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ParseLevel converts a textual level ("debug", "info", "warn", ...) into a
// zerolog.Level. An empty string selects info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	return lvl, nil
}

// WithLevel returns a copy of the receiver filtered at lvl. Unlike
// zerolog.SetGlobalLevel it does not affect other loggers in the process.
func (l *Logger) WithLevel(lvl zerolog.Level) *Logger {
	return &Logger{l.Level(lvl)}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// WithContext and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns a disabled logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return &Logger{*l}
}
