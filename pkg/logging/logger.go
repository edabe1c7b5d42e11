// Package logging provides structured logging for soft assertion
// runs with JSON, console, and multi-destination output.
package logging

import (
	"fmt"
	"strings"
)

// Logger defines the interface for structured logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// Close flushes any buffers and releases resources.
	Close() error
}

// SuccessLogger is a Logger that highlights passed runs.
type SuccessLogger interface {
	Logger
	Success(msg string, fields ...Field)
}

// Success logs msg through l's Success when it has one and falls
// back to Info otherwise.
func Success(l Logger, msg string, fields ...Field) {
	if sl, ok := l.(SuccessLogger); ok {
		sl.Success(msg, fields...)
		return
	}
	l.Info(msg, fields...)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}
