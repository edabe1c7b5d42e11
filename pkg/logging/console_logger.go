package logging

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// ConsoleLogger provides colored console output.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verbose bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to stdout.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stdout, verbose)
}

// NewConsoleLoggerTo creates a console logger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  w,
		verbose: verbose,
		fields:  make(map[string]any),
	}
}

func (c *ConsoleLogger) log(
	level LogLevel, color, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")

	all := maps.Clone(c.fields)
	if all == nil {
		all = make(map[string]any)
	}
	for _, f := range fields {
		all[f.Key] = f.Value
	}

	var fieldStr string
	if len(all) > 0 {
		parts := make([]string, 0, len(all))
		for _, k := range slices.Sorted(maps.Keys(all)) {
			parts = append(parts, fmt.Sprintf("%s=%v", k, all[k]))
		}
		fieldStr = " " + colorGray +
			fmt.Sprintf("{%s}", strings.Join(parts, ", ")) +
			colorReset
	}

	fmt.Fprintf(
		c.output, "%s%s%s [%s%-5s%s] %s%s\n",
		colorGray, ts, colorReset,
		color, level.String(), colorReset,
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, colorBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, colorYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, colorRed, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, colorGray, msg, fields...)
	}
}

// Success logs a passed run in green at info level.
func (c *ConsoleLogger) Success(msg string, fields ...Field) {
	c.log(LevelInfo, colorGreen, msg, fields...)
}

// WithFields returns a new Logger with additional default
// fields. The child shares the parent's writer and lock.
func (c *ConsoleLogger) WithFields(
	fields ...Field,
) Logger {
	newFields := maps.Clone(c.fields)
	if newFields == nil {
		newFields = make(map[string]any)
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		verbose: c.verbose,
		fields:  newFields,
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
