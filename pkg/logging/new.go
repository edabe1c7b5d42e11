package logging

import (
	"fmt"
	"strings"

	"digital.vasic.softassert/pkg/config"
)

// New builds the logger described by cfg. A console logger with a
// Path also writes JSON to that file. Configured secrets wrap the
// result in a RedactingLogger.
func New(cfg config.Logging) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	verbose := cfg.Verbose || level == LevelDebug

	var logger Logger
	switch strings.ToLower(cfg.Format) {
	case "", "none":
		logger = NullLogger{}
	case "console":
		logger = NewConsoleLogger(verbose)
		if cfg.Path != "" {
			jl, err := NewJSONLogger(LoggerConfig{
				OutputPath: cfg.Path,
				Level:      level,
				Verbose:    verbose,
			})
			if err != nil {
				return nil, err
			}
			logger = NewMultiLogger(logger, jl)
		}
	case "json":
		jl, err := NewJSONLogger(LoggerConfig{
			OutputPath: cfg.Path,
			Level:      level,
			Verbose:    verbose,
		})
		if err != nil {
			return nil, err
		}
		logger = jl
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}

	if len(cfg.Secrets) > 0 {
		logger = NewRedactingLogger(logger, cfg.Secrets...)
	}
	return logger, nil
}
