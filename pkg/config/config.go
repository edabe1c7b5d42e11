// Package config loads soft assertion settings from a YAML file,
// an optional .env file and SOFTASSERT_* environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SOFTASSERT_"

// Config is the full soft assertion configuration.
type Config struct {
	Logging Logging `yaml:"logging" envPrefix:"LOG_"`
	Report  Report  `yaml:"report" envPrefix:"REPORT_"`
	Monitor Monitor `yaml:"monitor" envPrefix:"MONITOR_"`
}

// Logging selects and tunes the logger.
type Logging struct {
	// Format is one of "none", "console" or "json". Empty means none.
	Format string `yaml:"format" env:"FORMAT"`
	// Level is the minimum level written: debug, info, warn, error.
	// Empty means info.
	Level string `yaml:"level" env:"LEVEL"`
	// Path sends JSON logs to a file. With the json format the file
	// replaces stdout; with console it is written alongside.
	Path    string `yaml:"path" env:"PATH"`
	Verbose bool   `yaml:"verbose" env:"VERBOSE"`
	// Secrets are masked in every message and string field.
	Secrets []string `yaml:"secrets" env:"SECRETS" envSeparator:","`
}

// Report controls the report written by AssertAll.
type Report struct {
	// Format is empty (no report), "json", "yaml", "markdown" or
	// "html".
	Format string `yaml:"format" env:"FORMAT"`
	Dir    string `yaml:"dir" env:"DIR"`
	// Name labels the run inside the report.
	Name string `yaml:"name" env:"NAME"`
}

// Monitor configures the live failure stream.
type Monitor struct {
	// Addr is the listen address; empty disables the monitor.
	Addr string `yaml:"addr" env:"ADDR"`
}

var (
	logFormats    = []string{"", "none", "console", "json"}
	logLevels     = []string{"", "debug", "info", "warn", "warning", "error"}
	reportFormats = []string{"", "json", "yaml", "markdown", "html"}
)

// Default returns the configuration used when nothing is set:
// no logging, no report, no monitor.
func Default() Config {
	return Config{
		Logging: Logging{Format: "none", Level: "info"},
		Report:  Report{Dir: "reports", Name: "soft-assertions"},
	}
}

// Load reads the YAML file at path (skipped when path is empty) on
// top of Default and applies environment overrides.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, environ())
}

// LoadWithEnv is Load with an explicit environment, so callers can
// merge a .env file or isolate tests from the process environment.
func LoadWithEnv(path string, environment map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings. Empty values are accepted and
// mean the zero-value behaviour of each setting.
func (c Config) Validate() error {
	if !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !slices.Contains(reportFormats, strings.ToLower(c.Report.Format)) {
		return fmt.Errorf("invalid report format: %q", c.Report.Format)
	}
	return nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}
	return vars
}
