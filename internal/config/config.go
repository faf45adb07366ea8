// Package config loads sheetboard settings from defaults, an optional YAML
// file, SHEETBOARD_* environment variables and command-line overrides, in
// that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultSourceURL is the published sheet the dashboard reads when nothing else is configured.
const DefaultSourceURL = "https://docs.google.com/spreadsheets/d/e/" +
	"2PACX-1vQjovjEuYUCC0Bm7IuIYC8JE0eUtA58hfyYrreGW-5T8z4k0vs6Vt8i8IzeNY0ewDRP3XIJ4WJNPxXZ" +
	"/pub?gid=0&single=true&output=tsv"

// DefaultAddr is the listen address of the HTML surface.
const DefaultAddr = "127.0.0.1:8080"

// Environment variable names.
const (
	EnvSourceURL = "SHEETBOARD_SOURCE_URL"
	EnvTimeout   = "SHEETBOARD_SOURCE_TIMEOUT"
	EnvAddr      = "SHEETBOARD_ADDR"
	EnvLogLevel  = "SHEETBOARD_LOG_LEVEL"
	EnvLogFormat = "SHEETBOARD_LOG_FORMAT"
	EnvLogFile   = "SHEETBOARD_LOG_FILE"
	EnvConfig    = "SHEETBOARD_CONFIG"
)

// configFileName is looked up under the user config directory.
const configFileName = "config.yaml"

// Config is the full sheetboard configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig locates the sheet export.
type SourceConfig struct {
	URL string `yaml:"url"`
	// Timeout bounds a fetch; zero leaves the transport default in place.
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig configures the HTML surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// New returns the default configuration.
func New() *Config {
	return &Config{
		Source: SourceConfig{URL: DefaultSourceURL},
		Server: ServerConfig{Addr: DefaultAddr},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (or the default
// location when path is empty) and the environment. A missing default file
// is not an error; a missing explicit file is.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if path == "" {
		if v, ok := lookupEnv(EnvConfig); ok && v != "" {
			path = v
		}
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the per-user config file path, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sheetboard", configFileName)
}

// ApplyEnv overrides fields from SHEETBOARD_* variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvSourceURL); ok && v != "" {
		c.Source.URL = v
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvTimeout, v, err)
		}
		c.Source.Timeout = d
	}
	if v, ok := lookupEnv(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate reports settings the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("%w: source.url is empty", ErrInvalidConfig)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout must be >= 0, got %s", ErrInvalidConfig, c.Source.Timeout)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
