// Package config loads knightpath settings from an optional YAML file and
// the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig describes the board every command builds.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"` // 0 means square
}

// SearchConfig governs path search.
type SearchConfig struct {
	MaxResults int `yaml:"max_results"`
	Workers    int `yaml:"workers"` // concurrent queries in batch mode
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

const (
	defaultRows          = 8
	defaultMaxResults    = 1
	defaultWorkers       = 4
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Default returns the built-in configuration: square 8×8 board, one result,
// four batch workers, info-level text logs.
func Default() Config {
	return Config{
		Board:  BoardConfig{Rows: defaultRows},
		Search: SearchConfig{MaxResults: defaultMaxResults, Workers: defaultWorkers},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), then applies environment overrides, and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		// An empty file decodes to io.EOF and leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Board.Rows, err = intFromEnv("KNIGHTPATH_ROWS", c.Board.Rows); err != nil {
		return err
	}
	if c.Board.Cols, err = intFromEnv("KNIGHTPATH_COLS", c.Board.Cols); err != nil {
		return err
	}
	if c.Search.MaxResults, err = intFromEnv("KNIGHTPATH_MAX_RESULTS", c.Search.MaxResults); err != nil {
		return err
	}
	if c.Search.Workers, err = intFromEnv("KNIGHTPATH_WORKERS", c.Search.Workers); err != nil {
		return err
	}
	c.Logging.Level = valueOrDefault("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = valueOrDefault("LOG_FORMAT", c.Logging.Format)
	return nil
}

// Validate checks value ranges. Cols may be 0 (square board).
func (c Config) Validate() error {
	switch {
	case c.Board.Rows <= 0:
		return fmt.Errorf("%w: board.rows must be positive, got %d", ErrInvalidConfig, c.Board.Rows)
	case c.Board.Cols < 0:
		return fmt.Errorf("%w: board.cols cannot be negative, got %d", ErrInvalidConfig, c.Board.Cols)
	case c.Search.MaxResults < 1:
		return fmt.Errorf("%w: search.max_results must be at least 1, got %d", ErrInvalidConfig, c.Search.MaxResults)
	case c.Search.Workers < 1:
		return fmt.Errorf("%w: search.workers must be at least 1, got %d", ErrInvalidConfig, c.Search.Workers)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}
