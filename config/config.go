// Package config loads labelkit settings for hosts and the labelfit CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/labelkit/measure"
)

// MeasureKind selects a built-in measurer.
type MeasureKind string

// Built-in measurers.
const (
	MeasureEstimating MeasureKind = "estimating"
	MeasureCells      MeasureKind = "cells"
)

// Measure configures the measurer.
type Measure struct {
	// Kind selects the measurer.
	// Default: "estimating".
	Kind MeasureKind `json:"kind" yaml:"kind" toml:"kind"`

	// CharWidth is the per-character width for the estimating measurer.
	// 0 uses the default (8).
	CharWidth float64 `json:"char_width" yaml:"char_width" toml:"char_width"`

	// LineHeight is the line height for the estimating measurer.
	// 0 uses the default (16).
	LineHeight float64 `json:"line_height" yaml:"line_height" toml:"line_height"`

	// EastAsian makes the cells measurer treat ambiguous-width characters
	// as double width.
	EastAsian bool `json:"east_asian" yaml:"east_asian" toml:"east_asian"`
}

// Config holds labelkit settings.
// Zero values use sensible defaults where noted.
type Config struct {
	// Table is the abbreviation table file (YAML, TOML or JSON).
	// Empty uses the embedded default table.
	Table string `json:"table" yaml:"table" toml:"table"`

	// Measure configures how labels are measured.
	Measure Measure `json:"measure" yaml:"measure" toml:"measure"`

	// Legacy enables legacy measurement: the original size is reused for
	// every tier check.
	Legacy bool `json:"legacy" yaml:"legacy" toml:"legacy"`

	// Watch reloads Table when the file changes. Requires Table.
	Watch bool `json:"watch" yaml:"watch" toml:"watch"`

	// PollInterval is the reload polling interval when file events are
	// unavailable. 0 uses the default (2s).
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval" toml:"poll_interval"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "info".
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Measure: Measure{
			Kind:       MeasureEstimating,
			CharWidth:  measure.DefaultCharWidth,
			LineHeight: measure.DefaultLineHeight,
		},
		LogLevel: "info",
	}
}

// Validate checks the config for errors.
func (c Config) Validate() error {
	switch c.Measure.Kind {
	case "", MeasureEstimating, MeasureCells:
	default:
		return fmt.Errorf("invalid measure kind %q", c.Measure.Kind)
	}
	if c.Measure.CharWidth < 0 {
		return errors.New("char_width must be non-negative")
	}
	if c.Measure.LineHeight < 0 {
		return errors.New("line_height must be non-negative")
	}
	if c.PollInterval < 0 {
		return errors.New("poll_interval must be non-negative")
	}
	if c.Watch && c.Table == "" {
		return errors.New("watch requires a table file")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Measurer builds the configured measurer.
func (c Config) Measurer() measure.Measurer {
	if c.Measure.Kind == MeasureCells {
		return measure.NewCells(c.Measure.EastAsian)
	}
	return measure.NewEstimatingWithMetrics(c.Measure.CharWidth, c.Measure.LineHeight)
}

// Level returns the configured log level. Invalid values fall back to info.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// Load reads a YAML or TOML config file on top of DefaultConfig. A relative
// Table path is resolved against the config file's directory.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if cfg.Table != "" && !filepath.IsAbs(cfg.Table) {
		cfg.Table = filepath.Join(filepath.Dir(path), cfg.Table)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
