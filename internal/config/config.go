// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jeremyhahn/go-shamir/pkg/field"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration
type Config struct {
	Scheme  SchemeConfig  `yaml:"scheme"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Output  OutputConfig  `yaml:"output"`
}

// SchemeConfig contains the default sharing parameters
type SchemeConfig struct {
	Prime      int64 `yaml:"prime"`
	Threshold  int   `yaml:"threshold"`
	Shares     int   `yaml:"shares"`
	MaxShareID int   `yaml:"max_share_id"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the metrics textfile
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Scheme: SchemeConfig{
			Prime:      shamir.DefaultPrime,
			Threshold:  3,
			Shares:     5,
			MaxShareID: shamir.DefaultMaxShareID,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults and
// applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 - Config file path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it is set and falls back to the defaults
// (with environment overrides) otherwise
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg := Default()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) {
	if prime := os.Getenv("SSS_PRIME"); prime != "" {
		p, err := strconv.ParseInt(prime, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid SSS_PRIME value %q, using %d: %v",
				prime, cfg.Scheme.Prime, err)
		} else {
			cfg.Scheme.Prime = p
		}
	}
	if threshold := os.Getenv("SSS_THRESHOLD"); threshold != "" {
		t, err := strconv.Atoi(threshold)
		if err != nil {
			log.Printf("Warning: invalid SSS_THRESHOLD value %q, using %d: %v",
				threshold, cfg.Scheme.Threshold, err)
		} else {
			cfg.Scheme.Threshold = t
		}
	}
	if shares := os.Getenv("SSS_SHARES"); shares != "" {
		n, err := strconv.Atoi(shares)
		if err != nil {
			log.Printf("Warning: invalid SSS_SHARES value %q, using %d: %v",
				shares, cfg.Scheme.Shares, err)
		} else {
			cfg.Scheme.Shares = n
		}
	}

	// Logging
	if level := os.Getenv("SSS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SSS_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}

	// Metrics
	if textfile := os.Getenv("SSS_METRICS_TEXTFILE"); textfile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = textfile
	}

	if format := os.Getenv("SSS_OUTPUT"); format != "" {
		cfg.Output.Format = format
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !field.IsPrime(c.Scheme.Prime) {
		return fmt.Errorf("scheme prime %d is not prime", c.Scheme.Prime)
	}
	if c.Scheme.MaxShareID < 1 {
		return fmt.Errorf("invalid max_share_id: %d", c.Scheme.MaxShareID)
	}
	if c.Scheme.Threshold < 1 {
		return fmt.Errorf("invalid threshold: %d (must be >= 1)", c.Scheme.Threshold)
	}
	if c.Scheme.Shares < c.Scheme.Threshold {
		return fmt.Errorf("shares (%d) must be >= threshold (%d)", c.Scheme.Shares, c.Scheme.Threshold)
	}
	if c.Scheme.Shares > c.Scheme.MaxShareID || int64(c.Scheme.Shares) >= c.Scheme.Prime {
		return fmt.Errorf("shares (%d) exceed the available share ids", c.Scheme.Shares)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"json": true, "text": true, "console": true,
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be json, text, or console)", c.Logging.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return fmt.Errorf("metrics textfile is required when metrics are enabled")
	}

	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be text or json)", c.Output.Format)
	}

	return nil
}

// SchemeOptions converts the scheme section into shamir construction options
func (c *Config) SchemeOptions() *shamir.Config {
	return &shamir.Config{
		Threshold:  c.Scheme.Threshold,
		Prime:      c.Scheme.Prime,
		MaxShareID: c.Scheme.MaxShareID,
	}
}
