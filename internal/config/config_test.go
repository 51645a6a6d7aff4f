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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

// TestLoad_Success tests successful loading of a valid config file
func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
scheme:
  prime: 2305843009213693951
  threshold: 4
  shares: 7
  max_share_id: 1000

logging:
  level: "debug"
  format: "json"

metrics:
  enabled: true
  textfile: "/var/lib/node_exporter/shamir.prom"

output:
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Scheme.Prime != 2305843009213693951 {
		t.Errorf("Scheme.Prime = %d, want 2305843009213693951", cfg.Scheme.Prime)
	}
	if cfg.Scheme.Threshold != 4 {
		t.Errorf("Scheme.Threshold = %d, want 4", cfg.Scheme.Threshold)
	}
	if cfg.Scheme.Shares != 7 {
		t.Errorf("Scheme.Shares = %d, want 7", cfg.Scheme.Shares)
	}
	if cfg.Scheme.MaxShareID != 1000 {
		t.Errorf("Scheme.MaxShareID = %d, want 1000", cfg.Scheme.MaxShareID)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Textfile == "" {
		t.Errorf("Metrics = %+v, want enabled with textfile", cfg.Metrics)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
}

// TestLoad_PartialFileKeepsDefaults tests that omitted sections keep defaults
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
scheme:
  threshold: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	def := Default()
	if cfg.Scheme.Prime != def.Scheme.Prime {
		t.Errorf("Scheme.Prime = %d, want default %d", cfg.Scheme.Prime, def.Scheme.Prime)
	}
	if cfg.Scheme.Threshold != 2 {
		t.Errorf("Scheme.Threshold = %d, want 2", cfg.Scheme.Threshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "scheme: [unterminated")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Fatalf("Load() error = %v, want parse error", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SSS_PRIME", "257")
	t.Setenv("SSS_THRESHOLD", "5")
	t.Setenv("SSS_SHARES", "9")
	t.Setenv("SSS_LOG_LEVEL", "warn")
	t.Setenv("SSS_LOG_FORMAT", "json")
	t.Setenv("SSS_METRICS_TEXTFILE", "/tmp/shamir.prom")
	t.Setenv("SSS_OUTPUT", "json")

	path := writeConfig(t, `
scheme:
  threshold: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Scheme.Prime != 257 {
		t.Errorf("Scheme.Prime = %d, want 257", cfg.Scheme.Prime)
	}
	if cfg.Scheme.Threshold != 5 {
		t.Errorf("Scheme.Threshold = %d, want 5", cfg.Scheme.Threshold)
	}
	if cfg.Scheme.Shares != 9 {
		t.Errorf("Scheme.Shares = %d, want 9", cfg.Scheme.Shares)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want warn/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Textfile != "/tmp/shamir.prom" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("SSS_THRESHOLD", "three")

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v, want nil", err)
	}
	if cfg.Scheme.Threshold != 3 {
		t.Errorf("Scheme.Threshold = %d, want default 3", cfg.Scheme.Threshold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"composite prime", func(c *Config) { c.Scheme.Prime = 100 }, "is not prime"},
		{"zero threshold", func(c *Config) { c.Scheme.Threshold = 0 }, "invalid threshold"},
		{"shares below threshold", func(c *Config) { c.Scheme.Shares = 2 }, "must be >= threshold"},
		{"shares above max id", func(c *Config) { c.Scheme.Shares = 300 }, "exceed the available share ids"},
		{"shares not below prime", func(c *Config) {
			c.Scheme.Prime = 5
			c.Scheme.Shares = 5
		}, "exceed the available share ids"},
		{"zero max share id", func(c *Config) { c.Scheme.MaxShareID = 0 }, "invalid max_share_id"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"metrics without textfile", func(c *Config) { c.Metrics.Enabled = true }, "metrics textfile is required"},
		{"bad output format", func(c *Config) { c.Output.Format = "table" }, "invalid output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestSchemeOptions(t *testing.T) {
	cfg := Default()
	cfg.Scheme.Threshold = 4
	cfg.Scheme.MaxShareID = 500

	opts := cfg.SchemeOptions()
	if opts.Threshold != 4 || opts.Prime != cfg.Scheme.Prime || opts.MaxShareID != 500 {
		t.Errorf("SchemeOptions() = %+v", opts)
	}
}
