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

package cli

// Config holds global CLI configuration taken from persistent flags.
// Empty values defer to the loaded configuration file.
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables debug logging
	Verbose bool

	// LogLevel overrides the configured log level
	LogLevel string

	// MetricsFile enables metrics and writes them to this textfile
	MetricsFile string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Verbose: false,
	}
}
