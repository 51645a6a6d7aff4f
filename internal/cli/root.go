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

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeremyhahn/go-shamir/internal/config"
	"github.com/jeremyhahn/go-shamir/pkg/logging"
	"github.com/jeremyhahn/go-shamir/pkg/metrics"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command of one invocation
type app struct {
	flags  *Config
	cfg    *config.Config
	logger *logging.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		flags:  NewConfig(),
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Execute runs the root command against the process arguments
func Execute() error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).run(os.Args[1:])
}

// run executes args, writes the metrics textfile when enabled and prints
// any error to errOut
func (a *app) run(args []string) error {
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	err := rootCmd.Execute()

	if a.cfg != nil && a.cfg.Metrics.Enabled {
		if werr := metrics.WriteTextfile(a.cfg.Metrics.Textfile); werr != nil {
			a.logger.Error(werr)
			if err == nil {
				err = werr
			}
		}
	}

	if err != nil {
		_ = a.printerTo(a.errOut).PrintError(err) // best-effort
	}
	return err
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sss",
		Short: "Shamir secret sharing over a prime field",
		Long: `sss splits an integer secret into shares over the prime field Z/pZ
and recovers it from any threshold-sized subset of those shares.

The default prime is 6326213. Secrets must lie in [0, prime).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.ConfigFile, "config", "",
		"config file (YAML)")
	flags.StringVarP(&a.flags.OutputFormat, "output", "o", "",
		"output format (text, json)")
	flags.BoolVarP(&a.flags.Verbose, "verbose", "v", false,
		"verbose output")
	flags.StringVar(&a.flags.LogLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	flags.StringVar(&a.flags.MetricsFile, "metrics-file", "",
		"write Prometheus metrics to this textfile")

	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(a.newSplitCmd())
	rootCmd.AddCommand(a.newRecoverCmd())

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(a.flags.ConfigFile)
	if err != nil {
		return err
	}

	if a.flags.OutputFormat != "" {
		cfg.Output.Format = strings.ToLower(a.flags.OutputFormat)
	}
	if a.flags.LogLevel != "" {
		cfg.Logging.Level = a.flags.LogLevel
	}
	if a.flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	if a.flags.MetricsFile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = a.flags.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: a.errOut,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		"config_file", a.flags.ConfigFile,
		"prime", cfg.Scheme.Prime,
		"output", cfg.Output.Format)
	return nil
}

func (a *app) outputFormat() string {
	if a.cfg != nil {
		return a.cfg.Output.Format
	}
	if a.flags.OutputFormat != "" {
		return strings.ToLower(a.flags.OutputFormat)
	}
	return string(OutputFormatText)
}

func (a *app) printer() *Printer {
	return a.printerTo(a.out)
}

func (a *app) printerTo(w io.Writer) *Printer {
	return NewPrinter(a.outputFormat(), w)
}
