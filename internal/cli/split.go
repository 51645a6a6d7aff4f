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
	"time"

	"github.com/jeremyhahn/go-shamir/pkg/metrics"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	secret     int64
	threshold  int
	shares     int
	ids        []int
	prime      int64
	maxShareID int
}

func (a *app) newSplitCmd() *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long: `Build a random polynomial whose constant term is the secret and print
the shares at ids 1..N, or at the ids given with --ids. Any threshold of
them recovers the secret.`,
		Example: `  sss split --secret 125 --threshold 3 --shares 5
  sss split --secret 125 --threshold 2 --ids 3,7,9 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("secret") {
				return fmt.Errorf("--secret is required")
			}
			if !cmd.Flags().Changed("threshold") {
				opts.threshold = a.cfg.Scheme.Threshold
			}
			if !cmd.Flags().Changed("shares") {
				opts.shares = a.cfg.Scheme.Shares
			}
			if !cmd.Flags().Changed("prime") {
				opts.prime = a.cfg.Scheme.Prime
			}
			if !cmd.Flags().Changed("max-share-id") {
				opts.maxShareID = a.cfg.Scheme.MaxShareID
			}
			return a.split(opts)
		},
	}

	cmd.Flags().Int64Var(&opts.secret, "secret", 0, "secret to split, in [0, prime)")
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "shares required to recover the secret")
	cmd.Flags().IntVarP(&opts.shares, "shares", "n", 0, "number of shares to issue (ids 1..n)")
	cmd.Flags().IntSliceVar(&opts.ids, "ids", nil, "explicit share ids to issue instead of 1..n")
	cmd.Flags().Int64Var(&opts.prime, "prime", 0, "prime modulus of the field")
	cmd.Flags().IntVar(&opts.maxShareID, "max-share-id", 0, "largest share id the scheme may issue")

	return cmd
}

func (a *app) split(opts *splitOptions) error {
	start := time.Now()

	scheme, err := shamir.NewScheme(opts.secret, &shamir.Config{
		Threshold:  opts.threshold,
		Prime:      opts.prime,
		MaxShareID: opts.maxShareID,
	})
	if err != nil {
		a.recordFailure(metrics.OpSplit, start, err)
		return fmt.Errorf("failed to create scheme: %w", err)
	}
	metrics.RecordOperation(metrics.OpSplit, metrics.StatusSuccess, time.Since(start).Seconds())
	metrics.RecordThreshold(scheme.Threshold())

	logger := a.logger.With("set_id", scheme.ID())
	logger.Info("scheme created",
		"threshold", scheme.Threshold(),
		"prime", scheme.Prime())

	start = time.Now()
	var shares []shamir.Share
	if len(opts.ids) > 0 {
		shares, err = scheme.Shares(opts.ids...)
	} else {
		shares, err = scheme.Split(opts.shares)
	}
	if err != nil {
		a.recordFailure(metrics.OpShare, start, err)
		return fmt.Errorf("failed to derive shares: %w", err)
	}
	metrics.RecordOperation(metrics.OpShare, metrics.StatusSuccess, time.Since(start).Seconds())
	metrics.RecordShares(len(shares))

	logger.Debug("shares derived", "count", len(shares))

	return a.printer().PrintShareSet(&ShareSet{
		SetID:     scheme.ID(),
		Prime:     scheme.Prime(),
		Threshold: scheme.Threshold(),
		Shares:    shares,
	})
}

// recordFailure records an errored operation and its classified error type
func (a *app) recordFailure(operation string, start time.Time, err error) {
	metrics.RecordOperation(operation, metrics.StatusError, time.Since(start).Seconds())
	metrics.RecordError(operation, errorType(err))
	a.logger.Warn("operation failed", "operation", operation, "error", err)
}
