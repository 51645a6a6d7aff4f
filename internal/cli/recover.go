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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jeremyhahn/go-shamir/pkg/metrics"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
)

type recoverOptions struct {
	threshold int
	prime     int64
	shares    []string
	stdin     bool
}

func (a *app) newRecoverCmd() *cobra.Command {
	opts := &recoverOptions{}

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover a secret from shares",
		Long: `Recover the secret by Lagrange interpolation at zero. Shares are given as
ID:VALUE pairs with --share, or read from the JSON document printed by
"sss split -o json" with --stdin. Every supplied share is used; a share
that does not belong to the set yields a wrong secret, not an error.`,
		Example: `  sss recover --threshold 3 --share 1:130 --share 2:141 --share 3:158
  sss split --secret 42 -t 2 -n 3 -o json | sss recover --stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var set *ShareSet
			if opts.stdin {
				var err error
				set, err = readShareSet(cmd.InOrStdin())
				if err != nil {
					return err
				}
			} else {
				set = &ShareSet{
					Prime:     a.cfg.Scheme.Prime,
					Threshold: a.cfg.Scheme.Threshold,
				}
			}

			for _, s := range opts.shares {
				share, err := parseShare(s)
				if err != nil {
					return err
				}
				set.Shares = append(set.Shares, share)
			}
			if cmd.Flags().Changed("threshold") {
				set.Threshold = opts.threshold
			}
			if cmd.Flags().Changed("prime") {
				set.Prime = opts.prime
			}
			if len(set.Shares) == 0 {
				return fmt.Errorf("no shares given: use --share ID:VALUE or --stdin")
			}
			return a.recover(set)
		},
	}

	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "threshold the shares were issued with")
	cmd.Flags().Int64Var(&opts.prime, "prime", 0, "prime modulus of the field")
	cmd.Flags().StringArrayVarP(&opts.shares, "share", "s", nil, "share as ID:VALUE (repeatable)")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read a JSON share set from stdin")

	return cmd
}

func (a *app) recover(set *ShareSet) error {
	start := time.Now()

	secret, err := shamir.Combine(set.Threshold, set.Prime, set.Shares)
	if err != nil {
		a.recordFailure(metrics.OpRecover, start, err)
		return fmt.Errorf("failed to recover secret: %w", err)
	}
	metrics.RecordOperation(metrics.OpRecover, metrics.StatusSuccess, time.Since(start).Seconds())

	a.logger.Info("secret recovered",
		"set_id", set.SetID,
		"threshold", set.Threshold,
		"shares", len(set.Shares))

	return a.printer().PrintSecret(secret, len(set.Shares))
}

// parseShare parses an ID:VALUE pair
func parseShare(s string) (shamir.Share, error) {
	idPart, valuePart, ok := strings.Cut(s, ":")
	if !ok {
		return shamir.Share{}, fmt.Errorf("invalid share %q: expected ID:VALUE", s)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return shamir.Share{}, fmt.Errorf("invalid share id in %q: %w", s, err)
	}
	value, err := strconv.ParseInt(strings.TrimSpace(valuePart), 10, 64)
	if err != nil {
		return shamir.Share{}, fmt.Errorf("invalid share value in %q: %w", s, err)
	}
	return shamir.Share{ID: id, Value: value}, nil
}

func readShareSet(r io.Reader) (*ShareSet, error) {
	var set ShareSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode share set: %w", err)
	}
	return &set, nil
}
