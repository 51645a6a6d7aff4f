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

package shamir

import (
	"fmt"

	"github.com/jeremyhahn/go-shamir/pkg/field"
)

// RecoverSecret reconstructs the secret from points (share ids) and the
// matching values using Lagrange interpolation at x = 0 over the field
// defined by prime. All supplied shares take part in the interpolation.
//
// Reconstruction is declined with ErrInsufficientShares when fewer than
// threshold values are supplied, and with ErrMismatchedInputLengths when
// points and values differ in length. The shares are not checked for
// consistency: a corrupted share yields a wrong secret.
func RecoverSecret(threshold int, points, values []int64, prime int64) (int64, error) {
	if threshold < 1 {
		return 0, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidThreshold, threshold)
	}
	if !field.IsPrime(prime) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrime, prime)
	}
	if len(values) < threshold {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, threshold, len(values))
	}
	if len(points) != len(values) {
		return 0, fmt.Errorf("%w: %d points, %d values", ErrMismatchedInputLengths, len(points), len(values))
	}

	xs := make([]int64, len(points))
	seen := make(map[int64]int64, len(points))
	for i, x := range points {
		xs[i] = field.Mod(x, prime)
		if prev, ok := seen[xs[i]]; ok {
			return 0, fmt.Errorf("%w: %d and %d are congruent mod %d", ErrDuplicateShareID, prev, x, prime)
		}
		seen[xs[i]] = x
	}

	return lagrangeInterpolateAtZero(xs, values, prime)
}

// Combine reconstructs the secret from shares. Shares that carry a set id
// must all carry the same one.
func Combine(threshold int, prime int64, shares []Share) (int64, error) {
	var setID string
	for i, share := range shares {
		if err := share.Validate(prime); err != nil {
			return 0, fmt.Errorf("invalid share %d: %w", i, err)
		}
		if share.SetID == "" {
			continue
		}
		if setID == "" {
			setID = share.SetID
		} else if share.SetID != setID {
			return 0, fmt.Errorf("%w: %s != %s", ErrMixedShareSets, share.SetID, setID)
		}
	}

	points, values := Points(shares)
	return RecoverSecret(threshold, points, values, prime)
}

// lagrangeInterpolateAtZero returns f(0) for the unique polynomial of
// degree < len(xs) through the points (xs[i], ys[i]). The xs must be
// distinct and already reduced mod prime.
func lagrangeInterpolateAtZero(xs, ys []int64, prime int64) (int64, error) {
	var acc int64
	for i, xi := range xs {
		// Lagrange basis l_i(0) = prod(x_j) / prod(x_j - x_i) for j != i
		numerator, denominator := int64(1), int64(1)
		for j, xj := range xs {
			if i == j {
				continue
			}
			numerator = field.Mul(numerator, xj, prime)
			denominator = field.Mul(denominator, field.Sub(xj, xi, prime), prime)
		}

		inv, err := field.Inverse(denominator, prime)
		if err != nil {
			return 0, fmt.Errorf("lagrange basis %d: %w", i, err)
		}

		term := field.Mul(field.Mul(ys[i], numerator, prime), inv, prime)
		acc = field.Add(acc, term, prime)
	}
	return acc, nil
}
