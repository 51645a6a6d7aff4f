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

import "errors"

var (
	// ErrSecretTooLarge is returned when the secret is not below the prime.
	// Such a secret would be lost in the first modular reduction.
	ErrSecretTooLarge = errors.New("shamir: secret must be smaller than the prime")

	// ErrNegativeSecret is returned when the secret is below zero.
	ErrNegativeSecret = errors.New("shamir: secret must not be negative")

	// ErrInvalidPrime is returned when the modulus is not a prime number.
	ErrInvalidPrime = errors.New("shamir: modulus must be prime")

	// ErrInvalidThreshold is returned when the threshold is out of range.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrInvalidShareID is returned when a share id is below 1, above the
	// maximum share id, or not below the prime.
	ErrInvalidShareID = errors.New("shamir: invalid share id")

	// ErrInvalidShareCount is returned when more shares are requested than
	// there are valid ids, or fewer than the threshold.
	ErrInvalidShareCount = errors.New("shamir: invalid share count")

	// ErrInsufficientShares is returned when fewer shares than the threshold
	// are supplied for reconstruction.
	ErrInsufficientShares = errors.New("shamir: number of shares is below the threshold")

	// ErrMismatchedInputLengths is returned when the number of points and
	// values supplied for reconstruction differ.
	ErrMismatchedInputLengths = errors.New("shamir: points and values have different lengths")

	// ErrDuplicateShareID is returned when two shares have the same id
	// modulo the prime.
	ErrDuplicateShareID = errors.New("shamir: duplicate share id")

	// ErrMixedShareSets is returned when shares produced by different
	// schemes are combined.
	ErrMixedShareSets = errors.New("shamir: shares belong to different sets")
)
