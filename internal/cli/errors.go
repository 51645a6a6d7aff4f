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
	"errors"

	"github.com/jeremyhahn/go-shamir/pkg/field"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
)

// errorType classifies an error for metrics labels and JSON output
func errorType(err error) string {
	switch {
	case errors.Is(err, shamir.ErrSecretTooLarge):
		return "secret_too_large"
	case errors.Is(err, shamir.ErrNegativeSecret):
		return "negative_secret"
	case errors.Is(err, shamir.ErrInvalidPrime):
		return "invalid_prime"
	case errors.Is(err, shamir.ErrInvalidThreshold):
		return "invalid_threshold"
	case errors.Is(err, shamir.ErrInvalidShareID):
		return "invalid_share_id"
	case errors.Is(err, shamir.ErrInvalidShareCount):
		return "invalid_share_count"
	case errors.Is(err, shamir.ErrInsufficientShares):
		return "insufficient_shares"
	case errors.Is(err, shamir.ErrMismatchedInputLengths):
		return "mismatched_input_lengths"
	case errors.Is(err, shamir.ErrDuplicateShareID):
		return "duplicate_share_id"
	case errors.Is(err, shamir.ErrMixedShareSets):
		return "mixed_share_sets"
	case errors.Is(err, field.ErrNotInvertible), errors.Is(err, field.ErrInvalidModulus):
		return "field_arithmetic"
	default:
		return "other"
	}
}
