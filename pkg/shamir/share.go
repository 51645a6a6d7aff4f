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
)

// Share is a single point (ID, Value) on a scheme's secret polynomial.
// Any threshold shares of the same set reconstruct the secret.
type Share struct {
	// SetID identifies the scheme that produced the share. It is empty for
	// shares assembled from raw points.
	SetID string `json:"set_id,omitempty"`

	// ID is the x coordinate (1 to the scheme's max share id)
	ID int `json:"id"`

	// Value is the polynomial evaluated at ID, in [0, prime)
	Value int64 `json:"value"`
}

// String returns a string representation of the share that does not
// include its value.
func (s Share) String() string {
	set := s.SetID
	if len(set) > 8 {
		set = set[:8]
	}
	return fmt.Sprintf("Share{ID: %d, Set: %s}", s.ID, set)
}

// Validate checks the share against the field it is supposed to live in.
func (s Share) Validate(prime int64) error {
	if s.ID < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidShareID, s.ID)
	}
	if int64(s.ID) >= prime {
		return fmt.Errorf("%w: %d (must be < prime %d)", ErrInvalidShareID, s.ID, prime)
	}
	if s.Value < 0 || s.Value >= prime {
		return fmt.Errorf("share %d value %d is outside [0, %d)", s.ID, s.Value, prime)
	}
	return nil
}

// Points splits shares into the parallel id and value slices accepted by
// RecoverSecret.
func Points(shares []Share) (points, values []int64) {
	points = make([]int64, len(shares))
	values = make([]int64, len(shares))
	for i, share := range shares {
		points[i] = int64(share.ID)
		values[i] = share.Value
	}
	return points, values
}
