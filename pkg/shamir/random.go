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
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource draws integers uniformly from the half-open range [lo, hi).
//
// A scheme consumes exactly threshold-1 draws from its source during
// construction and never touches it afterwards.
type RandomSource interface {
	Int64(lo, hi int64) (int64, error)
}

// CryptoSource is a RandomSource backed by crypto/rand.
type CryptoSource struct{}

// NewCryptoSource returns a RandomSource seeded from operating system entropy.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Int64 returns a uniformly distributed value in [lo, hi).
func (CryptoSource) Int64(lo, hi int64) (int64, error) {
	if hi <= lo {
		return 0, fmt.Errorf("empty range [%d, %d)", lo, hi)
	}
	span := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return lo + n.Int64(), nil
}
