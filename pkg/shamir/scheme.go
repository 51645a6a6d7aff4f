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

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shamir/pkg/field"
	"github.com/jeremyhahn/go-shamir/pkg/polynomial"
)

const (
	// DefaultPrime is the field modulus used when none is configured. It is
	// deliberately small and offers no cryptographic strength; pass a larger
	// prime through Config for real secrets.
	DefaultPrime int64 = 6326213

	// DefaultMaxShareID bounds share ids to a single byte.
	DefaultMaxShareID = 255
)

// Config configures scheme construction.
type Config struct {
	// Threshold is the number of shares needed to reconstruct (t >= 1)
	Threshold int

	// Prime is the field modulus. Zero selects DefaultPrime.
	Prime int64

	// MaxShareID is the largest share id the scheme hands out. Zero selects
	// DefaultMaxShareID. Larger values widen the id space beyond one byte.
	MaxShareID int

	// Random draws the polynomial coefficients. Nil selects a CryptoSource.
	Random RandomSource
}

// Scheme holds the secret polynomial of a single sharing. It is immutable
// after construction and safe for concurrent use.
type Scheme struct {
	id           string
	prime        int64
	threshold    int
	maxShareID   int
	coefficients polynomial.Polynomial
}

// FromSecret builds a scheme over DefaultPrime.
func FromSecret(secret int64, threshold int) (*Scheme, error) {
	return NewScheme(secret, &Config{Threshold: threshold})
}

// FromSecretWithPrime builds a scheme over the given prime.
func FromSecretWithPrime(secret int64, threshold int, prime int64) (*Scheme, error) {
	return NewScheme(secret, &Config{Threshold: threshold, Prime: prime})
}

// NewScheme builds a random polynomial of degree threshold-1 whose constant
// term is secret. The remaining coefficients are drawn uniformly from
// [1, prime).
func NewScheme(secret int64, config *Config) (*Scheme, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	prime := config.Prime
	if prime == 0 {
		prime = DefaultPrime
	}
	if !field.IsPrime(prime) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrime, prime)
	}

	maxShareID := config.MaxShareID
	if maxShareID == 0 {
		maxShareID = DefaultMaxShareID
	}
	if maxShareID < 1 {
		return nil, fmt.Errorf("%w: max share id %d must be positive", ErrInvalidShareID, maxShareID)
	}

	if err := validateThreshold(config.Threshold, maxShareID, prime); err != nil {
		return nil, err
	}

	if secret < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSecret, secret)
	}
	if secret >= prime {
		return nil, fmt.Errorf("%w: %d >= %d", ErrSecretTooLarge, secret, prime)
	}

	random := config.Random
	if random == nil {
		random = NewCryptoSource()
	}

	coefficients := make(polynomial.Polynomial, config.Threshold)
	coefficients[0] = secret
	for i := 1; i < config.Threshold; i++ {
		c, err := random.Int64(1, prime)
		if err != nil {
			return nil, fmt.Errorf("failed to generate random coefficient: %w", err)
		}
		if c < 1 || c >= prime {
			return nil, fmt.Errorf("random source returned %d outside [1, %d)", c, prime)
		}
		coefficients[i] = c
	}

	return &Scheme{
		id:           uuid.NewString(),
		prime:        prime,
		threshold:    config.Threshold,
		maxShareID:   maxShareID,
		coefficients: coefficients,
	}, nil
}

// validateThreshold ensures t distinct valid share ids can exist.
func validateThreshold(threshold, maxShareID int, prime int64) error {
	if threshold < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidThreshold, threshold)
	}
	if threshold > maxShareID {
		return fmt.Errorf("%w: %d exceeds max share id %d", ErrInvalidThreshold, threshold, maxShareID)
	}
	if int64(threshold) >= prime {
		return fmt.Errorf("%w: %d must be smaller than prime %d", ErrInvalidThreshold, threshold, prime)
	}
	return nil
}

// ID returns the set identifier stamped on every share of this scheme.
func (s *Scheme) ID() string {
	return s.id
}

// Prime returns the field modulus.
func (s *Scheme) Prime() int64 {
	return s.prime
}

// Threshold returns the number of shares needed to reconstruct.
func (s *Scheme) Threshold() int {
	return s.threshold
}

// MaxShareID returns the largest id GetShare accepts.
func (s *Scheme) MaxShareID() int {
	return s.maxShareID
}

// Coefficients returns a copy of the secret polynomial. Index 0 is the
// secret itself.
func (s *Scheme) Coefficients() []int64 {
	out := make([]int64, len(s.coefficients))
	copy(out, s.coefficients)
	return out
}

// GetShare evaluates the secret polynomial at x = id. Repeated calls with
// the same id return the same share.
func (s *Scheme) GetShare(id int) (Share, error) {
	if id < 1 || id > s.maxShareID {
		return Share{}, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidShareID, id, s.maxShareID)
	}
	// x = prime would evaluate to the secret itself.
	if int64(id) >= s.prime {
		return Share{}, fmt.Errorf("%w: %d (must be < prime %d)", ErrInvalidShareID, id, s.prime)
	}

	value, err := s.coefficients.Evaluate(int64(id), s.prime)
	if err != nil {
		return Share{}, err
	}
	return Share{SetID: s.id, ID: id, Value: value}, nil
}

// Shares derives one share per id.
func (s *Scheme) Shares(ids ...int) ([]Share, error) {
	shares := make([]Share, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateShareID, id)
		}
		seen[id] = struct{}{}

		share, err := s.GetShare(id)
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// Split derives the shares with ids 1 through total.
func (s *Scheme) Split(total int) ([]Share, error) {
	if total < s.threshold {
		return nil, fmt.Errorf("%w: total shares (%d) must be >= threshold (%d)",
			ErrInvalidShareCount, total, s.threshold)
	}
	if total > s.maxShareID || int64(total) >= s.prime {
		return nil, fmt.Errorf("%w: %d shares exceed the available ids", ErrInvalidShareCount, total)
	}

	ids := make([]int, total)
	for i := range ids {
		ids[i] = i + 1
	}
	return s.Shares(ids...)
}
