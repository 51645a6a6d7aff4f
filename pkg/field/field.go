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

// Package field implements number-theory primitives over the prime field
// Z/pZ using fixed-width signed integers.
//
// Every function returns values normalized into [0, m) regardless of the
// sign of its inputs, so callers never depend on Go's truncated remainder.
// Multiplication goes through a 128-bit intermediate product, which makes
// any positive int64 modulus safe from overflow.
//
// The primitives are independent of any secret sharing data structure and
// can be used on their own:
//
//	inv, err := field.Inverse(3, 7) // inv == 5, since 3*5 = 15 = 2*7 + 1
package field

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

var (
	// ErrInvalidModulus is returned when a modulus is zero or negative.
	ErrInvalidModulus = errors.New("field: modulus must be positive")

	// ErrNotInvertible is returned when an element shares a factor with the
	// modulus and therefore has no multiplicative inverse.
	ErrNotInvertible = errors.New("field: element is not invertible")
)

// GCD runs the extended Euclidean algorithm on a and b. It returns g along
// with Bézout coefficients s and t such that g = s*a + t*b. For b == 0 the
// result is (a, 1, 0).
func GCD(a, b int64) (g, s, t int64) {
	// Iterative form of the recursion gcd(a, b) = gcd(b, a mod b).
	oldR, r := a, b
	oldS, curS := int64(1), int64(0)
	oldT, curT := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, curS = curS, oldS-q*curS
		oldT, curT = curT, oldT-q*curT
	}
	return oldR, oldS, oldT
}

// Mod reduces a into [0, m). m must be positive.
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Add returns (a + b) mod m.
func Add(a, b, m int64) int64 {
	// Both operands are below m <= MaxInt64, so the sum fits in a uint64.
	sum := uint64(Mod(a, m)) + uint64(Mod(b, m))
	return int64(sum % uint64(m))
}

// Sub returns (a - b) mod m.
func Sub(a, b, m int64) int64 {
	a, b = Mod(a, m), Mod(b, m)
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

// Mul returns (a * b) mod m without overflowing for any positive m.
func Mul(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(Mod(a, m)), uint64(Mod(b, m)))
	// hi < m holds because both factors are below m, so Rem64 cannot panic.
	return int64(bits.Rem64(hi, lo, uint64(m)))
}

// Inverse returns the unique r in [0, prime) such that (k * r) mod prime == 1.
//
// k is first reduced into [0, prime), then the extended Euclidean algorithm
// is run on (prime, k). ErrNotInvertible is returned when gcd(k, prime) != 1,
// which for a prime modulus only happens when k is a multiple of it.
func Inverse(k, prime int64) (int64, error) {
	if prime <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidModulus, prime)
	}
	k = Mod(k, prime)
	g, _, t := GCD(prime, k)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotInvertible, k, prime, g)
	}
	return Mod(t, prime), nil
}

// Div returns a * b^-1 mod m.
func Div(a, b, m int64) (int64, error) {
	inv, err := Inverse(b, m)
	if err != nil {
		return 0, err
	}
	return Mul(a, inv, m), nil
}

// IsPrime reports whether p is prime. The test is exact for every int64.
func IsPrime(p int64) bool {
	if p < 2 {
		return false
	}
	// ProbablyPrime applies Baillie-PSW, which has no known counterexample
	// and is proven correct below 2^64.
	return big.NewInt(p).ProbablyPrime(0)
}
