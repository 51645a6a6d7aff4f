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

// Package polynomial evaluates polynomials with integer coefficients over a
// prime field.
package polynomial

import (
	"fmt"

	"github.com/jeremyhahn/go-shamir/pkg/field"
)

// Polynomial is an ordered coefficient sequence where index 0 holds the
// constant term: p(x) = c[0] + c[1]*x + ... + c[n-1]*x^(n-1).
type Polynomial []int64

// Degree returns the nominal degree of the polynomial, or -1 when empty.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x) mod modulus.
func (p Polynomial) Evaluate(x, modulus int64) (int64, error) {
	return Evaluate(p, x, modulus)
}

// Evaluate computes the polynomial described by coefficients at x, modulo
// modulus, using Horner's method:
//
//	p(x) = c0 + x(c1 + x(c2 + ... + x*cn))
//
// Every intermediate value is normalized into [0, modulus).
func Evaluate(coefficients []int64, x, modulus int64) (int64, error) {
	if modulus <= 0 {
		return 0, fmt.Errorf("%w: %d", field.ErrInvalidModulus, modulus)
	}

	var acc int64
	for i := len(coefficients) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x, modulus), coefficients[i], modulus)
	}
	return acc, nil
}
