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

// Package shamir implements Shamir's Secret Sharing over a prime field of
// fixed-width integers.
//
// A secret s is hidden as the constant term of a random polynomial of
// degree t-1:
//
//	p(x) = s + a1*x + a2*x^2 + ... + a(t-1)*x^(t-1)  (mod prime)
//
// Each share is a point (id, p(id)). Any t shares determine p and thus
// p(0) = s through Lagrange interpolation; fewer than t shares are
// consistent with every possible secret.
//
// # Usage
//
//	scheme, err := shamir.FromSecret(125, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shares, err := scheme.Split(5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, any 3 of the 5 shares recover the secret
//	secret, err := shamir.Combine(3, scheme.Prime(), shares[1:4])
//
// RecoverSecret accepts the raw (points, values) form for callers that
// keep shares in their own representation.
//
// # Constraints
//
//   - 0 <= secret < prime, and prime must be prime
//   - 1 <= threshold <= max share id, threshold < prime
//   - share ids lie in [1, max share id] and below the prime
//   - DefaultPrime (6326213) is small and only suitable for tests and demos
//
// Shares are not authenticated. A corrupted share produces a wrong secret
// rather than an error.
package shamir
