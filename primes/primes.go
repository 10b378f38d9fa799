// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package primes computes the small-prime table the LCG reverser uses to
// narrow a candidate modulus down to the generator's true modulus.
package primes

import "github.com/wren-projects/seedseeker/internal/numeric"

// Limit is the upper bound of the prime table.
const Limit = 1 << 16

// table holds every prime <= Limit, computed once at package initialization.
var table = numeric.Sieve[uint64](Limit)

// Divisors yields n itself, followed by n/p for every prime p <= Limit that
// divides n evenly. Order matters to callers: the full n is tried first,
// then progressively "cleaner" candidates, matching the search order the
// LCG reverser relies on.
func Divisors(n uint64) []uint64 {
	divisors := []uint64{n}

	for _, p := range table {
		if res, rem := n/p, n%p; rem == 0 {
			divisors = append(divisors, res)
		}
	}

	return divisors
}
