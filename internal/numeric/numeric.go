// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package numeric provides a prime sieve that is generic over the unsigned
// integer width; the primes package builds its table with it.
package numeric

import "golang.org/x/exp/constraints"

// Sieve returns every prime p with 2 <= p <= limit, computed by a sieve of
// Eratosthenes.
func Sieve[T constraints.Unsigned](limit T) []T {
	if limit < 2 {
		return nil
	}

	isComposite := make([]bool, limit+1)
	var primes []T

	for i := T(2); i <= limit; i++ {
		if isComposite[i] {
			continue
		}
		primes = append(primes, i)

		for j := i * 2; j <= limit; j += i {
			isComposite[j] = true
		}
	}

	return primes
}
