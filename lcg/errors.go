// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package lcg

import "errors"

var (
	// ErrInvalidModulus is returned when the modulus is not positive.
	ErrInvalidModulus = errors.New("lcg: modulus must be positive")

	// ErrInvalidMultiplier is returned when the multiplier does not satisfy
	// 0 < a < m.
	ErrInvalidMultiplier = errors.New("lcg: multiplier must satisfy 0 < a < m")

	// ErrInvalidIncrement is returned when the increment does not satisfy
	// 0 <= c < m.
	ErrInvalidIncrement = errors.New("lcg: increment must satisfy 0 <= c < m")

	// ErrInvalidSeed is returned when the seed does not satisfy 0 <= x0 < m.
	ErrInvalidSeed = errors.New("lcg: seed must satisfy 0 <= x0 < m")
)
