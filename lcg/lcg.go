// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package lcg implements a Linear Congruential Generator and the
// determinant/gcd attack that recovers its parameters from a run of raw
// outputs.
package lcg

import "math/big"

// State is the full parameter set of a Linear Congruential Generator:
// Xₙ₊₁ = (a·Xₙ + c) mod m.
type State struct {
	M uint64
	A uint64
	C uint64
	X uint64
}

// Equal reports whether two States describe the same generator, field-wise.
func (s State) Equal(other State) bool {
	return s == other
}

// Generator is a Linear Congruential Generator.
type Generator struct {
	m, a, c, x uint64
}

// New creates a Generator from defining parameters, validating that
// m > 0, 0 < a < m, 0 <= c < m, and 0 <= x0 < m.
func New(m, a, c, x0 uint64) (*Generator, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}
	if a == 0 || a >= m {
		return nil, ErrInvalidMultiplier
	}
	if c >= m {
		return nil, ErrInvalidIncrement
	}
	if x0 >= m {
		return nil, ErrInvalidSeed
	}

	return &Generator{m: m, a: a, c: c, x: x0}, nil
}

// FromState reconstructs a Generator from a previously captured State.
func FromState(s State) (*Generator, error) {
	return New(s.M, s.A, s.C, s.X)
}

// Next returns the next output and advances the generator.
//
// The multiplication is carried out with math/big because a and x may each
// approach the full 64-bit modulus, and their product can require up to 128
// bits before the modulo reduction brings it back into range.
func (g *Generator) Next() uint64 {
	x := new(big.Int).SetUint64(g.x)
	x.Mul(x, new(big.Int).SetUint64(g.a))
	x.Add(x, new(big.Int).SetUint64(g.c))
	x.Mod(x, new(big.Int).SetUint64(g.m))

	g.x = x.Uint64()
	return g.x
}

// Snapshot returns the generator's current State.
func (g *Generator) Snapshot() State {
	return State{M: g.m, A: g.a, C: g.c, X: g.x}
}
