// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package xoshiro implements the Xoshiro256** PRNG and the algebraic
// state-recovery attack that inverts its scrambler from four consecutive
// outputs.
package xoshiro

import "math/big"

// State is the four 64-bit words of Xoshiro256** internal state.
type State struct {
	S0, S1, S2, S3 uint64
}

// Equal reports whether two States are identical.
func (s State) Equal(other State) bool {
	return s == other
}

// Generator is a Xoshiro256** PRNG.
type Generator struct {
	s0, s1, s2, s3 uint64
}

// New creates a Generator from a seed state, rejecting the all-zero state:
// it is a fixed point of the step function and would never produce
// non-zero output.
func New(seed State) (*Generator, error) {
	if seed.S0 == 0 && seed.S1 == 0 && seed.S2 == 0 && seed.S3 == 0 {
		return nil, ErrAllZeroSeed
	}
	return &Generator{s0: seed.S0, s1: seed.S1, s2: seed.S2, s3: seed.S3}, nil
}

// FromState reconstructs a Generator from a captured State.
func FromState(s State) (*Generator, error) {
	return New(s)
}

// Next returns the next 64-bit output and advances the state, per the
// reference Xoshiro256** step.
func (g *Generator) Next() uint64 {
	r := rotl(g.s1*5, 7) * 9

	t := g.s1 << 17

	g.s2 ^= g.s0
	g.s3 ^= g.s1
	g.s1 ^= g.s2
	g.s0 ^= g.s3
	g.s2 ^= t
	g.s3 = rotl(g.s3, 45)

	return r
}

// Snapshot returns the generator's current State.
func (g *Generator) Snapshot() State {
	return State{S0: g.s0, S1: g.s1, S2: g.s2, S3: g.s3}
}

// rotl rotates x left by k bits within a 64-bit word. Go's shift and xor
// operators on uint64 already wrap modulo 2^64, so no explicit reduction is
// needed.
func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

var (
	inv9 = modInverse2to64(9)
	inv5 = modInverse2to64(5)
)

// modInverse2to64 returns the multiplicative inverse of x modulo 2^64. Both
// 9 and 5 are odd and therefore invertible; the state-recovery attack uses these
// inverses to undo the forward step's "* 9" and "* 5" scrambling.
func modInverse2to64(x uint64) uint64 {
	modulus := new(big.Int).Lsh(big.NewInt(1), 64)
	inverse := new(big.Int).ModInverse(new(big.Int).SetUint64(x), modulus)
	return inverse.Uint64()
}

// helper inverts the output scrambler rotl(s1*5, 7)*9, recovering s1 from a
// raw output: it multiplies by the inverse of 9, rotates right by 7 and
// multiplies by the inverse of 5.
func helper(x uint64) uint64 {
	return rotl(x*inv9, 57) * inv5
}
