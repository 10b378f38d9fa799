// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package xoshiro

import "github.com/wren-projects/seedseeker"

// Reverse algebraically recovers the Xoshiro256** state from exactly four
// consecutive raw outputs. Each output is first unscrambled through helper
// to recover the pre-output value of s1 at that step; xoring
// successive recovered values against the known shift-by-17 of s1 then
// isolates s0^s2 and s0^s3, from which the original (s0, s1, s2, s3) falls
// out algebraically. The reconstructed generator is stepped forward four
// times to realign with the input's read position before a final agreement
// check confirms the guess.
func Reverse(input seedseeker.Iterator[uint64]) (State, bool) {
	var zero State

	a, ok := input.Next()
	if !ok {
		return zero, false
	}
	b, ok := input.Next()
	if !ok {
		return zero, false
	}
	c, ok := input.Next()
	if !ok {
		return zero, false
	}
	d, ok := input.Next()
	if !ok {
		return zero, false
	}

	s1 := helper(a)
	s0s2 := s1 ^ helper(b)
	s0s3 := (s1 << 17) ^ helper(c)

	t0 := s1 ^ s0s3
	t1 := s1 ^ s0s2
	t3 := t0 ^ helper(d) ^ (t1 << 17)

	s3 := rotl(t3, 64-45) ^ s1
	s0 := t0 ^ s1 ^ s3
	s2 := t1 ^ s0 ^ s1

	candidate, err := FromState(State{S0: s0, S1: s1, S2: s2, S3: s3})
	if err != nil {
		return zero, false
	}

	for range 4 {
		candidate.Next()
	}

	return seedseeker.Synchronize[State](input, candidate)
}
