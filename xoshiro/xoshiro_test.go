// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package xoshiro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RejectsAllZeroSeed(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := New(State{})
	is.ErrorIs(err, ErrAllZeroSeed)
}

func TestNew_AcceptsPartiallyZeroSeed(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := New(State{S0: 0, S1: 0, S2: 0, S3: 1})
	is.NoError(err)
}

func TestGenerator_DeterministicSequence(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	seed := State{S0: 1, S1: 2, S2: 3, S3: 4}

	g1, err := New(seed)
	is.NoError(err)
	g2, err := New(seed)
	is.NoError(err)

	for range 50 {
		is.Equal(g1.Next(), g2.Next())
	}
}

func TestGenerator_NeverReturnsToAllZeroState(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g, err := New(State{S0: 1, S1: 2, S2: 3, S3: 4})
	is.NoError(err)

	for range 1000 {
		g.Next()
		snap := g.Snapshot()
		is.False(snap.S0 == 0 && snap.S1 == 0 && snap.S2 == 0 && snap.S3 == 0)
	}
}

func TestFromState_RoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g, err := New(State{S0: 1, S1: 2, S2: 3, S3: 4})
	is.NoError(err)

	for range 10 {
		g.Next()
	}

	clone, err := FromState(g.Snapshot())
	is.NoError(err)

	for range 20 {
		is.Equal(g.Next(), clone.Next())
	}
}

func TestModInverse2to64_IsAGenuineInverse(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	// Multiplying by a value and its inverse modulo 2^64 must return to 1;
	// Go's native uint64 multiplication already wraps modulo 2^64.
	is.Equal(uint64(1), 9*inv9)
	is.Equal(uint64(1), 5*inv5)
}

func TestRotl_IsInvertedByComplementaryShift(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	x := uint64(0x0123456789abcdef)
	for k := uint(1); k < 64; k++ {
		is.Equal(x, rotl(rotl(x, k), 64-k))
	}
}
