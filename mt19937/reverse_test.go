// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package mt19937

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wren-projects/seedseeker"
)

func sequence(g *Generator, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// TestReverse_RoundTrip checks that, after exactly N outputs of a generator
// seeded with 19650218, Reverse recovers a state that continues identically
// for many further pulls.
func TestReverse_RoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g := New(19650218)
	outputs := sequence(g, N+1000)

	state, ok := Reverse(seedseeker.NewSliceIterator(outputs[:N]))
	is.True(ok, "N outputs should be sufficient to recognize an MT19937 sequence")

	clone, err := FromState(state)
	is.NoError(err)

	for i := N; i < len(outputs); i++ {
		is.Equal(outputs[i], clone.Next())
	}
}

// TestReverse_ExactBoundary verifies N outputs succeed and N-1 fail.
func TestReverse_ExactBoundary(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g := New(5489)
	outputs := sequence(g, N)

	_, ok := Reverse(seedseeker.NewSliceIterator(outputs[:N-1]))
	is.False(ok, "N-1 outputs should not be enough to untemper the full array")

	_, ok = Reverse(seedseeker.NewSliceIterator(outputs))
	is.True(ok)
}

// TestReverse_RejectsOutOfRangeValue verifies an output exceeding 32 bits is
// rejected outright, since MT19937 never emits one.
func TestReverse_RejectsOutOfRangeValue(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	values := make([]uint64, N)
	values[100] = 1 << 40

	_, ok := Reverse(seedseeker.NewSliceIterator(values))
	is.False(ok)
}
