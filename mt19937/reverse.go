// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package mt19937

import "github.com/wren-projects/seedseeker"

// Reverse recovers MT19937 state from exactly N consecutive raw outputs:
// tempering is a fixed GF(2)-linear bijection on each 32-bit word,
// independent across outputs, so untempering the N observed words
// reconstructs the twisted array exactly. Setting the index to N makes the
// reconstructed generator re-twist on its very next call, aligning it with
// the real generator's (N+1)-th output.
func Reverse(input seedseeker.Iterator[uint64]) (State, bool) {
	var zero State

	var mt [N]uint32
	for i := 0; i < N; i++ {
		v, ok := input.Next()
		if !ok {
			return zero, false
		}
		if v > 0xffffffff {
			return zero, false
		}
		mt[i] = untemper(uint32(v))
	}

	candidate, err := FromState(State{MT: mt, Idx: N})
	if err != nil {
		return zero, false
	}

	return seedseeker.Synchronize[State](input, candidate)
}
