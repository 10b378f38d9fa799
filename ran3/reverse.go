// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package ran3

import "github.com/wren-projects/seedseeker"

// windowSize is the number of raw outputs that exactly fill ran3's active
// array.
const windowSize = 55

// Reverse recovers a ran3 state from exactly 55 consecutive raw outputs.
// Because Next always writes its result back into the slot pointerA just
// advanced to, 55 consecutive outputs are themselves the generator's entire
// active array in order: no search is needed, only range validation (every
// legitimate output lies in [0, 2^31-1)) and a Synchronize confirmation
// against further input.
func Reverse(input seedseeker.Iterator[uint64]) (State, bool) {
	var zero State

	var window [windowSize]uint64
	for i := 0; i < windowSize; i++ {
		v, ok := input.Next()
		if !ok {
			return zero, false
		}
		if v >= maxInt32 {
			return zero, false
		}
		window[i] = v
	}

	var array [56]int64
	for i, v := range window {
		array[i+1] = int64(v)
	}

	candidate, err := FromState(State{Array: array, PointerA: 0, PointerB: 21})
	if err != nil {
		return zero, false
	}

	return seedseeker.Synchronize[State](input, candidate)
}
