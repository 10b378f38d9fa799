// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package lfg

import (
	"math/big"

	"github.com/wren-projects/seedseeker"
)

// MaxLag is the largest long lag the brute-force search over (r, s) pairs
// considers.
const MaxLag = 1000

// ValuesNeeded is the number of extra samples buffered beyond MaxLag so a
// consistency check has room to run even at the largest candidate lag.
const ValuesNeeded = 5

// Reverse consumes raw outputs and searches for a consistent (r, s, m,
// with_carry) hypothesis: for every candidate lag pair, it classifies
// successive three-term differences as agreement, a ±1 nudge
// (attributable to a carry), or an outright contradiction. Every pair is
// checked against at least ValuesNeeded samples. The first pair that
// survives the whole buffered run, with a defined positive modulus and a
// reconstructed state that forms a valid Generator, wins; its trailing
// window and, if carries were observed, its current carry bit are
// reconstructed from the tail of the input and then confirmed with
// Synchronize against any further input.
func Reverse(input seedseeker.Iterator[uint64]) (State, bool) {
	var zero State

	buf := seedseeker.NewBufferingIterator[uint64](input, MaxLag+ValuesNeeded)
	seedseeker.Drop[uint64](buf, MaxLag+ValuesNeeded)
	data := buf.Buffer()

	if len(data) < 2 {
		return zero, false
	}

	maxS := MaxLag
	if len(data)-ValuesNeeded < maxS {
		maxS = len(data) - ValuesNeeded
	}

	for s := 2; s <= maxS; s++ {
		for r := 1; r < s; r++ {
			mHat, withCarry, ok := scanLags(data, r, s)
			if !ok {
				continue
			}

			window := make([]uint64, s)
			copy(window, data[len(data)-s:])

			carry := false
			if withCarry {
				vr := data[len(data)-1-r]
				vs := data[len(data)-1-s]
				carry = vr+vs >= mHat
			}

			candidate, err := FromState(State{
				R: uint64(r), S: uint64(s), M: mHat,
				Window:    window,
				WithCarry: withCarry,
				Carry:     carry,
			})
			if err != nil {
				continue
			}

			return seedseeker.Synchronize[State](input, candidate)
		}
	}

	return zero, false
}

// scanLags walks data under the hypothesis that it was produced by an
// additive Lagged Fibonacci generator with lags (r, s). At each position it
// computes δ = Xᵢ₋ₛ + Xᵢ₋ᵣ − Xᵢ. Differences within
// [-1, 1] are ignored as noise-free agreement regardless of modulus.
// Otherwise, the first such δ establishes a modulus hypothesis; later
// values must either match it exactly, or differ from it by exactly ±1
// (recorded as evidence of a carry bit), or the pair is rejected outright.
// ok is false whenever no usable modulus could be pinned down.
func scanLags(data []uint64, r, s int) (mHat uint64, withCarry bool, ok bool) {
	one := big.NewInt(1)

	var hypothesis *big.Int

	for i := s; i < len(data); i++ {
		delta := new(big.Int).SetUint64(data[i-s])
		delta.Add(delta, new(big.Int).SetUint64(data[i-r]))
		delta.Sub(delta, new(big.Int).SetUint64(data[i]))

		if new(big.Int).Abs(delta).Cmp(one) <= 0 {
			continue
		}

		if hypothesis == nil {
			hypothesis = delta
			continue
		}

		diff := new(big.Int).Sub(delta, hypothesis)
		switch {
		case diff.Sign() == 0:
			continue
		case diff.Cmp(one) == 0:
			hypothesis = delta
			withCarry = true
		case diff.Cmp(new(big.Int).Neg(one)) == 0:
			withCarry = true
		default:
			return 0, false, false
		}
	}

	if hypothesis == nil || hypothesis.Sign() <= 0 || !hypothesis.IsUint64() {
		return 0, false, false
	}

	return hypothesis.Uint64(), withCarry, true
}
