// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package lcg

import (
	"math/big"

	"github.com/wren-projects/seedseeker"
	"github.com/wren-projects/seedseeker/primes"
)

const (
	// minGuesses is the fewest determinant samples Reverse will accept
	// before giving up when the input runs dry early.
	minGuesses = 8

	// targetGuesses is how many determinant samples Reverse tries to
	// accumulate before attempting a gcd.
	targetGuesses = 30
)

// Reverse attempts to recover LCG parameters from a run of raw outputs. It
// reports not-recognized (a zero State and false) if fewer than minGuesses
// non-zero determinant samples could be formed, if their gcd is trivially 1,
// or if no modulus candidate admits a consistent (a, c).
func Reverse(input seedseeker.Iterator[uint64]) (State, bool) {
	var zero State

	buffered := seedseeker.NewBufferingIterator[uint64](input, 3)
	diffs := seedseeker.NewBufferingIterator[*big.Int](signedDiffs(buffered), 4)
	seedseeker.Drop[*big.Int](diffs, 4)

	if len(diffs.Buffer()) < 4 {
		return zero, false
	}

	var guesses []*big.Int

	for {
		buf := diffs.Buffer()
		guess := new(big.Int).Sub(
			new(big.Int).Mul(buf[3], buf[0]),
			new(big.Int).Mul(buf[1], buf[2]),
		)
		if guess.Sign() != 0 {
			guesses = append(guesses, guess)
		}

		_, ok := diffs.Next()
		exhausted := !ok

		if !exhausted && len(guesses) < targetGuesses {
			continue
		}
		if exhausted && len(guesses) < minGuesses {
			return zero, false
		}
		if len(guesses) == 0 {
			return zero, false
		}

		upperModulus := new(big.Int).Set(guesses[0])
		for _, g := range guesses[1:] {
			upperModulus.GCD(nil, nil, upperModulus, g)
		}
		upperModulus.Abs(upperModulus)

		if upperModulus.Cmp(big.NewInt(1)) <= 0 {
			return zero, false
		}

		// The gcd accumulated so far may still be wider than 64 bits even
		// though the true modulus, once fully converged, is guaranteed to
		// fit: more samples only ever shrink a running gcd, never grow it,
		// so an over-wide intermediate value is a reason to keep collecting
		// guesses, not to give up.
		if upperModulus.IsUint64() {
			rawBuf := buffered.Buffer()
			if len(rawBuf) < 3 {
				return zero, false
			}
			a1, a2, a3 := rawBuf[0], rawBuf[1], rawBuf[2]

			for _, m := range primes.Divisors(upperModulus.Uint64()) {
				state, ok := solve(m, a1, a2, a3)
				if !ok {
					continue
				}

				candidate, err := FromState(state)
				if err != nil {
					continue
				}

				return seedseeker.Synchronize[State](input, candidate)
			}
		}

		if exhausted {
			return zero, false
		}
	}
}

// solve attempts to find a multiplier and increment, mod m, consistent with
// three consecutive observed outputs.
func solve(m, a1, a2, a3 uint64) (State, bool) {
	modBig := new(big.Int).SetUint64(m)
	v1 := new(big.Int).SetUint64(a1)
	v2 := new(big.Int).SetUint64(a2)
	v3 := new(big.Int).SetUint64(a3)

	diff21 := new(big.Int).Mod(new(big.Int).Sub(v2, v1), modBig)
	inverse := new(big.Int).ModInverse(diff21, modBig)
	if inverse == nil {
		return State{}, false
	}

	multiple := new(big.Int).Mod(
		new(big.Int).Mul(new(big.Int).Sub(v3, v2), inverse),
		modBig,
	)
	if multiple.Sign() <= 0 || multiple.Cmp(modBig) >= 0 {
		return State{}, false
	}

	increment := new(big.Int).Mod(
		new(big.Int).Sub(v2, new(big.Int).Mul(multiple, v1)),
		modBig,
	)
	if increment.Sign() < 0 || increment.Cmp(modBig) >= 0 {
		return State{}, false
	}

	return State{M: m, A: multiple.Uint64(), C: increment.Uint64(), X: a3}, true
}

// signedDiffs yields the first difference stream of it: diffs[i] = it[i+1] -
// it[i], as an arbitrary-precision value since LCG outputs approaching a
// 64-bit modulus can produce differences that overflow a fixed-width signed
// integer once multiplied together downstream.
func signedDiffs(it seedseeker.Iterator[uint64]) seedseeker.Iterator[*big.Int] {
	return &diffIterator{it: it}
}

type diffIterator struct {
	it       seedseeker.Iterator[uint64]
	prev     uint64
	havePrev bool
}

func (d *diffIterator) Next() (*big.Int, bool) {
	if !d.havePrev {
		v, ok := d.it.Next()
		if !ok {
			return nil, false
		}
		d.prev = v
		d.havePrev = true
	}

	v, ok := d.it.Next()
	if !ok {
		return nil, false
	}

	diff := new(big.Int).Sub(new(big.Int).SetUint64(v), new(big.Int).SetUint64(d.prev))
	d.prev = v

	return diff, true
}
