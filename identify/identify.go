// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package identify runs every family's reverser against one observed
// sequence and reports which, if any, recognize it. It mirrors the
// original command-line tool's "-r/--reverse" behaviour of trying every
// known generator rather than committing to one ahead of time.
package identify

import (
	"github.com/wren-projects/seedseeker"
	"github.com/wren-projects/seedseeker/lcg"
	"github.com/wren-projects/seedseeker/lfg"
	"github.com/wren-projects/seedseeker/mt19937"
	"github.com/wren-projects/seedseeker/ran3"
	"github.com/wren-projects/seedseeker/xoshiro"
)

// Match reports a family whose reverser recognized the observed sequence,
// and the State it recovered.
type Match struct {
	Family string
	State  any
}

// Identify tries every supported family's Reverse against values, in the
// same order original_source's reverse_sequence loops over REVERSERS, and
// returns a Match for each one that recognized it. Because a reverser's
// search consumes from an Iterator, each family gets its own fresh
// SliceIterator over the same backing slice.
func Identify(values []uint64) []Match {
	var matches []Match

	if s, ok := lfg.Reverse(seedseeker.NewSliceIterator(values)); ok {
		matches = append(matches, Match{Family: "lfg", State: s})
	}
	if s, ok := lcg.Reverse(seedseeker.NewSliceIterator(values)); ok {
		matches = append(matches, Match{Family: "lcg", State: s})
	}
	if s, ok := ran3.Reverse(seedseeker.NewSliceIterator(values)); ok {
		matches = append(matches, Match{Family: "ran3", State: s})
	}
	if s, ok := xoshiro.Reverse(seedseeker.NewSliceIterator(values)); ok {
		matches = append(matches, Match{Family: "xoshiro", State: s})
	}
	if s, ok := mt19937.Reverse(seedseeker.NewSliceIterator(values)); ok {
		matches = append(matches, Match{Family: "mt19937", State: s})
	}

	return matches
}
