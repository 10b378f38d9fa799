// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package ran3

import (
	"testing"

	"github.com/wren-projects/seedseeker"
)

func BenchmarkGenerator_Next(b *testing.B) {
	g := New(100)

	b.ResetTimer()
	for range b.N {
		g.Next()
	}
}

func BenchmarkReverse(b *testing.B) {
	g := New(100)
	outputs := make([]uint64, windowSize+10)
	for i := range outputs {
		outputs[i] = g.Next()
	}

	b.ResetTimer()
	for range b.N {
		Reverse(seedseeker.NewSliceIterator(outputs))
	}
}
