// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package xoshiro

import "errors"

// ErrAllZeroSeed is returned when every word of the seed state is zero.
// The all-zero state is a fixed point of Xoshiro256**: it would generate
// nothing but zeroes forever.
var ErrAllZeroSeed = errors.New("xoshiro: seed state must not be all zero")
