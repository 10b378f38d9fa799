// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package seedseeker provides the lazy-iterator infrastructure shared by
// every PRNG reverser in this module: a pull-based Iterator abstraction, a
// counting wrapper, a bounded buffering wrapper, and the synchronization
// driver that re-aligns a recovered generator's state to an observed input
// stream's current position.
//
// Each family-specific package (lcg, lfg, xoshiro, ran3, mt19937) builds its
// reverser on top of these primitives: it consumes values from an
// Iterator[uint64], performs its own algebraic or combinatorial attack, and
// hands the resulting candidate generator to Synchronize to confirm (or
// refute) that the recovered state reproduces the stream's unseen tail.
package seedseeker
