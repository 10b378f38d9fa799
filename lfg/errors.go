// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package lfg

import "errors"

var (
	// ErrInvalidModulus is returned when the modulus is not positive.
	ErrInvalidModulus = errors.New("lfg: modulus must be positive")

	// ErrInvalidLags is returned when the lags do not satisfy 0 < r < s < m.
	ErrInvalidLags = errors.New("lfg: lags must satisfy 0 < r < s < m")

	// ErrInvalidSeedWindow is returned when the seed window's length does
	// not equal max(r, s), or a seed value falls outside [0, m).
	ErrInvalidSeedWindow = errors.New("lfg: seed window must have length max(r, s) with every value in [0, m)")
)
