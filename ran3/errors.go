// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package ran3

import "errors"

var (
	// ErrInvalidPointer is returned when a pointer in a captured State falls
	// outside the valid range [0, 55].
	ErrInvalidPointer = errors.New("ran3: pointers must be in [0, 55]")

	// ErrInvalidArrayValue is returned when a value in a captured State's
	// array falls outside the generator's output range.
	ErrInvalidArrayValue = errors.New("ran3: array values must be in [0, 2^31-1)")
)
