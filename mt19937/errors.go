// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package mt19937

import "errors"

// ErrInvalidIndex is returned when a captured State's index falls outside
// [0, N].
var ErrInvalidIndex = errors.New("mt19937: index must be in [0, 624]")
