// SPDX-License-Identifier: MIT

package csaps

import "github.com/katalvlaran/csaps/matrix"

// Float is the element type constraint (float32 or float64, including named
// types built on them).
type Float = matrix.Float

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAxis selects the last axis of y as the signal axis.
	DefaultAxis = -1

	// CubicOrder is the order (degree+1) of a regular smoothing spline piece.
	CubicOrder = 4

	// LinearOrder is the order of the two-site degenerate spline.
	LinearOrder = 2

	// MinSites is the minimum number of sites a spline can be built from.
	MinSites = 2
)
