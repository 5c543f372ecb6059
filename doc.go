// SPDX-License-Identifier: MIT

// Package csaps fits and evaluates cubic smoothing splines over
// n-dimensional data.
//
// 🚀 What is a smoothing spline?
//
//	Given strictly increasing sites x and values y, the smoothing spline is
//	the piecewise cubic f minimizing
//
//	  p · Σ w_i (y_i − f(x_i))²  +  (1 − p) · ∫ f''(t)² dt
//
//	The single parameter p ∈ [0, 1] trades fidelity for smoothness:
//	  • p = 0 - the weighted least-squares straight line
//	  • p = 1 - the natural cubic interpolant
//	When p is not supplied a deterministic default is derived from the data
//	scale (no cross-validation).
//
// ✨ Key features:
//   - any rank of y: one axis is the signal axis, all others are independent
//     channels sharing sites, weights and p
//   - optional per-site weights
//   - float32 or float64 throughout (generic over Float)
//   - extrapolation with the boundary pieces
//   - JSON persistence of fitted splines
//
// ⚙️ Usage:
//
//	y, _ := ndarray.FromRows([][]float64{{1, 2, 3, 4}, {1, 3, 5, 7}})
//	s, err := csaps.New([]float64{1, 2, 3, 4}, y).
//		WithSmooth(0.85).
//		Make()
//	if err != nil {
//		// ErrInvalidSites, ErrAxisMismatch, *ConstructionError, ...
//	}
//	yi, err := s.Evaluate([]float64{1.5, 2.5})
//
// Lifecycle:
//
//	CubicSmoothingSpline is a two-state builder (Configured → Built). Every
//	WithX call moves it back to Configured and drops the fitted spline;
//	only Make moves it to Built; Evaluate is valid only in Built.
//	NdSpline, the fitted record, is immutable and safe for concurrent
//	evaluation.
//
// Packages:
//
//	matrix/  - Dense, SymBand, BandCholesky kernels
//	ndarray/ - N-d array, axis reshaping, Diff
//	cmd/csaps - command-line front-end
package csaps
