// SPDX-License-Identifier: MIT

// Package matrix provides the small dense and banded linear-algebra kernels
// the smoothing-spline engine is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major two-dimensional working matrix over any Float type
//     with bounds-checked accessors and no-copy row views.
//   - SymBand, compact storage for symmetric band matrices (only the upper
//     band is stored, row by row).
//   - BandCholesky, a UᵀU factorization of symmetric positive-definite band
//     matrices that solves many right-hand sides at once.
//
// All public entry points return sentinel errors (see errors.go) instead of
// panicking on user-triggered conditions. Loop orders are fixed, so results
// are bit-for-bit reproducible for identical inputs.
//
// Complexity quicksheet:
//
//   - NewDense: O(r*c); At/Set/Row: O(1); Clone: O(r*c).
//   - NewSymBand: O(n*(k+1)); Trace: O(n); AddScaled: O(n*(k+1)).
//   - BandCholesky.Factorize: O(n*k²); SolveTo: O(n*k*m) for m right-hand sides.
package matrix
