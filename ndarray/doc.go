// SPDX-License-Identifier: MIT

// Package ndarray is a minimal N-dimensional array for the spline engine.
//
// What it covers:
//
//   - Array, a dense row-major N-d container with shape introspection and
//     bounds-checked multi-index access.
//   - Axis-generic reshaping: To2D moves a chosen "signal" axis to the end and
//     flattens every other axis into one channel dimension; From2D undoes it.
//   - Diff, successive differences along an axis.
//
// Axes may be given as negative numbers counting from the end, so -1 always
// names the last axis.
//
// Usage:
//
//	y, _ := ndarray.New([]int{2, 4}, []float64{1, 2, 3, 4, 1, 3, 5, 7})
//	d, _ := ndarray.Diff(y, -1) // shape [2, 3]
//	m, _ := ndarray.To2D(y, 0)  // 4×2 working matrix
//
// Arrays share their backing slice with the caller when built through New or
// FromSlice. Do not mutate that slice while a computation holds the array.
package ndarray
