// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and banded kernels.
package matrix

// Float is the element type constraint used across the module.
// Every kernel runs in the precision of T; nothing is promoted to float64
// behind the caller's back.
type Float interface {
	~float32 | ~float64
}

// Matrix is the read side of a two-dimensional array of T values.
// Dense and SymBand both satisfy it, which lets validators and tests treat
// them uniformly.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}
