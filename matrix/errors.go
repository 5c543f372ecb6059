// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// the sentinels with an operation tag via matrixErrorf; callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a backing slice of the wrong length or a right-hand side with the
	// wrong number of rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfBand signals a write outside the stored band of a SymBand.
	ErrOutOfBand = errors.New("matrix: index outside band")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotPositiveDefinite is returned by BandCholesky.Factorize when a pivot
	// is zero, negative or not finite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNotFactorized is returned when a solve is attempted before a
	// successful factorization.
	ErrNotFactorized = errors.New("matrix: factorization not computed")
)
