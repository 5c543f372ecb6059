// SPDX-License-Identifier: MIT

// Package matrix - banded Cholesky factorization.
//
// Purpose:
//   - Factorize a symmetric positive-definite band matrix A = UᵀU where U is
//     upper triangular with the same bandwidth as A.
//   - Solve A·X = B for many right-hand sides (the columns of B) with two
//     band-limited substitutions per row.
//
// Determinism & Performance:
//   - No pivoting; fixed i→j loop orders.
//   - Factorize is O(n*k²); SolveTo is O(n*k*m). Memory O(n*(k+1)) for U.
//
// Notes:
//   - A zero, negative or non-finite pivot is reported as
//     ErrNotPositiveDefinite.

package matrix

import "math"

const (
	ctxFactorize = "BandCholesky.Factorize"
	ctxSolveTo   = "BandCholesky.SolveTo"
)

// BandCholesky holds the upper-triangular factor of a symmetric band matrix.
// The zero value is ready for Factorize.
type BandCholesky[T Float] struct {
	u *SymBand[T] // upper factor stored in band layout; nil until Factorize succeeds
}

// Factorize computes U such that UᵀU = a.
//
// Implementation:
//   - Stage 1: validate a is non-nil.
//   - Stage 2: row-oriented elimination restricted to the band:
//     s = A[i,j] − Σ_{l=max(0,j−k)}^{i−1} U[l,i]·U[l,j];
//     U[i,i] = √s, U[i,j] = s / U[i,i] for j > i.
//   - Stage 3: reject pivots that are not strictly positive and finite.
//
// On failure the receiver is reset, so a later SolveTo reports ErrNotFactorized.
func (c *BandCholesky[T]) Factorize(a *SymBand[T]) error {
	c.u = nil
	if a == nil {
		return matrixErrorf(ctxFactorize, ErrNilMatrix)
	}

	n, k := a.n, a.k
	stride := k + 1
	u := &SymBand[T]{n: n, k: k, data: make([]T, len(a.data))}

	var (
		i, j, l int
		s, piv  T
	)
	for i = 0; i < n; i++ {
		for j = i; j <= i+k && j < n; j++ {
			s = a.data[i*stride+(j-i)]
			for l = max(0, j-k); l < i; l++ {
				s -= u.data[l*stride+(i-l)] * u.data[l*stride+(j-l)]
			}
			if j == i {
				// !(s > 0) also catches NaN.
				if !(s > 0) || math.IsInf(float64(s), 0) {
					return matrixErrorf(ctxFactorize, ErrNotPositiveDefinite)
				}
				piv = T(math.Sqrt(float64(s)))
				u.data[i*stride] = piv

				continue
			}
			u.data[i*stride+(j-i)] = s / piv
		}
	}
	c.u = u

	return nil
}

// Size returns the order of the factorized matrix, or 0 before Factorize.
func (c *BandCholesky[T]) Size() int {
	if c.u == nil {
		return 0
	}

	return c.u.n
}

// SolveTo solves A·X = B and stores X into dst.
// b is n×m (one right-hand side per column); dst must have the same shape.
// dst may alias b.
//
// Errors:
//   - ErrNotFactorized before a successful Factorize.
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch for shape violations.
//   - ErrNaNInf when the solution is not finite.
func (c *BandCholesky[T]) SolveTo(dst, b *Dense[T]) error {
	if c.u == nil {
		return matrixErrorf(ctxSolveTo, ErrNotFactorized)
	}
	if err := ValidateNotNil[T](dst); err != nil {
		return matrixErrorf(ctxSolveTo, err)
	}
	if err := ValidateNotNil[T](b); err != nil {
		return matrixErrorf(ctxSolveTo, err)
	}
	if err := ValidateSameShape[T](dst, b); err != nil {
		return matrixErrorf(ctxSolveTo, err)
	}
	n, k := c.u.n, c.u.k
	if b.r != n {
		return matrixErrorf(ctxSolveTo, ErrDimensionMismatch)
	}
	m := b.c
	stride := k + 1
	ud := c.u.data
	if dst != b {
		copy(dst.data, b.data)
	}
	x := dst.data

	var (
		i, j, l, col int
		f, piv       T
	)
	// Forward: Uᵀ·Y = B, row i depends on rows max(0,i−k)..i−1.
	for i = 0; i < n; i++ {
		row := x[i*m : (i+1)*m]
		for l = max(0, i-k); l < i; l++ {
			f = ud[l*stride+(i-l)]
			prev := x[l*m : (l+1)*m]
			for col = 0; col < m; col++ {
				row[col] -= f * prev[col]
			}
		}
		piv = ud[i*stride]
		for col = 0; col < m; col++ {
			row[col] /= piv
		}
	}

	// Backward: U·X = Y, row i depends on rows i+1..min(i+k, n−1).
	for i = n - 1; i >= 0; i-- {
		row := x[i*m : (i+1)*m]
		for j = i + 1; j <= i+k && j < n; j++ {
			f = ud[i*stride+(j-i)]
			next := x[j*m : (j+1)*m]
			for col = 0; col < m; col++ {
				row[col] -= f * next[col]
			}
		}
		piv = ud[i*stride]
		for col = 0; col < m; col++ {
			row[col] /= piv
		}
	}

	if err := ValidateFinite(dst); err != nil {
		return matrixErrorf(ctxSolveTo, err)
	}

	return nil
}
