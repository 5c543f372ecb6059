// SPDX-License-Identifier: MIT

// Package ndarray - axis resolution and 2-D working layout.
//
// Every N-d array with a chosen axis decomposes into three factors:
//
//	shape = [outer..., n, inner...]  →  (outer, n, inner)
//
// where outer is the product of the axes before the chosen one and inner the
// product of the axes after it. Element (o, j, i) sits at flat offset
// (o*n + j)*inner + i. The 2-D working matrix puts channel o*inner + i on a row
// and the signal index j on a column, i.e. the chosen axis is permuted to the
// end and the remaining axes are flattened in row-major order.

package ndarray

import (
	"slices"

	"github.com/katalvlaran/csaps/matrix"
)

// ResolveAxis maps a possibly negative axis onto [0, ndim).
// Returns ErrAxisOutOfRange for axes outside [-ndim, ndim).
func ResolveAxis(ndim, axis int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, ErrAxisOutOfRange
	}

	return axis, nil
}

// split returns the (outer, n, inner) factors of shape around axis ax.
func split(shape []int, ax int) (outer, n, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:ax] {
		outer *= d
	}
	for _, d := range shape[ax+1:] {
		inner *= d
	}

	return outer, shape[ax], inner
}

// To2D copies a into a channels×n working matrix where n is the length of
// axis and channels is the product of all other axes.
//
// Errors: ErrNilArray, ErrAxisOutOfRange.
// Complexity: O(len(a)).
func To2D[T matrix.Float](a *Array[T], axis int) (*matrix.Dense[T], error) {
	if a == nil {
		return nil, arrayErrorf("To2D", ErrNilArray)
	}
	ax, err := ResolveAxis(len(a.shape), axis)
	if err != nil {
		return nil, arrayErrorf("To2D", err)
	}
	outer, n, inner := split(a.shape, ax)

	out, err := matrix.NewDense[T](outer*inner, n)
	if err != nil {
		return nil, arrayErrorf("To2D", err)
	}
	dst := out.RawData()

	// Fast path: signal axis already last, layouts coincide.
	if inner == 1 {
		copy(dst, a.data)

		return out, nil
	}

	var o, j, i int
	for o = 0; o < outer; o++ {
		for j = 0; j < n; j++ {
			src := a.data[(o*n+j)*inner : (o*n+j+1)*inner]
			for i = 0; i < inner; i++ {
				dst[(o*inner+i)*n+j] = src[i]
			}
		}
	}

	return out, nil
}

// From2D folds a channels×k working matrix back into an N-d array of the
// given shape, placing the k columns along axis. shape[axis] must equal
// m.Cols() and the product of the other axes must equal m.Rows().
//
// Errors: ErrNilArray, ErrBadShape, ErrAxisOutOfRange, ErrShapeMismatch.
func From2D[T matrix.Float](m *matrix.Dense[T], shape []int, axis int) (*Array[T], error) {
	if m == nil {
		return nil, arrayErrorf("From2D", ErrNilArray)
	}
	if _, err := shapeSize(shape); err != nil {
		return nil, arrayErrorf("From2D", err)
	}
	ax, err := ResolveAxis(len(shape), axis)
	if err != nil {
		return nil, arrayErrorf("From2D", err)
	}
	outer, k, inner := split(shape, ax)
	if k != m.Cols() || outer*inner != m.Rows() {
		return nil, arrayErrorf("From2D", ErrShapeMismatch)
	}

	sh := slices.Clone(shape)
	out := &Array[T]{shape: sh, strides: stridesOf(sh), data: make([]T, outer*k*inner)}
	src := m.RawData()

	if inner == 1 {
		copy(out.data, src)

		return out, nil
	}

	var o, j, i int
	for o = 0; o < outer; o++ {
		for i = 0; i < inner; i++ {
			row := src[(o*inner+i)*k : (o*inner+i+1)*k]
			for j = 0; j < k; j++ {
				out.data[(o*k+j)*inner+i] = row[j]
			}
		}
	}

	return out, nil
}
