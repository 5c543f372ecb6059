// SPDX-License-Identifier: MIT

package ndarray

import (
	"slices"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/katalvlaran/csaps/matrix"
)

// Diff returns the successive differences of a along axis:
//
//	out[..., j, ...] = a[..., j+1, ...] - a[..., j, ...]
//
// The axis shrinks by one; all other axes are unchanged. An axis of length 0
// or 1 yields a zero-length result along that axis, not an error.
//
// Errors: ErrNilArray, ErrAxisOutOfRange.
// Complexity: O(len(a)).
func Diff[T matrix.Float](a *Array[T], axis int) (*Array[T], error) {
	if a == nil {
		return nil, arrayErrorf("Diff", ErrNilArray)
	}
	ax, err := ResolveAxis(len(a.shape), axis)
	if err != nil {
		return nil, arrayErrorf("Diff", err)
	}
	outer, n, inner := split(a.shape, ax)
	m := max(n-1, 0)

	sh := slices.Clone(a.shape)
	sh[ax] = m
	out := &Array[T]{shape: sh, strides: stridesOf(sh), data: make([]T, outer*m*inner)}

	// Along the signal axis the rows are contiguous: hi and lo are the row
	// shifted by one element. Otherwise each (o, j) step is a contiguous block
	// of inner elements.
	var o, j int
	if inner == 1 {
		for o = 0; o < outer; o++ {
			row := a.data[o*n : (o+1)*n]
			if m == 0 {
				continue
			}
			subInto(out.data[o*m:(o+1)*m], row[1:], row[:m])
		}

		return out, nil
	}
	for o = 0; o < outer; o++ {
		for j = 0; j < m; j++ {
			lo := a.data[(o*n+j)*inner : (o*n+j+1)*inner]
			hi := a.data[(o*n+j+1)*inner : (o*n+j+2)*inner]
			subInto(out.data[(o*m+j)*inner:(o*m+j+1)*inner], hi, lo)
		}
	}

	return out, nil
}

// DiffSlice is Diff for a plain 1-D slice.
func DiffSlice[T matrix.Float](v []T) []T {
	if len(v) < 2 {
		return []T{}
	}
	out := make([]T, len(v)-1)
	subInto(out, v[1:], v[:len(v)-1])

	return out
}

// subInto writes dst = x - y elementwise. float64 and float32 slices go
// through vek's SIMD kernels; named float types fall back to a plain loop.
func subInto[T matrix.Float](dst, x, y []T) {
	switch d := any(dst).(type) {
	case []float64:
		vek.Sub_Into(d, any(x).([]float64), any(y).([]float64))
	case []float32:
		vek32.Sub_Into(d, any(x).([]float32), any(y).([]float32))
	default:
		for i := range dst {
			dst[i] = x[i] - y[i]
		}
	}
}
