// SPDX-License-Identifier: MIT

package ndarray

import (
	"slices"

	"github.com/katalvlaran/csaps/matrix"
)

// Array is a dense, row-major N-d array of T.
// The last axis varies fastest: the flat offset of index (i0, ..., iN-1) is
// Σ ik·stride[k] with stride[N-1] = 1.
type Array[T matrix.Float] struct {
	shape   []int
	strides []int
	data    []T
}

// New wraps data with the given shape WITHOUT copying data.
//
// Errors:
//   - ErrBadShape for an empty shape or a negative dimension.
//   - ErrDataLength when len(data) != product(shape).
func New[T matrix.Float](shape []int, data []T) (*Array[T], error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, arrayErrorf("New", err)
	}
	if len(data) != size {
		return nil, arrayErrorf("New", ErrDataLength)
	}
	sh := slices.Clone(shape)

	return &Array[T]{shape: sh, strides: stridesOf(sh), data: data}, nil
}

// Zeros allocates a zero-filled array of the given shape.
func Zeros[T matrix.Float](shape ...int) (*Array[T], error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, arrayErrorf("Zeros", err)
	}
	sh := slices.Clone(shape)

	return &Array[T]{shape: sh, strides: stridesOf(sh), data: make([]T, size)}, nil
}

// FromSlice views v as a 1-D array (no copy).
func FromSlice[T matrix.Float](v []T) *Array[T] {
	return &Array[T]{shape: []int{len(v)}, strides: []int{1}, data: v}
}

// FromRows copies a rectangular [][]T into a 2-D array.
// Ragged input is rejected with ErrDataLength.
func FromRows[T matrix.Float](rows [][]T) (*Array[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]T, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf("FromRows", ErrDataLength)
		}
		data = append(data, row...)
	}

	return &Array[T]{shape: []int{r, c}, strides: []int{c, 1}, data: data}, nil
}

// shapeSize validates shape and returns the element count.
func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		size *= d
	}

	return size, nil
}

// stridesOf returns row-major strides for shape.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= shape[k]
	}

	return st
}

// Shape returns a copy of the shape.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// Ndim returns the rank.
func (a *Array[T]) Ndim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Dim returns the length of axis (negative axes count from the end).
func (a *Array[T]) Dim(axis int) (int, error) {
	ax, err := ResolveAxis(len(a.shape), axis)
	if err != nil {
		return 0, arrayErrorf("Dim", err)
	}

	return a.shape[ax], nil
}

// Data exposes the flat row-major buffer (no copy).
func (a *Array[T]) Data() []T { return a.data }

// offset maps a multi-index to a flat offset.
func (a *Array[T]) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrIndexOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrIndexOutOfRange
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at idx.
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}

	return a.data[off], nil
}

// Set stores v at idx.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy with its own backing slice.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
	}
}

// Equal reports whether a and b have the same shape and elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}
