// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csaps/ndarray"
)

// temperature is a named float type; it takes the non-SIMD path in Diff.
type temperature float64

func mustArray[T ~float32 | ~float64](t *testing.T, shape []int, data []T) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.New(shape, data)
	require.NoError(t, err)

	return a
}

func TestDiff_1D(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3, 4, 5})

	for _, axis := range []int{-1, 0} {
		d, err := ndarray.Diff(a, axis)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, d.Shape())
		assert.Equal(t, []float64{1, 1, 1, 1}, d.Data())
	}
}

func TestDiff_2D(t *testing.T) {
	a := mustArray(t, []int{2, 4}, []float64{1, 2, 3, 4, 1, 2, 3, 4})

	d, err := ndarray.Diff(a, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, d.Shape())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, d.Data())

	d, err = ndarray.Diff(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, d.Shape())
	assert.Equal(t, []float64{0, 0, 0, 0}, d.Data())

	d, err = ndarray.Diff(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, d.Shape())
}

func TestDiff_3D(t *testing.T) {
	a := mustArray(t, []int{2, 2, 3}, []float32{
		1, 2, 3, 1, 2, 3,
		1, 2, 3, 1, 2, 3,
	})

	tests := []struct {
		axis  int
		shape []int
		want  []float32
	}{
		{axis: -1, shape: []int{2, 2, 2}, want: []float32{1, 1, 1, 1, 1, 1, 1, 1}},
		{axis: 0, shape: []int{1, 2, 3}, want: []float32{0, 0, 0, 0, 0, 0}},
		{axis: 1, shape: []int{2, 1, 3}, want: []float32{0, 0, 0, 0, 0, 0}},
		{axis: 2, shape: []int{2, 2, 2}, want: []float32{1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tc := range tests {
		d, err := ndarray.Diff(a, tc.axis)
		require.NoError(t, err)
		assert.Equal(t, tc.shape, d.Shape(), "axis %d", tc.axis)
		assert.Equal(t, tc.want, d.Data(), "axis %d", tc.axis)
	}
}

// TestDiff_MiddleAxisValues uses non-constant data so every block offset matters.
func TestDiff_MiddleAxisValues(t *testing.T) {
	// shape [1, 3, 2]
	a := mustArray(t, []int{1, 3, 2}, []float64{0, 1, 10, 12, 30, 35})
	d, err := ndarray.Diff(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, d.Shape())
	assert.Equal(t, []float64{10, 11, 20, 23}, d.Data())
}

// TestDiff_ShortAxis verifies length 0/1 produce an empty axis, not an error.
func TestDiff_ShortAxis(t *testing.T) {
	d, err := ndarray.Diff(ndarray.FromSlice([]float64{7}), -1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.Shape())
	assert.Empty(t, d.Data())

	d, err = ndarray.Diff(ndarray.FromSlice([]float64{}), -1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.Shape())

	d, err = ndarray.Diff(mustArray(t, []int{3, 1}, []float64{1, 2, 3}), -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, d.Shape())

	_, err = ndarray.Diff(ndarray.FromSlice([]float64{1, 2}), 1)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
	_, err = ndarray.Diff[float64](nil, 0)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestDiff_NamedType covers the generic fallback for named float types.
func TestDiff_NamedType(t *testing.T) {
	d, err := ndarray.Diff(ndarray.FromSlice([]temperature{20.5, 21, 19}), -1)
	require.NoError(t, err)
	assert.Equal(t, []temperature{0.5, -2}, d.Data())

	assert.Equal(t, []temperature{0.5, -2}, ndarray.DiffSlice([]temperature{20.5, 21, 19}))
	assert.Empty(t, ndarray.DiffSlice([]float64{1}))
}
