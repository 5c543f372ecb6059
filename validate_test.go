// SPDX-License-Identifier: MIT

package csaps_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csaps"
	"github.com/katalvlaran/csaps/ndarray"
)

// TestMake_InvalidSites covers every rejected site vector.
func TestMake_InvalidSites(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
	}{
		{name: "repeated", x: []float64{1, 2, 2, 3}},
		{name: "decreasing", x: []float64{3, 2, 1}},
		{name: "single", x: []float64{1}},
		{name: "empty", x: []float64{}},
		{name: "nan", x: []float64{0, math.NaN(), 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y := ndarray.FromSlice(make([]float64, len(tc.x)))
			s, err := csaps.New(tc.x, y).Make()
			assert.ErrorIs(t, err, csaps.ErrInvalidSites)
			assert.False(t, s.Built())
		})
	}
}

// TestMake_SitesMustBe1D rejects a 2-D site array.
func TestMake_SitesMustBe1D(t *testing.T) {
	x := arr(t, []int{2, 2}, 1, 2, 3, 4)
	y := arr(t, []int{2, 2}, 1, 2, 3, 4)

	_, err := csaps.NewFromArray(x, y).Make()
	assert.ErrorIs(t, err, csaps.ErrInvalidSites)
}

// TestMake_AxisMismatch covers a wrong axis length and a missing axis.
func TestMake_AxisMismatch(t *testing.T) {
	x := []float64{1, 2, 3}
	y := arr(t, []int{3, 2}, 1, 2, 3, 4, 5, 6)

	_, err := csaps.New(x, y).Make()
	assert.ErrorIs(t, err, csaps.ErrAxisMismatch, "last axis has length 2")

	_, err = csaps.New(x, y).WithAxis(0).Make()
	assert.NoError(t, err, "first axis has length 3")

	_, err = csaps.New(x, y).WithAxis(-2).Make()
	assert.NoError(t, err, "negative axis counts from the end")

	_, err = csaps.New(x, y).WithAxis(2).Make()
	assert.ErrorIs(t, err, csaps.ErrAxisMismatch, "axis out of range")
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)

	_, err = csaps.New(x, nil).Make()
	assert.ErrorIs(t, err, csaps.ErrAxisMismatch, "nil data")
}

// TestMake_WeightsMismatch rejects weights whose length differs from x.
func TestMake_WeightsMismatch(t *testing.T) {
	x := []float64{1, 2, 3}
	y := ndarray.FromSlice([]float64{1, 2, 3})

	_, err := csaps.New(x, y).WithWeights([]float64{1, 1}).Make()
	assert.ErrorIs(t, err, csaps.ErrWeightsMismatch)

	_, err = csaps.New(x, y).WithWeights([]float64{}).Make()
	assert.ErrorIs(t, err, csaps.ErrWeightsMismatch, "empty, non-nil weights")

	_, err = csaps.New(x, y).WithWeights([]float64{1, 1}).WithWeights(nil).Make()
	assert.NoError(t, err, "nil restores uniform weights")
}

// TestMake_InvalidSmoothing covers out-of-range and NaN parameters.
func TestMake_InvalidSmoothing(t *testing.T) {
	x := []float64{1, 2, 3}
	y := ndarray.FromSlice([]float64{1, 2, 3})

	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := csaps.New(x, y).WithSmooth(p).Make()
		assert.ErrorIs(t, err, csaps.ErrInvalidSmoothing, "p=%v", p)
	}
	for _, p := range []float64{0, 1} {
		_, err := csaps.New(x, y).WithSmooth(p).Make()
		assert.NoError(t, err, "p=%v is in range", p)
	}
}

// TestMake_ValidationOrder checks that the first failing check wins:
// sites, then axis, then weights, then smoothing.
func TestMake_ValidationOrder(t *testing.T) {
	y := arr(t, []int{2, 2}, 1, 2, 3, 4)

	_, err := csaps.New([]float64{2, 1, 0}, y).WithWeights([]float64{1}).WithSmooth(3).Make()
	require.Error(t, err)
	assert.ErrorIs(t, err, csaps.ErrInvalidSites)
	assert.NotErrorIs(t, err, csaps.ErrAxisMismatch)

	_, err = csaps.New([]float64{0, 1, 2}, y).WithWeights([]float64{1}).WithSmooth(3).Make()
	assert.ErrorIs(t, err, csaps.ErrAxisMismatch)

	_, err = csaps.New([]float64{0, 1}, y).WithWeights([]float64{1}).WithSmooth(3).Make()
	assert.ErrorIs(t, err, csaps.ErrWeightsMismatch)

	_, err = csaps.New([]float64{0, 1}, y).WithSmooth(3).Make()
	assert.ErrorIs(t, err, csaps.ErrInvalidSmoothing)
}
