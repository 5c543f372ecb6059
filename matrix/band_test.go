// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csaps/matrix"
)

// TestSymBand_SetAtMirror verifies symmetric access and zero reads outside the band.
func TestSymBand_SetAtMirror(t *testing.T) {
	b, err := matrix.NewSymBand[float64](4, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 1, b.Bandwidth())

	require.NoError(t, b.Set(2, 1, 5))
	v, err := b.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "Set(i,j) must mirror into (j,i)")

	v, err = b.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "outside the band reads as zero")

	assert.ErrorIs(t, b.Set(0, 2, 1), matrix.ErrOutOfBand)
	assert.ErrorIs(t, b.Set(4, 0, 1), matrix.ErrOutOfRange)
	_, err = b.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewSymBand[float64](3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSymBand_TraceAddScaled checks trace and the mixed-bandwidth combination.
func TestSymBand_TraceAddScaled(t *testing.T) {
	a := mustBand(t, 3, 1, map[[2]int]float64{{0, 0}: 1, {1, 1}: 2, {2, 2}: 3, {0, 1}: 4})
	b := mustBand(t, 3, 2, map[[2]int]float64{{0, 0}: 10, {0, 2}: 1})
	assert.Equal(t, 6.0, a.Trace())

	c, err := matrix.AddScaled(2.0, a, 0.5, b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Bandwidth())

	expect := [][]float64{
		{7, 8, 0.5},
		{8, 4, 0},
		{0.5, 0, 6},
	}
	for i := range expect {
		for j := range expect[i] {
			v, err := c.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, expect[i][j], v, "(%d,%d)", i, j)
		}
	}

	small := mustBand(t, 2, 1, nil)
	_, err = matrix.AddScaled(1.0, a, 1.0, small)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AddScaled(1.0, nil, 1.0, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// mustBand allocates an n×n band matrix with bandwidth k and fills the given
// upper-band entries, failing the test on error.
func mustBand(t *testing.T, n, k int, entries map[[2]int]float64) *matrix.SymBand[float64] {
	t.Helper()
	b, err := matrix.NewSymBand[float64](n, k)
	require.NoError(t, err)
	for ij, v := range entries {
		require.NoError(t, b.Set(ij[0], ij[1], v))
	}

	return b
}
