// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csaps/matrix"
)

// TestNewDense_Shapes verifies negative dims are rejected and zero dims allowed.
func TestNewDense_Shapes(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense[float64](0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Empty(t, m.RawData())
}

// TestNewDenseFrom_NoCopy ensures the backing slice is shared and its length checked.
func TestNewDenseFrom_NoCopy(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	data[4] = 50
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v, "NewDenseFrom must not copy")

	_, err = matrix.NewDenseFrom(2, 2, data)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_AtSetBounds checks At/Set return ErrOutOfRange instead of panicking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense[float32](2, 2)
	require.NoError(t, err)

	cases := []struct{ i, j int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, tc := range cases {
		_, err = m.At(tc.i, tc.j)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 1)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
}

// TestDense_RowView verifies Row is a capped, writable view.
func TestDense_RowView(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	assert.Equal(t, 2, cap(row), "row view must be capped")

	row[0] = 30
	v, _ := m.At(1, 0)
	assert.Equal(t, 30.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_Clone checks deep copy independence.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not alias the original")
	assert.False(t, m.Equal(c))
	assert.True(t, m.Equal(m.Clone()))
}

// TestDense_String checks the debug formatting.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2.5, -3, 0})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
