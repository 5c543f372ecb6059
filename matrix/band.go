// SPDX-License-Identifier: MIT

// Package matrix - symmetric band storage.
//
// Layout:
//   - Only the upper band is stored, row by row: element (i, j) with
//     i <= j <= i+k lives at data[i*(k+1) + (j-i)].
//   - Slots past the matrix edge (j >= n) exist in the buffer but are kept zero.
//
// This is the upper-band layout LAPACK and gonum use for symmetric band
// matrices.

package matrix

const (
	ctxSymBand   = "NewSymBand"
	ctxBandAt    = "SymBand.At"
	ctxBandSet   = "SymBand.Set"
	ctxAddScaled = "SymBand.AddScaled"
)

// SymBand is an n×n symmetric band matrix with k super-diagonals.
type SymBand[T Float] struct {
	n, k int
	data []T // len == n*(k+1)
}

var _ Matrix[float64] = (*SymBand[float64])(nil)

// NewSymBand allocates an n×n zero symmetric band matrix with bandwidth k.
// Returns ErrInvalidDimensions when n < 0 or k < 0.
func NewSymBand[T Float](n, k int) (*SymBand[T], error) {
	if n < 0 || k < 0 {
		return nil, matrixErrorf(ctxSymBand, ErrInvalidDimensions)
	}

	return &SymBand[T]{n: n, k: k, data: make([]T, n*(k+1))}, nil
}

// Size returns n.
func (b *SymBand[T]) Size() int { return b.n }

// Bandwidth returns the number of stored super-diagonals k.
func (b *SymBand[T]) Bandwidth() int { return b.k }

// Rows returns n (Matrix conformance).
func (b *SymBand[T]) Rows() int { return b.n }

// Cols returns n (Matrix conformance).
func (b *SymBand[T]) Cols() int { return b.n }

// At returns A[i,j]; entries outside the band read as zero.
func (b *SymBand[T]) At(i, j int) (T, error) {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return 0, matrixErrorf(ctxBandAt, ErrOutOfRange)
	}
	if i > j {
		i, j = j, i
	}
	if j-i > b.k {
		return 0, nil
	}

	return b.data[i*(b.k+1)+(j-i)], nil
}

// Set assigns A[i,j] = A[j,i] = v.
// Errors: ErrOutOfRange for bad indices, ErrOutOfBand when |i-j| > k.
func (b *SymBand[T]) Set(i, j int, v T) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return matrixErrorf(ctxBandSet, ErrOutOfRange)
	}
	if i > j {
		i, j = j, i
	}
	if j-i > b.k {
		return matrixErrorf(ctxBandSet, ErrOutOfBand)
	}
	b.data[i*(b.k+1)+(j-i)] = v

	return nil
}

// Trace returns the sum of the main diagonal.
// Complexity: O(n).
func (b *SymBand[T]) Trace() T {
	var sum T
	stride := b.k + 1
	for i := 0; i < b.n; i++ {
		sum += b.data[i*stride]
	}

	return sum
}

// AddScaled returns a new band matrix alpha*a + beta*b.
// The result bandwidth is max(a.k, b.k).
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when sizes differ.
//
// Complexity: O(n*(k+1)).
func AddScaled[T Float](alpha T, a *SymBand[T], beta T, b *SymBand[T]) (*SymBand[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(ctxAddScaled, ErrNilMatrix)
	}
	if a.n != b.n {
		return nil, matrixErrorf(ctxAddScaled, ErrDimensionMismatch)
	}
	k := max(a.k, b.k)
	out, err := NewSymBand[T](a.n, k)
	if err != nil {
		return nil, matrixErrorf(ctxAddScaled, err)
	}

	var i, d int
	for i = 0; i < a.n; i++ {
		for d = 0; d <= a.k; d++ {
			out.data[i*(k+1)+d] += alpha * a.data[i*(a.k+1)+d]
		}
		for d = 0; d <= b.k; d++ {
			out.data[i*(k+1)+d] += beta * b.data[i*(b.k+1)+d]
		}
	}

	return out, nil
}

// RawData exposes the band buffer (no copy). See the layout note at the top
// of this file.
func (b *SymBand[T]) RawData() []T { return b.data }
