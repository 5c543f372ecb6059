// SPDX-License-Identifier: MIT

package csaps

import (
	"slices"

	"github.com/katalvlaran/csaps/matrix"
)

// NdSpline is a fitted piecewise polynomial over ndim independent channels.
//
// Fields:
//   - order  - coefficients per piece (4 for cubic, 2 for the two-site line).
//   - pieces - number of intervals, len(breaks) − 1.
//   - breaks - the sites the spline was built on (owned copy).
//   - coeffs - ndim × (pieces·order). Each row is ORDER-MAJOR: the block of
//     highest-power coefficients for every piece comes first, then the next
//     power, down to the constant terms. Coefficient k of piece j lives at
//     column k*pieces + j.
//   - smooth - the smoothing parameter actually used.
//
// An NdSpline never changes after construction, so concurrent Evaluate calls
// are safe.
type NdSpline[T Float] struct {
	ndim   int
	order  int
	pieces int
	breaks []T
	coeffs *matrix.Dense[T]
	smooth T
}

// Ndim returns the number of channels.
func (s *NdSpline[T]) Ndim() int { return s.ndim }

// Order returns the polynomial order of every piece.
func (s *NdSpline[T]) Order() int { return s.order }

// Pieces returns the number of polynomial pieces.
func (s *NdSpline[T]) Pieces() int { return s.pieces }

// Breaks returns a copy of the breakpoints.
func (s *NdSpline[T]) Breaks() []T { return slices.Clone(s.breaks) }

// Coeffs returns a copy of the ndim × (pieces·order) coefficient matrix.
func (s *NdSpline[T]) Coeffs() *matrix.Dense[T] { return s.coeffs.Clone() }

// Smooth returns the smoothing parameter the spline was built with. When no
// parameter was supplied this is the computed default; the two-site spline
// reports 1.
func (s *NdSpline[T]) Smooth() T { return s.smooth }

// Evaluate computes every channel at the query sites xi.
//
// Implementation:
//   - Stage 1: for each query q, locate piece k with breaks[k] ≤ q < breaks[k+1]
//     by binary search over the interior breaks; queries left of the first or
//     right of the last break clamp to the boundary piece (extrapolation).
//   - Stage 2: dt = q − breaks[k]; nested multiplication over the order-major
//     coefficient blocks: v = ((c0·dt + c1)·dt + c2)·dt + c3.
//
// Returns an ndim × len(xi) matrix. xi may be unordered and may contain
// values outside the fitted range.
//
// Errors: ErrSplineNotComputed for a zero-value or otherwise empty NdSpline.
//
// Complexity: O(len(xi)·(log pieces + ndim·order)).
func (s *NdSpline[T]) Evaluate(xi []T) (*matrix.Dense[T], error) {
	if s == nil || s.coeffs == nil || s.pieces < 1 || len(s.breaks) != s.pieces+1 {
		return nil, csapsErrorf("NdSpline.Evaluate", ErrSplineNotComputed)
	}
	out, err := matrix.NewDense[T](s.ndim, len(xi))
	if err != nil {
		return nil, csapsErrorf("NdSpline.Evaluate", err)
	}

	// Piece lookup is shared by every channel.
	idx := make([]int, len(xi))
	dts := make([]T, len(xi))
	interior := s.breaks[1:s.pieces]
	for q, v := range xi {
		k := pieceIndex(interior, v)
		idx[q] = k
		dts[q] = v - s.breaks[k]
	}

	var (
		c, q, o int
		val     T
	)
	coeffs := s.coeffs.RawData()
	width := s.pieces * s.order
	dst := out.RawData()
	for c = 0; c < s.ndim; c++ {
		row := coeffs[c*width : (c+1)*width]
		res := dst[c*len(xi) : (c+1)*len(xi)]
		for q = range xi {
			k, dt := idx[q], dts[q]
			val = row[k]
			for o = 1; o < s.order; o++ {
				val = val*dt + row[o*s.pieces+k]
			}
			res[q] = val
		}
	}

	return out, nil
}

// pieceIndex returns the piece containing v given the interior breakpoints
// breaks[1:pieces]. A value equal to an interior break belongs to the piece
// starting there.
func pieceIndex[T Float](interior []T, v T) int {
	pos, found := slices.BinarySearch(interior, v)
	if found {
		return pos + 1
	}

	return pos
}
