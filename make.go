// SPDX-License-Identifier: MIT

package csaps

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/katalvlaran/csaps/ndarray"
)

// makeSpline builds an NdSpline from validated sites x, a channels×n value
// matrix y, optional weights w (nil ⇒ all ones, otherwise every entry must be
// positive and finite) and an optional smoothing parameter p (nil ⇒ default
// heuristic).
//
// Algorithm Outline (Reinsch):
//  1. h = diff(x); every h_i must be > 0 and every weight positive and finite.
//  2. dydx = diff(y) / h per channel.
//  3. n == 2: the spline is the line through both sites (order 2); stop.
//  4. R   - (n−2)×(n−2) tridiagonal: R_ii = 2(h_i + h_{i+1}), R_i,i+1 = h_{i+1}.
//     Qᵀ  - (n−2)×n second divided differences: 1/h_i, −(1/h_i + 1/h_{i+1}), 1/h_{i+1}.
//     QWQ - Qᵀ·W⁻¹·Q, pentadiagonal.
//  5. p defaults to 1 / (1 + tr(R) / (6·tr(QWQ))).
//  6. Solve (6(1−p)·QWQ + p·R)·u = diff(dydx) for all channels at once.
//  7. Natural ends: pad u with zeros, then
//     yi = y − 6(1−p)·W⁻¹·Q·u and, per piece,
//     a = Δ(p·u)/h, b = 3·p·u_i, c = Δyi/h − h(2p·u_i + p·u_{i+1}), d = yi_i.
//
// Complexity: O(n·ndim) time and memory.
func makeSpline[T Float](x []T, y *matrix.Dense[T], w []T, p *T) (*NdSpline[T], error) {
	n := len(x)
	ndim := y.Rows()
	pieces := n - 1

	// Stage 1: spacing.
	h := ndarray.DiffSlice(x)
	for i, hi := range h {
		if !(hi > 0) {
			return nil, constructionErrorf(StageSpacing, fmt.Errorf("%w: h[%d]=%v", ErrDegenerateSpacing, i, hi), nil)
		}
	}

	// Stage 2: weights.
	wInv := make([]T, n)
	for i := range wInv {
		wInv[i] = 1
		if w == nil {
			continue
		}
		// !(w > 0) also rejects NaN.
		if !(w[i] > 0) || math.IsInf(float64(w[i]), 0) {
			return nil, constructionErrorf(StageAssemble, ErrSingularSystem, fmt.Errorf("w[%d]=%v must be positive and finite", i, w[i]))
		}
		wInv[i] = 1 / w[i]
	}

	// Stage 3: slopes per channel.
	slopes, err := slopesOf(y, h)
	if err != nil {
		return nil, constructionErrorf(StageAssemble, nil, err)
	}

	// Stage 4: two sites collapse to a line.
	if n == MinSites {
		return makeLinear(x, y, slopes)
	}

	// Stage 5: assemble R and QᵀW⁻¹Q.
	r, qwq, err := assemble(h, wInv)
	if err != nil {
		return nil, constructionErrorf(StageAssemble, nil, err)
	}

	// Stage 6: smoothing parameter.
	var smooth T
	if p != nil {
		smooth = *p
	} else {
		smooth = defaultSmooth(r, qwq)
	}
	pp := 6 * (1 - smooth)

	// Stage 7: banded solve, one right-hand side per channel.
	a, err := matrix.AddScaled(pp, qwq, smooth, r)
	if err != nil {
		return nil, constructionErrorf(StageAssemble, nil, err)
	}
	rhs, err := matrix.NewDense[T](n-2, ndim)
	if err != nil {
		return nil, constructionErrorf(StageAssemble, nil, err)
	}
	sd, rd := slopes.RawData(), rhs.RawData()
	var c, i int
	for c = 0; c < ndim; c++ {
		for i = 0; i < n-2; i++ {
			rd[i*ndim+c] = sd[c*pieces+i+1] - sd[c*pieces+i]
		}
	}

	var chol matrix.BandCholesky[T]
	if err = chol.Factorize(a); err != nil {
		return nil, constructionErrorf(StageSolve, ErrSingularSystem, err)
	}
	if err = chol.SolveTo(rhs, rhs); err != nil {
		return nil, constructionErrorf(StageSolve, ErrSingularSystem, err)
	}

	// Stage 8: coefficients.
	coeffs, err := matrix.NewDense[T](ndim, pieces*CubicOrder)
	if err != nil {
		return nil, constructionErrorf(StageCoeffs, nil, err)
	}
	var (
		u  = make([]T, n)      // padded second-derivative solution (natural ends)
		d1 = make([]T, pieces) // Δu / h
		yi = make([]T, n)      // smoothed values at the sites
		pu = make([]T, n)      // p·u
		d2 T
	)
	yd, cd := y.RawData(), coeffs.RawData()
	width := pieces * CubicOrder
	for c = 0; c < ndim; c++ {
		for i = 0; i < n-2; i++ {
			u[i+1] = rd[i*ndim+c]
		}
		for i = 0; i < pieces; i++ {
			d1[i] = (u[i+1] - u[i]) / h[i]
		}
		yrow := yd[c*n : (c+1)*n]
		for i = 0; i < n; i++ {
			switch {
			case i == 0:
				d2 = d1[0]
			case i == n-1:
				d2 = -d1[pieces-1]
			default:
				d2 = d1[i] - d1[i-1]
			}
			yi[i] = yrow[i] - pp*d2*wInv[i]
			pu[i] = smooth * u[i]
		}

		row := cd[c*width : (c+1)*width]
		for i = 0; i < pieces; i++ {
			row[i] = (pu[i+1] - pu[i]) / h[i]
			row[pieces+i] = 3 * pu[i]
			row[2*pieces+i] = (yi[i+1]-yi[i])/h[i] - h[i]*(2*pu[i]+pu[i+1])
			row[3*pieces+i] = yi[i]
		}
	}
	if err = matrix.ValidateFinite(coeffs); err != nil {
		return nil, constructionErrorf(StageCoeffs, ErrSingularSystem, err)
	}

	return &NdSpline[T]{
		ndim:   ndim,
		order:  CubicOrder,
		pieces: pieces,
		breaks: slices.Clone(x),
		coeffs: coeffs,
		smooth: smooth,
	}, nil
}

// slopesOf returns diff(y, -1) / h as a channels×(n−1) matrix.
func slopesOf[T Float](y *matrix.Dense[T], h []T) (*matrix.Dense[T], error) {
	ya, err := ndarray.New([]int{y.Rows(), y.Cols()}, y.RawData())
	if err != nil {
		return nil, err
	}
	dy, err := ndarray.Diff(ya, -1)
	if err != nil {
		return nil, err
	}
	dd := dy.Data()
	m := len(h)
	for idx := range dd {
		dd[idx] /= h[idx%m]
	}

	return matrix.NewDenseFrom(y.Rows(), m, dd)
}

// makeLinear packs the two-site line: per channel [slope, y0].
func makeLinear[T Float](x []T, y *matrix.Dense[T], slopes *matrix.Dense[T]) (*NdSpline[T], error) {
	ndim := y.Rows()
	coeffs, err := matrix.NewDense[T](ndim, LinearOrder)
	if err != nil {
		return nil, constructionErrorf(StageCoeffs, nil, err)
	}
	yd, sd, cd := y.RawData(), slopes.RawData(), coeffs.RawData()
	for c := 0; c < ndim; c++ {
		cd[c*LinearOrder] = sd[c]
		cd[c*LinearOrder+1] = yd[c*MinSites]
	}

	return &NdSpline[T]{
		ndim:   ndim,
		order:  LinearOrder,
		pieces: 1,
		breaks: slices.Clone(x),
		coeffs: coeffs,
		smooth: 1,
	}, nil
}

// assemble builds R (bandwidth 1) and QᵀW⁻¹Q (bandwidth 2) from the spacing
// h and the reciprocal weights wInv.
func assemble[T Float](h, wInv []T) (*matrix.SymBand[T], *matrix.SymBand[T], error) {
	m := len(h) - 1 // n − 2 interior sites
	r, err := matrix.NewSymBand[T](m, 1)
	if err != nil {
		return nil, nil, err
	}
	qwq, err := matrix.NewSymBand[T](m, 2)
	if err != nil {
		return nil, nil, err
	}

	// Row i of Qᵀ has three non-zeros at columns i, i+1, i+2.
	q := make([][3]T, m)
	var i, d, t int
	for i = 0; i < m; i++ {
		q[i] = [3]T{1 / h[i], -(1/h[i] + 1/h[i+1]), 1 / h[i+1]}

		if err = r.Set(i, i, 2*(h[i]+h[i+1])); err != nil {
			return nil, nil, err
		}
		if i+1 < m {
			if err = r.Set(i, i+1, h[i+1]); err != nil {
				return nil, nil, err
			}
		}
	}

	// (QᵀW⁻¹Q)[i, i+d] = Σ_t Qᵀ[i, i+d+t]·Qᵀ[i+d, i+d+t]·wInv[i+d+t].
	var sum T
	for d = 0; d <= 2; d++ {
		for i = 0; i+d < m; i++ {
			sum = 0
			for t = 0; t <= 2-d; t++ {
				sum += q[i][t+d] * q[i+d][t] * wInv[i+d+t]
			}
			if err = qwq.Set(i, i+d, sum); err != nil {
				return nil, nil, err
			}
		}
	}

	return r, qwq, nil
}

// defaultSmooth is the fixed data-scale heuristic balancing the roughness
// and fidelity terms: p = 1 / (1 + tr(R) / (6·tr(QᵀW⁻¹Q))).
func defaultSmooth[T Float](r, qwq *matrix.SymBand[T]) T {
	return 1 / (1 + r.Trace()/(6*qwq.Trace()))
}
