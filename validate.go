// SPDX-License-Identifier: MIT
// Package: csaps
//
// Purpose:
//  - Single source of truth for the shape/ordering checks run before
//    construction and before evaluation.
//  - Checks are side-effect free and run in a fixed order:
//    sites → axis → weights → smoothing.

package csaps

import (
	"fmt"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/katalvlaran/csaps/ndarray"
)

// validateSites requires a 1-D x of length >= MinSites that is strictly
// increasing. Adjacent pairs are scanned; nothing is sorted.
func validateSites[T Float](x *ndarray.Array[T]) error {
	if x == nil || x.Ndim() != 1 {
		return csapsErrorf("validateSites", ErrInvalidSites)
	}
	xs := x.Data()
	if len(xs) < MinSites {
		return csapsErrorf("validateSites", fmt.Errorf("%w: got %d sites", ErrInvalidSites, len(xs)))
	}
	for i := 1; i < len(xs); i++ {
		// !(a < b) also rejects NaN.
		if !(xs[i-1] < xs[i]) {
			return csapsErrorf("validateSites", fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrInvalidSites, i-1, xs[i-1], i, xs[i]))
		}
	}

	return nil
}

// validateAxis requires axis to exist in y and y.shape[axis] == n.
func validateAxis[T Float](y *ndarray.Array[T], axis, n int) error {
	if y == nil {
		return csapsErrorf("validateAxis", fmt.Errorf("%w: %w", ErrAxisMismatch, ndarray.ErrNilArray))
	}
	size, err := y.Dim(axis)
	if err != nil {
		return csapsErrorf("validateAxis", fmt.Errorf("%w: %w", ErrAxisMismatch, err))
	}
	if size != n {
		return csapsErrorf("validateAxis", fmt.Errorf("%w: y.shape[%d]=%d, len(x)=%d", ErrAxisMismatch, axis, size, n))
	}

	return nil
}

// validateWeights requires len(w) == n when weights are present.
// Values are checked by the builder: zero, negative or non-finite weights
// surface as ErrSingularSystem inside a *ConstructionError.
func validateWeights[T Float](w []T, present bool, n int) error {
	if !present {
		return nil
	}
	if err := matrix.ValidateVecLen(w, n); err != nil {
		return csapsErrorf("validateWeights", fmt.Errorf("%w: len(w)=%d, len(x)=%d: %w", ErrWeightsMismatch, len(w), n, err))
	}

	return nil
}

// validateSmooth requires 0 <= p <= 1 when p is present.
func validateSmooth[T Float](p T, present bool) error {
	// Written negated so NaN fails too.
	if present && !(p >= 0 && p <= 1) {
		return csapsErrorf("validateSmooth", fmt.Errorf("%w: got %v", ErrInvalidSmoothing, p))
	}

	return nil
}

// validateQuery requires 1-D query sites. No ordering or range requirement.
func validateQuery[T Float](xi *ndarray.Array[T]) error {
	if xi == nil || xi.Ndim() != 1 {
		return csapsErrorf("validateQuery", ErrInvalidQuerySites)
	}

	return nil
}
