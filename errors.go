// SPDX-License-Identifier: MIT
// Package csaps: sentinel error set.
// All entry points return these sentinels (possibly wrapped with context);
// callers match them with errors.Is. Nothing in this package panics on user
// input.

package csaps

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSites is returned when the sites are not 1-D, have fewer than
	// two elements, or are not strictly increasing.
	ErrInvalidSites = errors.New("csaps: sites must be 1-D, len >= 2 and strictly increasing")

	// ErrAxisMismatch is returned when the selected axis of y does not exist
	// or its length differs from the number of sites.
	ErrAxisMismatch = errors.New("csaps: data axis length does not match sites")

	// ErrWeightsMismatch is returned when weights are present and their length
	// differs from the number of sites.
	ErrWeightsMismatch = errors.New("csaps: weights length does not match sites")

	// ErrInvalidSmoothing is returned for a smoothing parameter outside [0, 1].
	ErrInvalidSmoothing = errors.New("csaps: smoothing parameter must be in [0, 1]")

	// ErrDegenerateSpacing is returned when a site spacing is not positive at
	// construction time.
	ErrDegenerateSpacing = errors.New("csaps: degenerate site spacing")

	// ErrSingularSystem is returned when the smoothing system cannot be
	// solved: a weight is zero, negative or not finite, or the banded solve
	// fails numerically.
	ErrSingularSystem = errors.New("csaps: singular smoothing system")

	// ErrInvalidQuerySites is returned when the evaluation sites are not 1-D.
	ErrInvalidQuerySites = errors.New("csaps: query sites must be 1-D")

	// ErrSplineNotComputed is returned by Evaluate before a successful Make.
	// It signals a usage-contract violation; retrying does not help.
	ErrSplineNotComputed = errors.New("csaps: spline has not been computed")

	// ErrInvalidDump is returned when a persisted spline violates the
	// NdSpline invariants.
	ErrInvalidDump = errors.New("csaps: invalid spline dump")
)

// Construction stages reported by ConstructionError.
const (
	StageSpacing  = "spacing"
	StageAssemble = "assemble"
	StageSolve    = "solve"
	StageCoeffs   = "coefficients"
)

// ConstructionError carries the failure cause of the spline builder once the
// input has passed validation. Err wraps ErrDegenerateSpacing or
// ErrSingularSystem for numerical failures, or the lower-level matrix error
// for shape failures.
type ConstructionError struct {
	Stage string
	Err   error
}

// Error implements error.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("csaps: spline construction failed at %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *ConstructionError) Unwrap() error { return e.Err }

// constructionErrorf builds a ConstructionError whose cause wraps sentinel
// and, when non-nil, the lower-level cause. A nil sentinel records cause
// alone (shape or allocation failures, not numerical ones).
func constructionErrorf(stage string, sentinel, cause error) error {
	if sentinel == nil {
		return &ConstructionError{Stage: stage, Err: cause}
	}
	if cause == nil {
		return &ConstructionError{Stage: stage, Err: sentinel}
	}

	return &ConstructionError{Stage: stage, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}

// csapsErrorf wraps err with an operation tag.
func csapsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
