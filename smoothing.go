// SPDX-License-Identifier: MIT

package csaps

import (
	"github.com/katalvlaran/csaps/ndarray"
)

// state is the builder lifecycle: Configured → (Make) → Built, and any WithX
// moves Built back to Configured.
type state uint8

const (
	stateConfigured state = iota
	stateBuilt
)

// CubicSmoothingSpline is the builder/evaluator façade.
//
// It borrows x, y and weights: the slices are read during Make and are not
// copied, so do not mutate them between configuration and Make. The fitted
// NdSpline owns its own copies and is unaffected by later mutation.
//
// A CubicSmoothingSpline is not safe for concurrent mutation. Concurrent
// Evaluate calls on a built spline are safe.
type CubicSmoothingSpline[T Float] struct {
	x *ndarray.Array[T]
	y *ndarray.Array[T]

	axis int

	weights    []T
	hasWeights bool

	smooth    T
	hasSmooth bool

	spline *NdSpline[T]
	state  state
}

// New creates a builder for sites x and values y. The signal axis defaults to
// the last axis of y.
func New[T Float](x []T, y *ndarray.Array[T]) *CubicSmoothingSpline[T] {
	return NewFromArray(ndarray.FromSlice(x), y)
}

// NewFromArray is New for sites given as an N-d array. The rank of x is
// checked by Make (ErrInvalidSites unless x is 1-D).
func NewFromArray[T Float](x, y *ndarray.Array[T]) *CubicSmoothingSpline[T] {
	return &CubicSmoothingSpline[T]{
		x:     x,
		y:     y,
		axis:  DefaultAxis,
		state: stateConfigured,
	}
}

// WithAxis selects the signal axis of y; negative values count from the end.
// Drops any fitted spline.
func (s *CubicSmoothingSpline[T]) WithAxis(axis int) *CubicSmoothingSpline[T] {
	s.invalidate()
	s.axis = axis

	return s
}

// WithWeights sets per-site weights. A nil slice restores uniform weights.
// Drops any fitted spline.
func (s *CubicSmoothingSpline[T]) WithWeights(weights []T) *CubicSmoothingSpline[T] {
	s.invalidate()
	s.weights = weights
	s.hasWeights = weights != nil

	return s
}

// WithSmooth sets the smoothing parameter p ∈ [0, 1]. Range is checked by
// Make. Drops any fitted spline.
func (s *CubicSmoothingSpline[T]) WithSmooth(p T) *CubicSmoothingSpline[T] {
	s.invalidate()
	s.smooth = p
	s.hasSmooth = true

	return s
}

// Make validates the configuration and fits the spline.
//
// Implementation:
//   - Stage 1: drop any previous spline (a failed Make leaves none behind).
//   - Stage 2: validate sites → axis → weights → smoothing.
//   - Stage 3: reshape y to channels×n through the signal axis and build.
//
// Errors: ErrInvalidSites, ErrAxisMismatch, ErrWeightsMismatch,
// ErrInvalidSmoothing, or a *ConstructionError wrapping ErrDegenerateSpacing
// or ErrSingularSystem.
func (s *CubicSmoothingSpline[T]) Make() (*CubicSmoothingSpline[T], error) {
	s.invalidate()

	if err := validateSites(s.x); err != nil {
		return s, csapsErrorf("Make", err)
	}
	n := s.x.Len()
	if err := validateAxis(s.y, s.axis, n); err != nil {
		return s, csapsErrorf("Make", err)
	}
	if err := validateWeights(s.weights, s.hasWeights, n); err != nil {
		return s, csapsErrorf("Make", err)
	}
	if err := validateSmooth(s.smooth, s.hasSmooth); err != nil {
		return s, csapsErrorf("Make", err)
	}

	y2, err := ndarray.To2D(s.y, s.axis)
	if err != nil {
		return s, csapsErrorf("Make", err)
	}
	var w []T
	if s.hasWeights {
		w = s.weights
	}
	var p *T
	if s.hasSmooth {
		p = &s.smooth
	}

	spline, err := makeSpline(s.x.Data(), y2, w, p)
	if err != nil {
		return s, csapsErrorf("Make", err)
	}
	s.spline = spline
	s.state = stateBuilt

	return s, nil
}

// Evaluate computes the spline at xi. The result has y's shape with the
// signal axis resized to len(xi).
//
// Errors: ErrSplineNotComputed before a successful Make.
func (s *CubicSmoothingSpline[T]) Evaluate(xi []T) (*ndarray.Array[T], error) {
	return s.EvaluateArray(ndarray.FromSlice(xi))
}

// EvaluateArray is Evaluate for query sites held in an N-d array.
//
// Errors: ErrInvalidQuerySites unless xi is 1-D; ErrSplineNotComputed before
// a successful Make.
func (s *CubicSmoothingSpline[T]) EvaluateArray(xi *ndarray.Array[T]) (*ndarray.Array[T], error) {
	if err := validateQuery(xi); err != nil {
		return nil, csapsErrorf("Evaluate", err)
	}
	if s.state != stateBuilt || s.spline == nil {
		return nil, csapsErrorf("Evaluate", ErrSplineNotComputed)
	}

	yi2, err := s.spline.Evaluate(xi.Data())
	if err != nil {
		return nil, csapsErrorf("Evaluate", err)
	}
	shape := s.y.Shape()
	ax, err := ndarray.ResolveAxis(len(shape), s.axis)
	if err != nil {
		return nil, csapsErrorf("Evaluate", err)
	}
	shape[ax] = xi.Len()

	yi, err := ndarray.From2D(yi2, shape, ax)
	if err != nil {
		return nil, csapsErrorf("Evaluate", err)
	}

	return yi, nil
}

// Spline returns the fitted spline, or nil when not built.
func (s *CubicSmoothingSpline[T]) Spline() *NdSpline[T] {
	if s.state != stateBuilt {
		return nil
	}

	return s.spline
}

// Built reports whether a fitted spline is available.
func (s *CubicSmoothingSpline[T]) Built() bool { return s.state == stateBuilt }

// Smooth returns the configured smoothing parameter and whether one was set.
// The value actually used (including the computed default) is on the
// NdSpline.
func (s *CubicSmoothingSpline[T]) Smooth() (T, bool) { return s.smooth, s.hasSmooth }

// Axis returns the configured signal axis as given (possibly negative).
func (s *CubicSmoothingSpline[T]) Axis() int { return s.axis }

// invalidate moves the builder back to Configured.
func (s *CubicSmoothingSpline[T]) invalidate() {
	s.spline = nil
	s.state = stateConfigured
}

// MakeSpline is a one-shot helper: validate, fit and return the NdSpline.
// weights may be nil; smooth may be nil for the default heuristic.
func MakeSpline[T Float](x []T, y *ndarray.Array[T], axis int, weights []T, smooth *T) (*NdSpline[T], error) {
	s := New(x, y).WithAxis(axis).WithWeights(weights)
	if smooth != nil {
		s = s.WithSmooth(*smooth)
	}
	if _, err := s.Make(); err != nil {
		return nil, err
	}

	return s.Spline(), nil
}
