// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a rank-0 shape or a negative dimension.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength indicates that the backing slice length differs from the
	// product of the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrAxisOutOfRange indicates an axis outside [-ndim, ndim).
	ErrAxisOutOfRange = errors.New("ndarray: axis out of range")

	// ErrIndexOutOfRange indicates a multi-index outside the array bounds or
	// with the wrong number of components.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates a nil *Array argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrShapeMismatch indicates a 2-D working matrix that cannot be folded
	// back into the requested N-d shape.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")
)

// arrayErrorf wraps err with an operation tag, preserving it for errors.Is.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
