// SPDX-License-Identifier: MIT

package csaps

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/katalvlaran/csaps/matrix"
)

// Dump is a serializable representation of an NdSpline.
// Coeffs holds one row per channel in the order-major layout of NdSpline.
type Dump[T Float] struct {
	Ndim   int   `json:"ndim"`
	Order  int   `json:"order"`
	Pieces int   `json:"pieces"`
	Smooth T     `json:"smooth"`
	Breaks []T   `json:"breaks"`
	Coeffs [][]T `json:"coeffs"`
}

// Dump generates a serializable dump of the spline. The dump owns its slices.
func (s *NdSpline[T]) Dump() *Dump[T] {
	width := s.pieces * s.order
	data := s.coeffs.RawData()
	rows := make([][]T, s.ndim)
	for c := range rows {
		rows[c] = slices.Clone(data[c*width : (c+1)*width])
	}

	return &Dump[T]{
		Ndim:   s.ndim,
		Order:  s.order,
		Pieces: s.pieces,
		Smooth: s.smooth,
		Breaks: slices.Clone(s.breaks),
		Coeffs: rows,
	}
}

// FromDump restores a spline from a dump, re-checking every NdSpline
// invariant since the dump may come from an untrusted source.
//
// Errors: ErrInvalidDump (wrapping ErrInvalidSites for bad breaks and
// matrix.ErrNaNInf for non-finite coefficients).
func FromDump[T Float](d *Dump[T]) (*NdSpline[T], error) {
	if d == nil {
		return nil, csapsErrorf("FromDump", ErrInvalidDump)
	}
	if d.Order != CubicOrder && d.Order != LinearOrder {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: order %d", ErrInvalidDump, d.Order))
	}
	if d.Order == LinearOrder && d.Pieces != 1 {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: linear spline with %d pieces", ErrInvalidDump, d.Pieces))
	}
	if d.Pieces < 1 || len(d.Breaks) != d.Pieces+1 {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: %d breaks for %d pieces", ErrInvalidDump, len(d.Breaks), d.Pieces))
	}
	for i := 1; i < len(d.Breaks); i++ {
		if !(d.Breaks[i-1] < d.Breaks[i]) {
			return nil, csapsErrorf("FromDump", fmt.Errorf("%w: %w", ErrInvalidDump, ErrInvalidSites))
		}
	}
	if d.Ndim < 0 || len(d.Coeffs) != d.Ndim {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: %d coefficient rows for ndim %d", ErrInvalidDump, len(d.Coeffs), d.Ndim))
	}

	width := d.Pieces * d.Order
	data := make([]T, 0, d.Ndim*width)
	for c, row := range d.Coeffs {
		if len(row) != width {
			return nil, csapsErrorf("FromDump", fmt.Errorf("%w: row %d has %d coefficients, want %d", ErrInvalidDump, c, len(row), width))
		}
		data = append(data, row...)
	}
	coeffs, err := matrix.NewDenseFrom(d.Ndim, width, data)
	if err != nil {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: %w", ErrInvalidDump, err))
	}
	if err = matrix.ValidateFinite(coeffs); err != nil {
		return nil, csapsErrorf("FromDump", fmt.Errorf("%w: %w", ErrInvalidDump, err))
	}

	return &NdSpline[T]{
		ndim:   d.Ndim,
		order:  d.Order,
		pieces: d.Pieces,
		breaks: slices.Clone(d.Breaks),
		coeffs: coeffs,
		smooth: d.Smooth,
	}, nil
}

// MarshalJSON implements the json.Marshaler interface for NdSpline.
func (s *NdSpline[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for NdSpline.
func (s *NdSpline[T]) UnmarshalJSON(bytes []byte) error {
	var dump Dump[T]
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	restored, err := FromDump(&dump)
	if err != nil {
		return err
	}
	*s = *restored

	return nil
}
