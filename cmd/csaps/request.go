// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/csaps"
	"github.com/katalvlaran/csaps/ndarray"
)

var (
	// ErrRagged is returned when a nested value list is not rectangular.
	ErrRagged = errors.New("csaps: nested values are ragged")

	// ErrNotNumber is returned when a nested value list holds a non-number.
	ErrNotNumber = errors.New("csaps: value is not a number")

	// ErrNoData is returned when a request omits x or y.
	ErrNoData = errors.New("csaps: request needs x and y")
)

// Request is a fit request as read from a YAML (or JSON) file.
//
//	x: [0, 1, 2, 3]
//	y: [[1, 2, 0, 3], [0, 1, 1, 0]]
//	axis: -1
//	weights: [1, 1, 2, 1]
//	smooth: 0.8
//	xi: [0.5, 1.5, 2.5]
type Request struct {
	X       []float64 `yaml:"x"`
	Y       any       `yaml:"y"`
	Axis    *int      `yaml:"axis,omitempty"`
	Weights []float64 `yaml:"weights,omitempty"`
	Smooth  *float64  `yaml:"smooth,omitempty"`
	Xi      []float64 `yaml:"xi,omitempty"`
}

// FitResult is what `fit` prints.
type FitResult struct {
	Ndim   int       `yaml:"ndim" json:"ndim"`
	Order  int       `yaml:"order" json:"order"`
	Pieces int       `yaml:"pieces" json:"pieces"`
	Smooth float64   `yaml:"smooth" json:"smooth"`
	Breaks []float64 `yaml:"breaks" json:"breaks"`
	Shape  []int     `yaml:"shape,omitempty" json:"shape,omitempty"`
	Values any       `yaml:"values,omitempty" json:"values,omitempty"`
}

// loadRequest reads and decodes a request file.
func loadRequest(path string) (*Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}

	return parseRequest(raw)
}

// parseRequest decodes a YAML or JSON request body.
func parseRequest(raw []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if req.X == nil || req.Y == nil {
		return nil, ErrNoData
	}

	return &req, nil
}

// values converts the nested y of the request into an N-d array.
func (r *Request) values() (*ndarray.Array[float64], error) {
	shape, data, err := flatten(r.Y)
	if err != nil {
		return nil, err
	}

	return ndarray.New(shape, data)
}

// fit builds the spline described by the request.
func (r *Request) fit() (*csaps.CubicSmoothingSpline[float64], error) {
	y, err := r.values()
	if err != nil {
		return nil, err
	}
	s := csaps.New(r.X, y).WithWeights(r.Weights)
	if r.Axis != nil {
		s.WithAxis(*r.Axis)
	}
	if r.Smooth != nil {
		s.WithSmooth(*r.Smooth)
	}

	return s.Make()
}

// flatten walks a nested list and returns its shape and row-major data.
// A scalar is rejected; the shallowest level must be a list.
func flatten(v any) ([]int, []float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: top level is %T", ErrRagged, v)
	}
	var shape []int
	for cur := any(list); ; {
		l, ok := cur.([]any)
		if !ok {
			break
		}
		shape = append(shape, len(l))
		if len(l) == 0 {
			break
		}
		cur = l[0]
	}

	data := make([]float64, 0)
	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		if depth == len(shape) {
			f, err := number(v)
			if err != nil {
				return err
			}
			data = append(data, f)

			return nil
		}
		l, ok := v.([]any)
		if !ok || len(l) != shape[depth] {
			return fmt.Errorf("%w: at depth %d", ErrRagged, depth)
		}
		for _, e := range l {
			if err := walk(e, depth+1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(list, 0); err != nil {
		return nil, nil, err
	}

	return shape, data, nil
}

// number converts a decoded YAML scalar to float64.
func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumber, v, v)
	}
}

// nest is the inverse of flatten: it rebuilds nested lists from shape and
// row-major data.
func nest(shape []int, data []float64) any {
	if len(shape) == 1 {
		return data
	}
	stride := 1
	for _, d := range shape[1:] {
		stride *= d
	}
	out := make([]any, shape[0])
	for i := range out {
		out[i] = nest(shape[1:], data[i*stride:(i+1)*stride])
	}

	return out
}
