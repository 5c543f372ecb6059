// SPDX-License-Identifier: MIT

package csaps_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/csaps"
	"github.com/katalvlaran/csaps/ndarray"
)

// ExampleCubicSmoothingSpline fits the natural cubic interpolant (p = 1)
// through three points and evaluates it between and beyond them.
func ExampleCubicSmoothingSpline() {
	x := []float64{0, 1, 2}
	y := ndarray.FromSlice([]float64{0, 1, 0})

	s, err := csaps.New(x, y).WithSmooth(1).Make()
	if err != nil {
		fmt.Println("make:", err)
		return
	}
	yi, _ := s.Evaluate([]float64{0.5, 1, 1.5, 3})
	for _, v := range yi.Data() {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// 0.6875
	// 1.0000
	// 0.6875
	// -1.0000
}

// ExampleCubicSmoothingSpline_defaultSmooth shows the computed smoothing
// parameter and the smoothed values at the sites.
func ExampleCubicSmoothingSpline_defaultSmooth() {
	s, _ := csaps.New([]float64{0, 1, 2}, ndarray.FromSlice([]float64{0, 1, 0})).Make()
	yi, _ := s.Evaluate([]float64{0, 1, 2})

	fmt.Printf("p=%.2f\n", s.Spline().Smooth())
	fmt.Printf("%.4f %.4f %.4f\n", yi.Data()[0], yi.Data()[1], yi.Data()[2])
	// Output:
	// p=0.90
	// 0.1667 0.6667 0.1667
}

// ExampleNdSpline_MarshalJSON persists a two-site spline.
func ExampleNdSpline_MarshalJSON() {
	sp, _ := csaps.MakeSpline([]float64{1, 2}, ndarray.FromSlice([]float64{1, 3}), csaps.DefaultAxis, nil, nil)
	raw, _ := json.Marshal(sp)
	fmt.Println(string(raw))
	// Output:
	// {"ndim":1,"order":2,"pieces":1,"smooth":1,"breaks":[1,2],"coeffs":[[2,1]]}
}
