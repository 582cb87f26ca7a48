package bspline_test

import (
	"fmt"

	"github.com/npillmayer/bspline"
)

// The cardinal cubic B-spline from Wikipedia's B-spline page: a smooth
// bump over [-2,2], returning to 0 at both domain ends.
func ExampleBSpline_At() {
	points := []bspline.Float{0, 0, 0, 6, 0, 0, 0}
	knots := []float64{-2, -2, -2, -2, -1, 0, 1, 2, 2, 2, 2}
	curve, err := bspline.New(3, points, knots)
	if err != nil {
		fmt.Println(err)
		return
	}
	min, max := curve.Domain()
	fmt.Printf("domain [%g,%g]\n", min, max)
	for _, t := range []float64{-2, -1, 0, 1, 2} {
		y, _ := curve.At(t)
		fmt.Printf("f(%g) = %.3f\n", t, float64(y))
	}
	// Output:
	// domain [-2,2]
	// f(-2) = 0.000
	// f(-1) = 1.000
	// f(0) = 4.000
	// f(1) = 1.000
	// f(2) = 0.000
}

func ExampleClampedKnots() {
	knots, err := bspline.ClampedKnots(3, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(knots)
	fmt.Println(knots.IsClamped(3))
	// Output:
	// [0 0 0 0 1 2 2 2 2]
	// true
}
