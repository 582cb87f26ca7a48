package bspline

import (
	"github.com/npillmayer/arithm"
)

// Pair is a 2D-point control point, adapting arithm.Pair to the
// Interpolatable constraint. Curves over Pair are planar curves, the
// bread-and-butter case for B-splines.
type Pair arithm.Pair

// Pt constructs a Pair control point from coordinates.
func Pt(x, y float64) Pair {
	return Pair(arithm.P(x, y))
}

// X is the x-part of the point.
func (p Pair) X() float64 {
	return arithm.Pair(p).X()
}

// Y is the y-part of the point.
func (p Pair) Y() float64 {
	return arithm.Pair(p).Y()
}

// Pair returns the point as an arithm.Pair, e.g. for applying affine
// transforms to it.
func (p Pair) Pair() arithm.Pair {
	return arithm.Pair(p)
}

// Interpolate blends two points linearly. It works on the underlying
// complex values directly; arithm's epsilon-rounding helpers are not
// applied, evaluation keeps full precision.
func (p Pair) Interpolate(other Pair, t float64) Pair {
	a := complex(1-t, 0) * complex128(p)
	b := complex(t, 0) * complex128(other)
	return Pair(a + b)
}
