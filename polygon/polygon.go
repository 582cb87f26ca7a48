// Package polygon flattens planar B-spline curves into polygons.
//
// A closed curve over bspline.Pair control points, sampled densely enough,
// yields a polygon contour which is good enough for most geometric
// processing. The polygons use the polyclip-go types, so flattened curves
// can directly participate in boolean operations (union, intersection,
// difference, xor).
package polygon

import (
	"errors"
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bspline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bspline.polygon'
func tracer() tracing.Trace {
	return tracing.Select("bspline.polygon")
}

// ErrTooFewSegments indicates a segment count too small for a polygon.
var ErrTooFewSegments = errors.New("polygon needs at least 3 segments")

// Flatten samples a planar curve at segments+1 uniformly spaced parameter
// values across its domain and returns the samples as a single polygon
// contour. If the curve is closed (first and last sample coincide), the
// duplicate endpoint is dropped, since polyclip contours are implicitly
// closed.
func Flatten(curve *bspline.BSpline[bspline.Pair], segments int) (polyclip.Polygon, error) {
	if segments < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSegments, segments)
	}
	min, max := curve.Domain()
	step := (max - min) / float64(segments)
	contour := make(polyclip.Contour, 0, segments+1)
	for s := 0; s <= segments; s++ {
		t := min + float64(s)*step
		if s == segments {
			t = max // avoid drifting past the domain
		}
		pt, err := curve.At(t)
		if err != nil {
			return nil, err
		}
		contour = append(contour, polyclip.Point{X: pt.X(), Y: pt.Y()})
	}
	first, last := contour[0], contour[len(contour)-1]
	if first.X == last.X && first.Y == last.Y {
		contour = contour[:len(contour)-1]
	}
	tracer().Debugf("flattened curve to %d-gon", len(contour))
	return polyclip.Polygon{contour}, nil
}

// Clip flattens both curves and applies the boolean operation op to the
// resulting polygons.
func Clip(op polyclip.Op, subject, clip *bspline.BSpline[bspline.Pair], segments int) (polyclip.Polygon, error) {
	ps, err := Flatten(subject, segments)
	if err != nil {
		return nil, err
	}
	pc, err := Flatten(clip, segments)
	if err != nil {
		return nil, err
	}
	return ps.Construct(op, pc), nil
}
