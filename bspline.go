package bspline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

var (
	// ErrDegree indicates a negative spline degree.
	ErrDegree = errors.New("spline degree must not be negative")
	// ErrTooFewPoints indicates too few control points for the degree.
	ErrTooFewPoints = errors.New("spline has too few control points for degree")
	// ErrKnotCount indicates knot count does not match control points and degree.
	ErrKnotCount = errors.New("invalid number of knots")
	// ErrKnotOrder indicates a decreasing step in the knot sequence.
	ErrKnotOrder = errors.New("knots must be non-decreasing")
	// ErrInvalidKnot indicates a knot value which is NaN or infinite.
	ErrInvalidKnot = errors.New("knot value must be finite")
	// ErrParamOutOfDomain indicates an evaluation parameter outside the knot domain.
	ErrParamOutOfDomain = errors.New("parameter outside of knot domain")
)

// Interpolatable is the constraint on control-point types. The curve is
// computed purely from affine blends of control points, so any type which
// can be linearly interpolated qualifies. Implementations must return
//
//	self · (1-t)  +  other · t
//
// or whatever the appropriate linear interpolation is for the type
// (quaternions would interpolate spherically, for example). If the result
// is not a correct interpolation of the two values, the curve produced
// from the type will not be correct either.
type Interpolatable[P any] interface {
	Interpolate(other P, t float64) P
}

// BSpline is a B-spline curve of a given degree, evaluated over control
// points of type P. It is immutable after construction: evaluation methods
// never change it, and concurrent evaluations need no synchronization.
type BSpline[P Interpolatable[P]] struct {
	degree int     // degree of the polynomial curve segments
	points []P     // control points of the curve
	knots  KnotVec // non-decreasing knot sequence
}

// New creates a B-spline curve of the desired degree that interpolates
// between the control points as directed by the knot sequence. Note that
// degree is the interpolating polynomial degree; with the "curve order"
// convention in mind, the degree is order - 1.
//
// Both slices are copied, the curve does not alias caller memory.
//
// A valid curve needs at least degree+1 control points and exactly
// len(points) + degree + 1 knots, sorted in non-decreasing order. New
// checks these conditions eagerly and returns a descriptive error if one
// of them is violated. Repeated knot values are fine (and are in fact the
// standard way to clamp endpoints or create corners).
func New[P Interpolatable[P]](degree int, points []P, knots []float64) (*BSpline[P], error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrDegree, degree)
	}
	if len(points) <= degree {
		return nil, fmt.Errorf("%w: degree %d needs at least %d points, got %d",
			ErrTooFewPoints, degree, degree+1, len(points))
	}
	if len(knots) != len(points)+degree+1 {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrKnotCount,
			len(knots), len(points)+degree+1)
	}
	for i, knot := range knots {
		if math.IsNaN(knot) || math.IsInf(knot, 0) {
			return nil, fmt.Errorf("%w: knot %d", ErrInvalidKnot, i)
		}
		if i > 0 && knot < knots[i-1] {
			return nil, fmt.Errorf("%w: knot %d = %g after %g", ErrKnotOrder,
				i, knot, knots[i-1])
		}
	}
	s := &BSpline[P]{
		degree: degree,
		points: append([]P(nil), points...),
		knots:  append(KnotVec(nil), knots...),
	}
	tracer().Debugf("created B-spline of degree %d over %d control points", degree, len(points))
	return s, nil
}

// Degree of the polynomial curve segments.
func (s *BSpline[P]) Degree() int {
	return s.degree
}

// ControlPoints returns a copy of the control points of the curve.
func (s *BSpline[P]) ControlPoints() []P {
	return append([]P(nil), s.points...)
}

// Knots returns a copy of the knot sequence of the curve.
func (s *BSpline[P]) Knots() KnotVec {
	return s.knots.Clone()
}

// Domain returns the min and max parameter values the curve is defined
// over, i.e. the inclusive interval [knots[degree], knots[len-degree-1]].
// Evaluation is valid for this range only.
func (s *BSpline[P]) Domain() (float64, float64) {
	return s.knots.Domain(s.degree)
}

// At computes the point on the curve at parameter t. The parameter must be
// within the inclusive range returned by Domain(), otherwise At returns
// ErrParamOutOfDomain.
func (s *BSpline[P]) At(t float64) (P, error) {
	min, max := s.Domain()
	if math.IsNaN(t) || t < min || t > max {
		var none P
		tracer().Errorf("parameter %g outside of domain [%g,%g]", t, min, max)
		return none, fmt.Errorf("%w: %g not in [%g,%g]", ErrParamOutOfDomain, t, min, max)
	}
	return s.deBoor(t, s.knots.Span(s.degree, t)), nil
}

// MustAt is a convenience wrapper around At which panics on out-of-domain
// parameters. Useful for plotting loops over a range known to be valid.
func (s *BSpline[P]) MustAt(t float64) P {
	p, err := s.At(t)
	if err != nil {
		panic(err)
	}
	return p
}

// deBoor computes de Boor's algorithm iteratively, bottom up. k is the
// knot span index with knots[k] <= t < knots[k+1]. A working copy of the
// degree+1 control points influencing the span is blended in place over
// degree levels; each level overwrites slots the next level no longer
// reads.
func (s *BSpline[P]) deBoor(t float64, k int) P {
	work := make([]P, s.degree+1)
	copy(work, s.points[k-s.degree:k+1])
	for r := 1; r <= s.degree; r++ {
		for i := s.degree; i >= r; i-- {
			lo := s.knots[k-s.degree+i]
			hi := s.knots[k+i-r+1]
			if hi == lo {
				// Zero-width window from repeated knots: keep the later
				// value. Must not divide here, NaN would poison the blend.
				continue
			}
			alpha := (t - lo) / (hi - lo)
			work[i] = work[i-1].Interpolate(work[i], alpha)
		}
	}
	return work[s.degree]
}
