package bspline

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// KnotVec is a non-decreasing sequence of knot values. It partitions the
// parameter domain of a curve into spans and controls where and how
// strongly each control point influences the curve.
type KnotVec []float64

// Clone returns a copy of the knot sequence.
func (kv KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), kv...)
}

// IsNonDecreasing checks the ordering invariant every knot sequence has
// to fulfill.
func (kv KnotVec) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// Domain returns the valid parameter range for a curve of the given
// degree, i.e. [kv[degree], kv[len-degree-1]].
func (kv KnotVec) Domain(degree int) (float64, float64) {
	return kv[degree], kv[len(kv)-1-degree]
}

// Span locates the knot span index k with kv[k] <= t < kv[k+1] by binary
// search, for a curve of the given degree (this is algorithm A2.1 from
// Piegl & Tiller). The result is clamped to [degree, len-degree-2], and
// t = domain max maps to the last span of the domain, so the curve is
// defined and continuous at the right endpoint. Spans of zero width from
// repeated knots are skipped, never selected.
func (kv KnotVec) Span(degree int, t float64) int {
	n := len(kv) - degree - 2 // index of the last valid span
	if t >= kv[n+1] {
		return n
	}
	if t <= kv[degree] {
		return degree
	}
	low, high := degree, n+1
	mid := (low + high) / 2
	for t < kv[mid] || t >= kv[mid+1] {
		if t < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// BasisFunctions computes the degree+1 non-vanishing basis functions at
// parameter t (algorithm A2.2 from Piegl & Tiller). Entry i of the result
// is the weight of control point span-degree+i; the entries sum to 1 for
// any t inside the domain. Evaluating a curve through de Boor blending is
// equivalent to the weighted sum of control points with these weights.
func (kv KnotVec) BasisFunctions(degree int, t float64) []float64 {
	span := kv.Span(degree, t)
	basis := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	basis[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = t - kv[span+1-j]
		right[j] = kv[span+j] - t
		var saved float64
		for r := 0; r < j; r++ {
			temp := basis[r] / (right[r+1] + left[j-r])
			basis[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		basis[j] = saved
	}
	return basis
}

// Multiplicities returns a sorted map from distinct knot value to its
// multiplicity, i.e. the count of exact repetitions. Multiplicity
// degree+1 at an endpoint forces the curve through the adjacent control
// point; interior multiplicity reduces continuity and creates corners.
func (kv KnotVec) Multiplicities() *treemap.Map {
	mults := treemap.NewWith(utils.Float64Comparator)
	for _, knot := range kv {
		if count, ok := mults.Get(knot); ok {
			mults.Put(knot, count.(int)+1)
		} else {
			mults.Put(knot, 1)
		}
	}
	return mults
}

// IsClamped checks whether the first and last knots are repeated with
// multiplicity degree+1, the "cardinal" shape which makes the curve start
// in the first and end in the last control point.
func (kv KnotVec) IsClamped(degree int) bool {
	if len(kv) < 2*(degree+1) {
		return false
	}
	for i := 1; i <= degree; i++ {
		if kv[i] != kv[0] || kv[len(kv)-1-i] != kv[len(kv)-1] {
			return false
		}
	}
	return true
}

// UniformKnots builds the knot sequence 0, 1, 2, ... of the length
// required for n control points of the given degree. The resulting curve
// does not touch its first and last control points.
func UniformKnots(degree, n int) (KnotVec, error) {
	if err := checkKnotArgs(degree, n); err != nil {
		return nil, err
	}
	kv := make(KnotVec, n+degree+1)
	for i := range kv {
		kv[i] = float64(i)
	}
	return kv, nil
}

// ClampedKnots builds a clamped ("cardinal") knot sequence for n control
// points of the given degree: the first and last knot values are repeated
// degree+1 times, with uniformly spaced interior knots. The resulting
// curve interpolates its first and last control points.
func ClampedKnots(degree, n int) (KnotVec, error) {
	if err := checkKnotArgs(degree, n); err != nil {
		return nil, err
	}
	kv := make(KnotVec, n+degree+1)
	for i := range kv {
		switch {
		case i <= degree:
			kv[i] = 0
		case i >= n:
			kv[i] = float64(n - degree)
		default:
			kv[i] = float64(i - degree)
		}
	}
	return kv, nil
}

func checkKnotArgs(degree, n int) error {
	if degree < 0 {
		return fmt.Errorf("%w: got %d", ErrDegree, degree)
	}
	if n <= degree {
		return fmt.Errorf("%w: degree %d needs at least %d points, got %d",
			ErrTooFewPoints, degree, degree+1, n)
	}
	return nil
}
