package bspline

// Float is a scalar control point. Curves over Float are ordinary
// piecewise-polynomial functions of the parameter.
type Float float64

// Interpolate blends two scalars linearly.
func (f Float) Interpolate(other Float, t float64) Float {
	return f*Float(1-t) + other*Float(t)
}

// Color is an RGB control point. Curves over Color blend smoothly through
// color space, e.g. for coloring a gradient along a planar curve.
type Color struct {
	R, G, B float64
}

// Interpolate blends two colors channel-wise.
func (c Color) Interpolate(other Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + other.R*t,
		G: c.G*(1-t) + other.G*t,
		B: c.B*(1-t) + other.B*t,
	}
}

// Lerp is an externally supplied linear interpolation over values of type
// T. It must return a · (1-t) + b · t, or the appropriate equivalent for
// the type.
type Lerp[T any] func(a, b T, t float64) T

// Wrapped adapts an arbitrary value type to the Interpolatable constraint
// by carrying a Lerp alongside each value. This is the seam for
// third-party vector or matrix types without a suitable method set: no
// wrapper type has to be declared, and the core evaluation never learns
// about the foreign type.
type Wrapped[T any] struct {
	Value T
	lerp  Lerp[T]
}

// Wrap pairs a value with its interpolation function. All control points
// of one curve should share the same Lerp.
func Wrap[T any](v T, lerp Lerp[T]) Wrapped[T] {
	return Wrapped[T]{Value: v, lerp: lerp}
}

// WrapAll adapts a whole control-point slice at once.
func WrapAll[T any](vs []T, lerp Lerp[T]) []Wrapped[T] {
	wrapped := make([]Wrapped[T], len(vs))
	for i, v := range vs {
		wrapped[i] = Wrap(v, lerp)
	}
	return wrapped
}

// Interpolate delegates to the wrapped Lerp.
func (w Wrapped[T]) Interpolate(other Wrapped[T], t float64) Wrapped[T] {
	return Wrapped[T]{Value: w.lerp(w.Value, other.Value, t), lerp: w.lerp}
}
