// Package bspline evaluates B-spline curves over generic control points.
/*

A B-spline curve is defined by a polynomial degree, a sequence of control
points, and a non-decreasing knot vector. This package computes points on
such a curve with de Boor's algorithm, a recursive affine-blending scheme
which never constructs the basis polynomials explicitly. Control points may
be of any type that can be linearly interpolated: scalars, 2D-points, RGB
colors, transformation matrices, and so on.

A well known example is the cardinal cubic B-spline from Wikipedia's
B-spline page, a smooth bump over the domain [-2,2]:

   points := []bspline.Float{0, 0, 0, 6, 0, 0, 0}
   knots := []float64{-2, -2, -2, -2, -1, 0, 1, 2, 2, 2, 2}
   curve, err := bspline.New(3, points, knots)
   if err != nil { ... }
   min, max := curve.Domain()
   y, err := curve.At(0.5 * (min + max))

The curve is only defined over the inclusive domain returned by Domain(),
which is a sub-range of the knot vector for degree > 0. At returns an error
for parameters outside of it.

The package assumes the reader is familiar at some level with how B-splines
work, i.e. how control points and knots affect the shape of the curve. Some
good entry points for reading:

   Wikipedia page on B-splines
   https://en.wikipedia.org/wiki/B-spline

   Piegl & Tiller: The NURBS Book, 2nd ed., Springer 1997
   (algorithms A2.1 and A2.2 for knot spans and basis functions)

   Shirley et al.: Fundamentals of Computer Graphics
   (has a good chapter on curves)

   Splines and B-splines: An Introduction
   http://www.uio.no/studier/emner/matnat/ifi/INF-MAT5340/v07/undervisningsmateriale/kap1.pdf

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline
