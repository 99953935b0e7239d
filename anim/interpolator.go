// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "math"

// Interpolator maps the elapsed fraction of an animation, in [0, 1], to the
// fraction of the value change to apply.
type Interpolator func(t float64) float64

// Linear applies the value change at a constant rate.
func Linear(t float64) float64 { return t }

// FastOutSlowIn accelerates quickly and decelerates gently, the standard
// curve for on-screen movement. It is the cubic Bézier (0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns an interpolator for the cubic Bézier curve from (0, 0)
// to (1, 1) with control points (x1, y1) and (x2, y2). x1 and x2 are
// clamped to [0, 1] so the curve is a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Interpolator {
	x1 = math.Max(0, math.Min(1, x1))
	x2 = math.Max(0, math.Min(1, x2))
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(solveBezierX(t, x1, x2), y1, y2)
	}
}

// bezier evaluates one coordinate of a unit cubic Bézier at parameter s.
func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierDerivative(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveBezierX finds the curve parameter whose x coordinate is x.
// Newton iteration first, bisection when the slope is too flat.
func solveBezierX(x, x1, x2 float64) float64 {
	const eps = 1e-7

	s := x
	for i := 0; i < 8; i++ {
		e := bezier(s, x1, x2) - x
		if math.Abs(e) < eps {
			return s
		}
		d := bezierDerivative(s, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= e / d
		if s < 0 || s > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 64; i++ {
		e := bezier(s, x1, x2) - x
		if math.Abs(e) < eps {
			break
		}
		if e > 0 {
			hi = s
		} else {
			lo = s
		}
		s = (lo + hi) / 2
	}
	return s
}
