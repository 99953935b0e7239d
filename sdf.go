// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// SDFFilledRRectCoverage computes anti-aliased coverage for a filled rounded
// rectangle using a signed distance field approach.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - cx, cy: rectangle center
//   - halfW, halfH: half-width and half-height of the rectangle
//   - cornerRadius: radius of the rounded corners
//
// The radius is limited to [0, min(halfW, halfH)] the way rounded-rect
// rasterizers normalize oversized radii, so a huge radius yields a circle
// or ellipse-capped rectangle rather than an empty mask.
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func SDFFilledRRectCoverage(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	dist := sdfRRect(px, py, cx, cy, halfW, halfH, effectiveRadius(cornerRadius, halfW, halfH))
	return smoothstepCoverage(dist)
}

func effectiveRadius(r, halfW, halfH float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	return math.Min(r, math.Min(halfW, halfH))
}

// sdfRRect computes the signed distance from a point to a rounded rectangle.
// Negative values are inside, positive values are outside.
func sdfRRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	// Outside the corner region: max(dx, dy) gives the distance to the edge.
	// Inside the corner region: the Euclidean distance to the corner circle.
	outside := math.Sqrt(math.Max(dx, 0)*math.Max(dx, 0) + math.Max(dy, 0)*math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

// coverage8 quantizes a [0, 1] coverage value to a byte.
func coverage8(c float64) uint8 {
	return uint8(math.Round(clampUnit(c) * 255))
}
