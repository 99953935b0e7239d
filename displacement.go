// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

// MaxVelocity bounds the pointer velocity, in units per second, that
// contributes to layer displacement.
const MaxVelocity = 1000.0

// VelocityToDisplacement maps a pointer velocity to a layer displacement in
// pixels. The velocity is clamped to [-MaxVelocity, MaxVelocity], so the
// result never exceeds iconSize in magnitude. Layers move against the
// direction of travel.
func VelocityToDisplacement(iconSize int, velocity float64) float64 {
	v := min(max(velocity, -MaxVelocity), MaxVelocity)
	return float64(iconSize) * v / -MaxVelocity
}
