// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package adaptive renders adaptive icons with touch-driven parallax.
//
// # Overview
//
// An adaptive icon is two full-bleed layers, foreground and background,
// that are larger than the visible icon and shown through a mask. Moving and
// scaling the layers independently behind the mask produces a parallax
// effect. adaptive is a Pure Go CPU compositor for that effect plus the
// pieces a host needs to drive it from pointer input.
//
// # Quick Start
//
//	import "github.com/gogpu/adaptive"
//
//	v := adaptive.NewView(adaptive.WithDensity(2))
//	v.SetIcon(adaptive.NewAdaptiveIcon("demo",
//	    adaptive.ShapeDrawable{Shape: adaptive.Circle(0.5, 0.5, 0.25), Color: adaptive.White},
//	    adaptive.ColorDrawable{Color: adaptive.Hex("#3ddc84")},
//	))
//	v.SetCornerRadius(72)
//	v.SetVelocityX(800)
//	v.Render().SavePNG("icon.png")
//
// # Rendering Model
//
// Each layer is rasterized once, by SetIcon, into a square buffer of
// round(108 * density) pixels. Every draw then:
//   - builds the layer's shader matrix, a scale about the layer center
//     followed by a translation of (displacement - viewportOffset)
//   - fills the icon square, masked by an anti-aliased rounded rectangle,
//     sampling each layer bilinearly through the inverse of its matrix
//   - paints shadow, background and foreground in that order
//
// # Motion
//
// Pointer velocity is clamped to ±1000 and mapped to a displacement of at
// most one icon size, against the direction of travel; each layer moves by
// its own translate factor times that displacement. A pinch value in [0, 1]
// grows each layer by its scale factor.
//
// Mutators never draw synchronously. They mark the view dirty and, when an
// Invalidator such as a Choreographer is configured, queue it for the next
// frame so any number of changes in one frame cost one composite.
//
// # Architecture
//
// The library is organized into:
//   - Public API: View, Icon, Drawable, Choreographer, Pixmap, Matrix
//   - anim: tweens and springs that drive view properties
//   - velocity: pointer velocity estimation
//   - loader: asynchronous, cached icon enumeration
//   - playground: the grid controller tying input to views
//   - Internal: blend (premultiplied compositing)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package adaptive

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
