// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

// ViewOption configures a View during creation.
// Use functional options to customize View behavior.
//
// Example:
//
//	// Default metrics at density 1, no shadow
//	v := adaptive.NewView()
//
//	// xhdpi metrics with a drop shadow, redraws coalesced per frame
//	v := adaptive.NewView(
//	    adaptive.WithDensity(2),
//	    adaptive.WithShadow(adaptive.ARGB(0x40000000), 2),
//	    adaptive.WithInvalidator(choreographer),
//	)
type ViewOption func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	density       float64
	insetFraction float64
	shadowColor   RGBA
	shadowDy      float64
	invalidator   Invalidator
	layerCache    *LayerCache
}

// defaultOptions returns the default view options.
func defaultOptions() viewOptions {
	return viewOptions{
		density:       1,
		insetFraction: ExtraInsetFraction,
		shadowColor:   Transparent,
		shadowDy:      0,
		invalidator:   nil, // redraws are only tracked by the dirty flag
	}
}

// WithDensity sets the display density, in pixels per dp, used to derive
// the layer and icon sizes. Non-positive values are ignored.
func WithDensity(density float64) ViewOption {
	return func(o *viewOptions) {
		if density > 0 {
			o.density = density
		}
	}
}

// WithInsetFraction overrides the extra inset applied on each side of the
// icon viewport. Negative values are ignored.
func WithInsetFraction(f float64) ViewOption {
	return func(o *viewOptions) {
		if f >= 0 {
			o.insetFraction = f
		}
	}
}

// WithShadow enables a flat rounded-rect shadow of color c offset dy pixels
// down. The shadow is drawn only when c is not transparent and dy > 0.
func WithShadow(c RGBA, dy float64) ViewOption {
	return func(o *viewOptions) {
		o.shadowColor = c
		o.shadowDy = dy
	}
}

// WithInvalidator routes redraw requests to inv, typically a Choreographer.
//
// Example:
//
//	ch := adaptive.NewChoreographer()
//	v := adaptive.NewView(adaptive.WithInvalidator(ch))
func WithInvalidator(inv Invalidator) ViewOption {
	return func(o *viewOptions) {
		o.invalidator = inv
	}
}

// WithLayerCache shares rasterized layers through lc. Views created with
// the same cache and density rasterize each icon once.
func WithLayerCache(lc *LayerCache) ViewOption {
	return func(o *viewOptions) {
		o.layerCache = lc
	}
}
