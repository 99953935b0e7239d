// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package playground

import (
	"math"
	"time"

	"github.com/gogpu/adaptive"
	"github.com/gogpu/adaptive/anim"
)

// Grid and gesture defaults.
const (
	// MinItemCount is the smallest number of grid cells; short icon lists
	// repeat to fill them.
	MinItemCount = 40

	// DefaultSpans is the number of cells across the grid.
	DefaultSpans = 4

	// DefaultItemDp is the side of a grid cell in dp.
	DefaultItemDp = 88

	// DefaultShadowDy is the shadow offset in dp.
	DefaultShadowDy = 1.5

	// CornerDuration is the length of the mask change animation.
	CornerDuration = 200 * time.Millisecond

	// ScaleDuration is the length of the pinch demo animation.
	ScaleDuration = 300 * time.Millisecond
)

// CornerPresetsDp are the mask corner radii cycled by CycleCorner, in dp.
var CornerPresetsDp = [...]float64{36, 30, 16, 4}

// DefaultShadowColor is the drop shadow under every icon.
var DefaultShadowColor = adaptive.ARGB(0x33000000)

// Config holds the playground settings a host can change at startup.
type Config struct {
	// Density is the number of pixels per dp.
	Density float64

	// Spans is the number of cells across the grid.
	Spans int

	// ItemDp is the side of a grid cell in dp.
	ItemDp float64

	// ShadowColor and ShadowDy configure the icon shadow. A transparent
	// color or a non-positive offset disables it.
	ShadowColor adaptive.RGBA
	ShadowDy    float64

	// Stiffness and DampingRatio seed the release spring sliders.
	Stiffness    float64
	DampingRatio float64
}

// DefaultConfig returns the settings the playground starts with.
func DefaultConfig() Config {
	return Config{
		Density:      1,
		Spans:        DefaultSpans,
		ItemDp:       DefaultItemDp,
		ShadowColor:  DefaultShadowColor,
		ShadowDy:     DefaultShadowDy,
		Stiffness:    anim.DefaultStiffness,
		DampingRatio: anim.DefaultDampingRatio,
	}
}

// normalize replaces unusable values with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if c.Spans <= 0 {
		c.Spans = d.Spans
	}
	if c.ItemDp <= 0 {
		c.ItemDp = d.ItemDp
	}
	if c.Stiffness <= 0 {
		c.Stiffness = d.Stiffness
	}
	if c.DampingRatio <= 0 {
		c.DampingRatio = d.DampingRatio
	}
	return c
}

// ItemSize returns the side of a grid cell in pixels.
func (c Config) ItemSize() int {
	c = c.normalize()
	return int(math.Round(c.ItemDp * c.Density))
}

// Corners returns the corner presets in pixels.
func (c Config) Corners() []float64 {
	density := c.normalize().Density
	out := make([]float64, len(CornerPresetsDp))
	for i, dp := range CornerPresetsDp {
		out[i] = dp * density
	}
	return out
}

// ViewOptions returns the options for creating a grid cell view.
func (c Config) ViewOptions() []adaptive.ViewOption {
	c = c.normalize()
	return []adaptive.ViewOption{
		adaptive.WithDensity(c.Density),
		adaptive.WithShadow(c.ShadowColor, c.ShadowDy*c.Density),
	}
}
