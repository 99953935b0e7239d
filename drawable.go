// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/adaptive/internal/blend"
)

// Drawable is something that can paint itself into a rectangle of a pixmap.
//
// Draw composites source-over and must not touch pixels outside bounds.
type Drawable interface {
	Draw(dst *Pixmap, bounds image.Rectangle)
}

// ColorDrawable fills its bounds with a solid color.
type ColorDrawable struct {
	Color RGBA
}

// Draw implements Drawable.
func (d ColorDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	if dst == nil || d.Color.IsTransparent() {
		return
	}
	r := bounds.Intersect(dst.Bounds())
	xdraw.Draw(dst.RGBAImage(), r, image.NewUniform(d.Color), image.Point{}, xdraw.Over)
}

// GradientOrientation selects the axis of a GradientDrawable.
type GradientOrientation uint8

const (
	// GradientTopBottom runs from the top edge to the bottom edge.
	GradientTopBottom GradientOrientation = iota

	// GradientLeftRight runs from the left edge to the right edge.
	GradientLeftRight

	// GradientDiagonal runs from the top-left corner to the bottom-right corner.
	GradientDiagonal
)

// GradientDrawable fills its bounds with a two-stop linear gradient.
// Stops are interpolated in straight alpha.
type GradientDrawable struct {
	Orientation GradientOrientation
	Start, End  RGBA
}

// Draw implements Drawable.
func (d GradientDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	if dst == nil || bounds.Empty() {
		return
	}
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	r := bounds.Intersect(dst.Bounds())
	data := dst.Data()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		fy := (float64(y-bounds.Min.Y) + 0.5) / h
		for x := r.Min.X; x < r.Max.X; x++ {
			fx := (float64(x-bounds.Min.X) + 0.5) / w
			var t float64
			switch d.Orientation {
			case GradientLeftRight:
				t = fx
			case GradientDiagonal:
				t = (fx + fy) / 2
			default:
				t = fy
			}
			sr, sg, sb, sa := d.Start.Lerp(d.End, t).Premul8()
			i := (y*dst.Width() + x) * 4
			blend.SourceOverCoverage(data[i:i+4], sr, sg, sb, sa, 255)
		}
	}
}

// ImageDrawable scales an image into its bounds.
type ImageDrawable struct {
	Image image.Image
}

// Draw implements Drawable.
func (d ImageDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	if dst == nil || d.Image == nil || d.Image.Bounds().Empty() {
		return
	}
	xdraw.CatmullRom.Scale(dst.RGBAImage(), bounds, d.Image, d.Image.Bounds(), xdraw.Over, nil)
}

// LayerDrawable draws a stack of drawables in order, bottom first.
type LayerDrawable struct {
	Layers []Drawable
}

// Draw implements Drawable.
func (d LayerDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	for _, l := range d.Layers {
		if l != nil {
			l.Draw(dst, bounds)
		}
	}
}

// InsetDrawable draws another drawable inside its bounds shrunk by a
// fraction of the bounds size on every side.
type InsetDrawable struct {
	Drawable Drawable
	Fraction float64
}

// Draw implements Drawable.
func (d InsetDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	if d.Drawable == nil {
		return
	}
	f := math.Max(0, math.Min(d.Fraction, 0.5))
	ix := int(math.Round(float64(bounds.Dx()) * f))
	iy := int(math.Round(float64(bounds.Dy()) * f))
	d.Drawable.Draw(dst, image.Rect(bounds.Min.X+ix, bounds.Min.Y+iy, bounds.Max.X-ix, bounds.Max.Y-iy))
}

// ShapeDrawable fills a vector shape scaled to its bounds.
type ShapeDrawable struct {
	Shape *Shape
	Color RGBA
}

// Draw implements Drawable.
func (d ShapeDrawable) Draw(dst *Pixmap, bounds image.Rectangle) {
	if dst == nil || d.Shape == nil || bounds.Empty() || d.Color.IsTransparent() {
		return
	}
	var z vector.Rasterizer
	z.Reset(bounds.Dx(), bounds.Dy())
	d.Shape.replay(&z, float32(bounds.Dx()), float32(bounds.Dy()))
	z.Draw(dst.RGBAImage(), bounds, image.NewUniform(d.Color), image.Point{})
}
