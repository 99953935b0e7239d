// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"

	"github.com/gogpu/adaptive"
)

// Foreground art stays inside the 66dp safe zone of the 108dp layer: a
// circle of radius 33/108 around the layer center.
const safeRadius = 33.0 / 108

// builtinSource is the procedural icon set.
type builtinSource struct{}

// Builtin returns a source of procedurally drawn icons. It never fails.
func Builtin() Source {
	return builtinSource{}
}

// Icons implements Source.
func (builtinSource) Icons(ctx context.Context) ([]adaptive.Icon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return BuiltinIcons(), nil
}

// BuiltinIcons returns the procedural icon set in a fixed order.
func BuiltinIcons() []adaptive.Icon {
	white := adaptive.White
	return []adaptive.Icon{
		adaptive.NewAdaptiveIcon("Bolt",
			fg(adaptive.NewShape().
				MoveTo(0.55, 0.24).LineTo(0.38, 0.53).LineTo(0.49, 0.53).
				LineTo(0.44, 0.76).LineTo(0.63, 0.45).LineTo(0.52, 0.45).
				LineTo(0.58, 0.24), adaptive.Hex("#ffd600")),
			gradient(adaptive.GradientTopBottom, "#263238", "#102027")),
		adaptive.NewAdaptiveIcon("Bubbles",
			adaptive.LayerDrawable{Layers: []adaptive.Drawable{
				fg(adaptive.Circle(0.42, 0.44, 0.14), white),
				fg(adaptive.Circle(0.6, 0.6, 0.09), white.WithAlpha(0.8)),
				fg(adaptive.Circle(0.62, 0.38, 0.05), white.WithAlpha(0.6)),
			}},
			gradient(adaptive.GradientDiagonal, "#4fc3f7", "#0277bd")),
		adaptive.NewAdaptiveIcon("Compass",
			adaptive.LayerDrawable{Layers: []adaptive.Drawable{
				fg(ring(0.5, 0.5, safeRadius*0.95, safeRadius*0.8), white),
				fg(adaptive.Polygon(0.5, 0.5, safeRadius*0.7, 4, 0), adaptive.Hex("#ff7043")),
			}},
			adaptive.ColorDrawable{Color: adaptive.Hex("#37474f")}),
		adaptive.NewAdaptiveIcon("Droid",
			adaptive.LayerDrawable{Layers: []adaptive.Drawable{
				fg(adaptive.Ellipse(0.5, 0.56, 0.2, 0.16), adaptive.Hex("#3ddc84")),
				fg(adaptive.Circle(0.43, 0.5, 0.022), adaptive.Hex("#073042")),
				fg(adaptive.Circle(0.57, 0.5, 0.022), adaptive.Hex("#073042")),
			}},
			adaptive.ColorDrawable{Color: adaptive.Hex("#073042")}),
		adaptive.NewAdaptiveIcon("Hexagon",
			fg(adaptive.Polygon(0.5, 0.5, safeRadius, 6, 0), adaptive.Hex("#fafafa")),
			gradient(adaptive.GradientLeftRight, "#ab47bc", "#5e35b1")),
		adaptive.NewAdaptiveIcon("Leaf",
			fg(adaptive.NewShape().
				MoveTo(0.34, 0.68).
				CubeTo(0.3, 0.4, 0.5, 0.28, 0.7, 0.3).
				CubeTo(0.72, 0.52, 0.58, 0.72, 0.34, 0.68), adaptive.Hex("#c5e1a5")),
			gradient(adaptive.GradientTopBottom, "#66bb6a", "#2e7d32")),
		adaptive.NewAdaptiveIcon("Star",
			fg(adaptive.Star(0.5, 0.52, safeRadius, safeRadius*0.45, 5, 0), adaptive.Hex("#ffca28")),
			gradient(adaptive.GradientDiagonal, "#ef5350", "#b71c1c")),
		adaptive.NewAdaptiveIcon("Window",
			fg(adaptive.RoundedRect(0.3, 0.3, 0.4, 0.4, 0.05), white),
			adaptive.LayerDrawable{Layers: []adaptive.Drawable{
				adaptive.ColorDrawable{Color: adaptive.Hex("#ffb300")},
				adaptive.ShapeDrawable{Shape: stripes(6), Color: adaptive.Hex("#ffa000")},
			}}),
	}
}

// Fallback returns the bundled icon that is appended to every load.
func Fallback() adaptive.Icon {
	return adaptive.NewAdaptiveIcon("Playground",
		adaptive.LayerDrawable{Layers: []adaptive.Drawable{
			fg(adaptive.RoundedRect(0.36, 0.36, 0.28, 0.28, 0.06), adaptive.White),
			fg(adaptive.RoundedRect(0.42, 0.42, 0.16, 0.16, 0.03), adaptive.Hex("#1a73e8")),
		}},
		adaptive.LayerDrawable{Layers: []adaptive.Drawable{
			adaptive.GradientDrawable{
				Orientation: adaptive.GradientTopBottom,
				Start:       adaptive.Hex("#1a73e8"),
				End:         adaptive.Hex("#0d47a1"),
			},
			adaptive.ShapeDrawable{Shape: grid(9), Color: adaptive.White.WithAlpha(0.12)},
		}},
	)
}

func fg(s *adaptive.Shape, c adaptive.RGBA) adaptive.ShapeDrawable {
	return adaptive.ShapeDrawable{Shape: s, Color: c}
}

func gradient(o adaptive.GradientOrientation, from, to string) adaptive.GradientDrawable {
	return adaptive.GradientDrawable{Orientation: o, Start: adaptive.Hex(from), End: adaptive.Hex(to)}
}

// ring returns an annulus; the inner circle is wound the other way so the
// non-zero rule leaves it empty.
func ring(cx, cy, outer, inner float64) *adaptive.Shape {
	s := adaptive.Circle(cx, cy, outer)
	k := inner * 0.5522847498307936
	return s.
		MoveTo(cx+inner, cy).
		CubeTo(cx+inner, cy-k, cx+k, cy-inner, cx, cy-inner).
		CubeTo(cx-k, cy-inner, cx-inner, cy-k, cx-inner, cy).
		CubeTo(cx-inner, cy+k, cx-k, cy+inner, cx, cy+inner).
		CubeTo(cx+k, cy+inner, cx+inner, cy+k, cx+inner, cy).
		Close()
}

// stripes returns n diagonal bands across the whole layer, so parallax on
// the background is easy to see.
func stripes(n int) *adaptive.Shape {
	s := adaptive.NewShape()
	w := 1.0 / float64(n)
	for i := -n; i < n; i++ {
		x := float64(i) * 2 * w
		s.MoveTo(x, 1).LineTo(x+w, 1).LineTo(x+w+1, 0).LineTo(x+1, 0).Close()
	}
	return s
}

// grid returns thin lines every 1/n of the layer.
func grid(n int) *adaptive.Shape {
	s := adaptive.NewShape()
	const t = 0.004
	for i := 1; i < n; i++ {
		p := float64(i) / float64(n)
		s.MoveTo(p-t, 0).LineTo(p+t, 0).LineTo(p+t, 1).LineTo(p-t, 1).Close()
		s.MoveTo(0, p-t).LineTo(1, p-t).LineTo(1, p+t).LineTo(0, p+t).Close()
	}
	return s
}
