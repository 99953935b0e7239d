// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"math"

	"golang.org/x/image/vector"
)

// circleKappa is the control point distance for approximating a quarter
// circle with a cubic Bézier curve.
const circleKappa = 0.5522847498307936

type shapeVerb uint8

const (
	verbMoveTo shapeVerb = iota
	verbLineTo
	verbQuadTo
	verbCubeTo
	verbClose
)

type shapeOp struct {
	verb shapeVerb
	pts  [3]Point
}

// Shape is a resolution-independent outline in unit coordinates, where
// (0, 0) is the top-left and (1, 1) the bottom-right of the drawable bounds.
//
// Shapes are filled with the non-zero winding rule.
type Shape struct {
	ops  []shapeOp
	open bool
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{}
}

// MoveTo starts a new subpath at (x, y). An open subpath is closed first.
func (s *Shape) MoveTo(x, y float64) *Shape {
	if s.open {
		s.Close()
	}
	s.ops = append(s.ops, shapeOp{verb: verbMoveTo, pts: [3]Point{Pt(x, y)}})
	s.open = true
	return s
}

// LineTo adds a line segment to (x, y).
func (s *Shape) LineTo(x, y float64) *Shape {
	s.ops = append(s.ops, shapeOp{verb: verbLineTo, pts: [3]Point{Pt(x, y)}})
	return s
}

// QuadTo adds a quadratic Bézier segment.
func (s *Shape) QuadTo(cx, cy, x, y float64) *Shape {
	s.ops = append(s.ops, shapeOp{verb: verbQuadTo, pts: [3]Point{Pt(cx, cy), Pt(x, y)}})
	return s
}

// CubeTo adds a cubic Bézier segment.
func (s *Shape) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *Shape {
	s.ops = append(s.ops, shapeOp{verb: verbCubeTo, pts: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)}})
	return s
}

// Close closes the current subpath.
func (s *Shape) Close() *Shape {
	if s.open {
		s.ops = append(s.ops, shapeOp{verb: verbClose})
		s.open = false
	}
	return s
}

// Len returns the number of path operations in the shape.
func (s *Shape) Len() int {
	return len(s.ops)
}

// replay feeds the shape into z, scaled to a w x h area.
func (s *Shape) replay(z *vector.Rasterizer, w, h float32) {
	sc := func(p Point) (float32, float32) {
		return float32(p.X) * w, float32(p.Y) * h
	}
	open := false
	for _, op := range s.ops {
		switch op.verb {
		case verbMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := sc(op.pts[0])
			z.MoveTo(x, y)
			open = true
		case verbLineTo:
			x, y := sc(op.pts[0])
			z.LineTo(x, y)
		case verbQuadTo:
			cx, cy := sc(op.pts[0])
			x, y := sc(op.pts[1])
			z.QuadTo(cx, cy, x, y)
		case verbCubeTo:
			c1x, c1y := sc(op.pts[0])
			c2x, c2y := sc(op.pts[1])
			x, y := sc(op.pts[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case verbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// Circle returns a circle centered at (cx, cy) with radius r.
func Circle(cx, cy, r float64) *Shape {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns an axis-aligned ellipse centered at (cx, cy).
func Ellipse(cx, cy, rx, ry float64) *Shape {
	kx, ky := rx*circleKappa, ry*circleKappa
	return NewShape().
		MoveTo(cx+rx, cy).
		CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
}

// RoundedRect returns a rectangle with corners rounded by r. The radius is
// limited to half of the shorter side.
func RoundedRect(x, y, w, h, r float64) *Shape {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		return NewShape().MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
	}
	k := r * circleKappa
	return NewShape().
		MoveTo(x+r, y).
		LineTo(x+w-r, y).
		CubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r).
		LineTo(x+w, y+h-r).
		CubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h).
		LineTo(x+r, y+h).
		CubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r).
		LineTo(x, y+r).
		CubeTo(x, y+r-k, x+r-k, y, x+r, y).
		Close()
}

// Polygon returns a regular polygon with n vertices on a circle of radius r.
// rotation is in radians; zero puts the first vertex straight up.
// n below 3 yields an empty shape.
func Polygon(cx, cy, r float64, n int, rotation float64) *Shape {
	s := NewShape()
	if n < 3 {
		return s
	}
	for i := 0; i < n; i++ {
		a := rotation - math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	return s.Close()
}

// Star returns a star with the given number of points alternating between
// the outer and inner radius. points below 2 yields an empty shape.
func Star(cx, cy, outer, inner float64, points int, rotation float64) *Shape {
	s := NewShape()
	if points < 2 {
		return s
	}
	n := points * 2
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rotation - math.Pi/2 + math.Pi*float64(i)/float64(points)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	return s.Close()
}
