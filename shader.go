// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "math"

// TileMode determines how a shader handles coordinates outside its bitmap.
type TileMode uint8

const (
	// TileClamp repeats the nearest edge pixel.
	TileClamp TileMode = iota

	// TileDecal treats everything outside the bitmap as transparent.
	TileDecal
)

// String returns a string representation of the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileDecal:
		return "Decal"
	default:
		return "Unknown"
	}
}

// BitmapShader samples a pixmap through a local transform.
//
// The local matrix maps bitmap space to shader space. Sampling inverts it,
// so a pixel center p in shader space reads the bitmap at Minv(p). The
// inverse is cached whenever the local matrix changes.
type BitmapShader struct {
	bitmap  *Pixmap
	local   Matrix
	inverse Matrix
	tile    TileMode
}

// NewBitmapShader creates a shader over bitmap with an identity local
// matrix and bilinear filtering.
//
// Returns nil if bitmap is nil.
func NewBitmapShader(bitmap *Pixmap, tile TileMode) *BitmapShader {
	if bitmap == nil {
		return nil
	}
	return &BitmapShader{
		bitmap:  bitmap,
		local:   Identity(),
		inverse: Identity(),
		tile:    tile,
	}
}

// SetLocalMatrix installs the bitmap-to-shader transform.
// A singular matrix falls back to identity sampling.
func (s *BitmapShader) SetLocalMatrix(m Matrix) {
	s.local = m
	s.inverse = m.Invert()
}

// LocalMatrix returns the current local matrix.
func (s *BitmapShader) LocalMatrix() Matrix {
	return s.local
}

// Sample returns the premultiplied color at shader-space position (x, y).
// (x, y) is normally a pixel center.
func (s *BitmapShader) Sample(x, y float64) (r, g, b, a uint8) {
	q := s.inverse.TransformPoint(Pt(x, y))
	return s.sampleBilinear(q.X-0.5, q.Y-0.5)
}

// sampleBilinear interpolates the four texels around the continuous texel
// coordinate (fx, fy), where integer values land on texel centers.
func (s *BitmapShader) sampleBilinear(fx, fy float64) (r, g, b, a uint8) {
	w, h := s.bitmap.Width(), s.bitmap.Height()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	x1 := x0 + 1
	y1 := y0 + 1

	r00, g00, b00, a00 := s.texel(x0, y0)
	r10, g10, b10, a10 := s.texel(x1, y0)
	r01, g01, b01, a01 := s.texel(x0, y1)
	r11, g11, b11, a11 := s.texel(x1, y1)

	r = lerp8(r00, r10, r01, r11, tx, ty)
	g = lerp8(g00, g10, g01, g11, tx, ty)
	b = lerp8(b00, b10, b01, b11, tx, ty)
	a = lerp8(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

func (s *BitmapShader) texel(x, y int) (r, g, b, a uint8) {
	if s.tile == TileClamp {
		x = clampInt(x, 0, s.bitmap.Width()-1)
		y = clampInt(y, 0, s.bitmap.Height()-1)
	}
	return s.bitmap.PixelPremul(x, y)
}

// lerp8 performs bilinear interpolation of four byte samples.
func lerp8(v00, v10, v01, v11 uint8, tx, ty float64) uint8 {
	top := float64(v00)*(1-tx) + float64(v10)*tx
	bottom := float64(v01)*(1-tx) + float64(v11)*tx
	return uint8(math.Round(clamp255(top*(1-ty) + bottom*ty)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
