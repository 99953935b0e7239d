// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

// TestSetPixelPremul tests the SetPixelPremul method.
func TestSetPixelPremul(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixelPremul(5, 5, 128, 64, 32, 255)

	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 255 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (128, 64, 32, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	// At() returns premultiplied color.RGBA
	r, g, b, a := pm.At(5, 5).RGBA()
	if r != 128*257 || g != 64*257 || b != 32*257 || a != 255*257 {
		t.Errorf("At() mismatch: got (%d, %d, %d, %d), want (%d, %d, %d, %d)",
			r, g, b, a, 128*257, 64*257, 32*257, 255*257)
	}
}

// TestSetPixelPremul_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestSetPixelPremul_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixelPremul(c.x, c.y, 255, 0, 0, 255)
		if r, g, b, a := pm.PixelPremul(c.x, c.y); r|g|b|a != 0 {
			t.Errorf("PixelPremul(%d, %d) = (%d, %d, %d, %d), want transparent", c.x, c.y, r, g, b, a)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestSetPixel_Premultiplies(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 1, RGBA{R: 1, G: 0.5, B: 0, A: 0.5})

	r, g, b, a := pm.PixelPremul(1, 1)
	if r != 128 || g != 64 || b != 0 || a != 128 {
		t.Errorf("PixelPremul = (%d, %d, %d, %d), want (128, 64, 0, 128)", r, g, b, a)
	}

	c := pm.GetPixel(1, 1)
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-0.5) > 0.01 || math.Abs(c.A-128.0/255) > 0.01 {
		t.Errorf("GetPixel = %+v, want ~{1 0.5 0 0.5}", c)
	}
}

func TestPixmapClearAndErase(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(White)
	for i, v := range pm.Data() {
		if v != 255 {
			t.Fatalf("Clear(White): data[%d] = %d, want 255", i, v)
		}
	}

	pm.Erase()
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Erase: data[%d] = %d, want 0", i, v)
		}
	}
}

func TestPixmapRGBAImageSharesStorage(t *testing.T) {
	pm := NewPixmap(3, 3)
	img := pm.RGBAImage()
	img.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 40})

	r, g, b, a := pm.PixelPremul(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("write through RGBAImage not visible: got (%d, %d, %d, %d)", r, g, b, a)
	}

	cp := pm.ToImage()
	cp.SetRGBA(0, 0, color.RGBA{A: 255})
	if _, _, _, a := pm.PixelPremul(0, 0); a != 0 {
		t.Error("ToImage must return an independent copy")
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 8))
	src.SetRGBA(6, 6, color.RGBA{R: 100, G: 50, B: 0, A: 200})

	pm := FromImage(src)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", pm.Width(), pm.Height())
	}
	r, g, b, a := pm.PixelPremul(1, 1)
	if r != 100 || g != 50 || b != 0 || a != 200 {
		t.Errorf("PixelPremul(1, 1) = (%d, %d, %d, %d), want (100, 50, 0, 200)", r, g, b, a)
	}
}

func TestPixmapEqual(t *testing.T) {
	a := NewPixmap(4, 4)
	b := NewPixmap(4, 4)
	if !a.Equal(b) {
		t.Error("empty pixmaps of equal size should be equal")
	}
	b.SetPixelPremul(0, 0, 1, 1, 1, 1)
	if a.Equal(b) {
		t.Error("pixmaps with different pixels should differ")
	}
	if a.Equal(NewPixmap(4, 5)) {
		t.Error("pixmaps with different sizes should differ")
	}
}
