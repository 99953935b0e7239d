// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, row-major with
// no padding. This is the same layout as image.RGBA, so a Pixmap can be
// handed to any image/draw consumer through RGBAImage without copying.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new, fully transparent pixmap with the given
// dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	r, g, b, a := c.Premul8()
	p.SetPixelPremul(x, y, r, g, b, a)
}

// SetPixelPremul stores already premultiplied components.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixelPremul(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// PixelPremul returns the stored premultiplied components of a pixel.
// Out-of-bounds coordinates read as transparent.
func (p *Pixmap) PixelPremul(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	return FromColor(p.At(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.Premul8()
	if r|g|b|a == 0 {
		clear(p.data)
		return
	}
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Erase resets every pixel to transparent.
func (p *Pixmap) Erase() {
	clear(p.data)
}

// RGBAImage returns an *image.RGBA that shares the pixmap's storage.
// Writes through the returned image are visible in the pixmap.
func (p *Pixmap) RGBAImage() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pm.SetPixelPremul(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}

	return pm
}

// Equal reports whether two pixmaps have identical size and contents.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if p.width != other.width || p.height != other.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.RGBAImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.PixelPremul(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
