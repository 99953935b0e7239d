// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/adaptive"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ebitencanvas: canvas is closed")

	// ErrNilView is returned when a nil view is passed.
	ErrNilView = errors.New("ebitencanvas: nil view")

	// ErrInvalidDimensions is returned when the view has an empty size.
	ErrInvalidDimensions = errors.New("ebitencanvas: invalid dimensions")
)

// texture is the part of *ebiten.Image the upload path uses.
type texture interface {
	WritePixels(pixels []byte)
	Deallocate()
}

func newEbitenTexture(width, height int) texture {
	return ebiten.NewImage(width, height)
}

// Canvas uploads a view's rendered pixmap to an Ebitengine image.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	view       *adaptive.View
	newTexture func(width, height int) texture
	tex        texture
	width      int
	height     int
	generation uint64 // view generation of the last upload
	uploads    int
	closed     bool
}

// New creates a Canvas for v. The image is created lazily on the first
// Flush.
func New(v *adaptive.View) (*Canvas, error) {
	return newCanvas(v, newEbitenTexture)
}

// MustNew is like New but panics on error.
func MustNew(v *adaptive.View) *Canvas {
	c, err := New(v)
	if err != nil {
		panic(err)
	}
	return c
}

func newCanvas(v *adaptive.View, newTexture func(width, height int) texture) (*Canvas, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if w, h := v.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	return &Canvas{view: v, newTexture: newTexture}, nil
}

// View returns the view presented by the canvas.
func (c *Canvas) View() *adaptive.View { return c.view }

// Uploads returns the number of pixel uploads so far.
func (c *Canvas) Uploads() int { return c.uploads }

// IsDirty reports whether the view rendered since the last upload.
func (c *Canvas) IsDirty() bool {
	return c.tex == nil || c.view.Generation() != c.generation
}

// Flush uploads the view's pixmap if it changed, rendering the view first
// if it was never rendered. The image is recreated when the view size
// changed.
func (c *Canvas) Flush() error {
	if c.closed {
		return ErrCanvasClosed
	}
	pm := c.view.Pixmap()
	if pm == nil {
		pm = c.view.Render()
	}

	w, h := pm.Width(), pm.Height()
	if c.tex != nil && (w != c.width || h != c.height) {
		c.tex.Deallocate()
		c.tex = nil
	}
	if c.tex == nil {
		c.tex = c.newTexture(w, h)
		c.width, c.height = w, h
	} else if c.view.Generation() == c.generation {
		return nil
	}

	c.tex.WritePixels(pm.Data())
	c.generation = c.view.Generation()
	c.uploads++
	return nil
}

// Image returns the uploaded image, or nil before the first Flush.
func (c *Canvas) Image() *ebiten.Image {
	img, _ := c.tex.(*ebiten.Image)
	return img
}

// Draw flushes the canvas and draws the image into cell on dst, scaled by
// the view's pinch scale about the cell center.
func (c *Canvas) Draw(dst *ebiten.Image, cell image.Rectangle) error {
	if err := c.Flush(); err != nil {
		return err
	}
	img := c.Image()
	if img == nil {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = CellGeoM(c.width, c.height, cell, c.view.ViewScale())
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return nil
}

// Close releases the image. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.tex != nil {
		c.tex.Deallocate()
		c.tex = nil
	}
	return nil
}

// CellGeoM returns the transform that centers a width×height image in cell
// and scales it by scale about the cell center.
func CellGeoM(width, height int, cell image.Rectangle, scale float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(width)/2, -float64(height)/2)
	m.Scale(scale, scale)
	m.Translate(float64(cell.Min.X)+float64(cell.Dx())/2, float64(cell.Min.Y)+float64(cell.Dy())/2)
	return m
}
