// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/adaptive"
)

// mockTexture records uploads instead of talking to the GPU.
type mockTexture struct {
	width, height int
	data          []byte
	writes        int
	deallocated   bool
}

func (m *mockTexture) WritePixels(pixels []byte) {
	m.data = append(m.data[:0], pixels...)
	m.writes++
}

func (m *mockTexture) Deallocate() { m.deallocated = true }

type mockFactory struct {
	textures []*mockTexture
}

func (f *mockFactory) newTexture(width, height int) texture {
	t := &mockTexture{width: width, height: height}
	f.textures = append(f.textures, t)
	return t
}

func newTestCanvas(t *testing.T, v *adaptive.View) (*Canvas, *mockFactory) {
	t.Helper()
	f := &mockFactory{}
	c, err := newCanvas(v, f.newTexture)
	if err != nil {
		t.Fatalf("newCanvas() error = %v", err)
	}
	return c, f
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilView) {
		t.Errorf("New(nil) error = %v, want ErrNilView", err)
	}
	v := adaptive.NewView()
	v.SetSize(0, 10)
	if _, err := New(v); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(empty view) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(nil) should panic")
		}
	}()
	MustNew(nil)
}

func TestFlushUploadsOnlyNewFrames(t *testing.T) {
	v := adaptive.NewView()
	v.SetIcon(adaptive.NewAdaptiveIcon("red", nil, adaptive.ColorDrawable{Color: adaptive.RGB(1, 0, 0)}))
	c, f := newTestCanvas(t, v)

	if !c.IsDirty() {
		t.Fatal("new canvas should be dirty")
	}
	// Never rendered: Flush renders once itself.
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(f.textures) != 1 || c.Uploads() != 1 || v.Generation() != 1 {
		t.Fatalf("textures=%d uploads=%d generation=%d", len(f.textures), c.Uploads(), v.Generation())
	}
	tex := f.textures[0]
	if tex.width != 72 || tex.height != 72 {
		t.Errorf("texture size = %dx%d, want 72x72", tex.width, tex.height)
	}
	if got := tex.data[(36*72+36)*4:][:4]; got[0] != 255 || got[3] != 255 {
		t.Errorf("center pixel = %v, want opaque red", got)
	}

	// No new render: nothing to upload.
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if c.Uploads() != 1 || c.IsDirty() {
		t.Errorf("idle Flush uploaded: uploads=%d dirty=%v", c.Uploads(), c.IsDirty())
	}

	v.SetCornerRadius(10)
	v.Render()
	if !c.IsDirty() {
		t.Error("canvas should be dirty after a render")
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if c.Uploads() != 2 || tex.writes != 2 || len(f.textures) != 1 {
		t.Errorf("uploads=%d writes=%d textures=%d", c.Uploads(), tex.writes, len(f.textures))
	}
}

func TestFlushRecreatesTextureOnResize(t *testing.T) {
	v := adaptive.NewView()
	c, f := newTestCanvas(t, v)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	v.SetSize(88, 96)
	v.Render()
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(f.textures) != 2 {
		t.Fatalf("textures = %d, want 2", len(f.textures))
	}
	if !f.textures[0].deallocated {
		t.Error("old texture not deallocated")
	}
	if tex := f.textures[1]; tex.width != 88 || tex.height != 96 || tex.writes != 1 {
		t.Errorf("new texture %dx%d writes=%d", tex.width, tex.height, tex.writes)
	}
}

func TestClose(t *testing.T) {
	c, f := newTestCanvas(t, adaptive.NewView())
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if !f.textures[0].deallocated {
		t.Error("Close did not deallocate the texture")
	}
	if err := c.Flush(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Flush after Close error = %v, want ErrCanvasClosed", err)
	}
	if err := c.Draw(nil, image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Draw after Close error = %v, want ErrCanvasClosed", err)
	}
}

func TestCellGeoM(t *testing.T) {
	tests := []struct {
		name         string
		cell         image.Rectangle
		scale        float64
		x, y         float64 // image point
		wantX, wantY float64 // screen point
	}{
		{"origin", image.Rect(10, 20, 98, 108), 1, 0, 0, 10, 20},
		{"center fixed", image.Rect(10, 20, 98, 108), 1.3, 44, 44, 54, 64},
		{"corner scaled", image.Rect(0, 0, 88, 88), 1.5, 0, 0, -22, -22},
		{"far corner scaled", image.Rect(0, 0, 88, 88), 1.5, 88, 88, 110, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CellGeoM(88, 88, tt.cell, tt.scale)
			x, y := m.Apply(tt.x, tt.y)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
