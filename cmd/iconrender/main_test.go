// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"
	"testing"

	"github.com/gogpu/adaptive"
)

func TestCompositeCentersScaledView(t *testing.T) {
	v := adaptive.NewView()
	v.SetIcon(adaptive.NewAdaptiveIcon("white", nil, adaptive.ColorDrawable{Color: adaptive.White}))
	v.Render()

	dst := adaptive.NewPixmap(200, 200)
	composite(dst, v, image.Rect(64, 64, 136, 136))

	if _, _, _, a := dst.PixelPremul(100, 100); a != 255 {
		t.Errorf("cell center alpha = %d, want 255", a)
	}
	if _, _, _, a := dst.PixelPremul(60, 100); a != 0 {
		t.Errorf("outside cell alpha = %d, want 0", a)
	}

	// Scaled up by the background scale, the icon covers more of the frame.
	v.SetScale(1)
	v.Render()
	dst.Erase()
	composite(dst, v, image.Rect(64, 64, 136, 136))
	if _, _, _, a := dst.PixelPremul(60, 100); a != 255 {
		t.Errorf("scaled icon alpha at x=60 = %d, want 255", a)
	}
}

func TestCompositeSkipsUnrenderedView(t *testing.T) {
	dst := adaptive.NewPixmap(10, 10)
	composite(dst, adaptive.NewView(), dst.Bounds())
	for _, b := range dst.Data() {
		if b != 0 {
			t.Fatal("unrendered view should draw nothing")
		}
	}
}
