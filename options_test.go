// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"testing"
)

// mockInvalidator records redraw requests.
type mockInvalidator struct {
	posts int
}

func (m *mockInvalidator) PostInvalidate(*View) { m.posts++ }

// TestNewViewDefault tests the metrics derived at density 1.
func TestNewViewDefault(t *testing.T) {
	v := NewView()
	if v == nil {
		t.Fatal("NewView returned nil")
	}

	if v.LayerSize() != 108 {
		t.Errorf("LayerSize() = %d, want 108", v.LayerSize())
	}
	if v.IconSize() != 72 {
		t.Errorf("IconSize() = %d, want 72", v.IconSize())
	}
	if v.ViewportOffset() != 18 {
		t.Errorf("ViewportOffset() = %d, want 18", v.ViewportOffset())
	}
	if v.LayerCenter() != 54 {
		t.Errorf("LayerCenter() = %f, want 54", v.LayerCenter())
	}
	if w, h := v.Size(); w != 72 || h != 72 {
		t.Errorf("Size() = %dx%d, want 72x72", w, h)
	}
	if v.HasShadow() {
		t.Error("default view should not paint a shadow")
	}
}

func TestWithDensity(t *testing.T) {
	tests := []struct {
		density    float64
		layer      int
		icon       int
		offset     int
		center     float64
		wantDensty float64
	}{
		{1.5, 162, 108, 27, 81, 1.5},
		{2, 216, 144, 36, 108, 2},
		{2.625, 284, 189, 47, 142, 2.625},
		{3, 324, 216, 54, 162, 3},
		{-1, 108, 72, 18, 54, 1}, // ignored
	}
	for _, tt := range tests {
		v := NewView(WithDensity(tt.density))
		if v.LayerSize() != tt.layer || v.IconSize() != tt.icon ||
			v.ViewportOffset() != tt.offset || v.LayerCenter() != tt.center {
			t.Errorf("density %v: got layer=%d icon=%d offset=%d center=%v, want %d %d %d %v",
				tt.density, v.LayerSize(), v.IconSize(), v.ViewportOffset(), v.LayerCenter(),
				tt.layer, tt.icon, tt.offset, tt.center)
		}
		if v.Density() != tt.wantDensty {
			t.Errorf("Density() = %v, want %v", v.Density(), tt.wantDensty)
		}
	}
}

func TestWithInsetFraction(t *testing.T) {
	v := NewView(WithInsetFraction(0))
	if v.IconSize() != v.LayerSize() || v.ViewportOffset() != 0 {
		t.Errorf("zero inset: icon=%d offset=%d, want icon=layer=%d and offset 0",
			v.IconSize(), v.ViewportOffset(), v.LayerSize())
	}
}

func TestWithShadow(t *testing.T) {
	tests := []struct {
		name  string
		color RGBA
		dy    float64
		want  bool
	}{
		{"visible", ARGB(0x40000000), 2, true},
		{"transparent color", Transparent, 2, false},
		{"zero offset", ARGB(0x40000000), 0, false},
		{"negative offset", ARGB(0x40000000), -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(WithShadow(tt.color, tt.dy))
			if v.HasShadow() != tt.want {
				t.Errorf("HasShadow() = %v, want %v", v.HasShadow(), tt.want)
			}
		})
	}
}

// TestWithInvalidator verifies that mutators route redraws through the
// configured invalidator.
func TestWithInvalidator(t *testing.T) {
	inv := &mockInvalidator{}
	v := NewView(WithInvalidator(inv))
	base := inv.posts

	v.SetCornerRadius(12)
	v.SetVelocityX(100)
	v.SetVelocityY(-100)
	v.SetScale(0.5)

	if got := inv.posts - base; got != 4 {
		t.Errorf("PostInvalidate called %d times, want 4", got)
	}

	// Factor writes only take effect on the next velocity or scale write.
	v.SetForegroundTranslateFactor(0.5)
	v.SetBackgroundScaleFactor(0.5)
	if got := inv.posts - base; got != 4 {
		t.Errorf("factor writes invalidated: %d posts, want 4", got)
	}
}
