// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "testing"

// checker returns a 4x4 pixmap whose left two columns are opaque white and
// right two columns transparent.
func checker() *Pixmap {
	pm := NewPixmap(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			pm.SetPixelPremul(x, y, 255, 255, 255, 255)
		}
	}
	return pm
}

func TestNewBitmapShaderNil(t *testing.T) {
	if s := NewBitmapShader(nil, TileClamp); s != nil {
		t.Errorf("NewBitmapShader(nil) = %v, want nil", s)
	}
}

func TestBitmapShaderIdentityIsExact(t *testing.T) {
	s := NewBitmapShader(checker(), TileClamp)
	for x := 0; x < 4; x++ {
		_, _, _, a := s.Sample(float64(x)+0.5, 1.5)
		want := uint8(0)
		if x < 2 {
			want = 255
		}
		if a != want {
			t.Errorf("Sample(%d.5) alpha = %d, want %d", x, a, want)
		}
	}
}

func TestBitmapShaderBilinear(t *testing.T) {
	s := NewBitmapShader(checker(), TileClamp)
	// Half-way between texel 1 (white) and texel 2 (transparent).
	r, _, _, a := s.Sample(2.0, 1.5)
	if a != 128 || r != 128 {
		t.Errorf("midpoint sample = (r=%d, a=%d), want 128", r, a)
	}
}

func TestBitmapShaderTileModes(t *testing.T) {
	tests := []struct {
		name   string
		tile   TileMode
		x      float64
		wantA  uint8
		wantOK string
	}{
		{"clamp left", TileClamp, -10, 255, "edge column repeats"},
		{"clamp right", TileClamp, 50, 0, "edge column repeats"},
		{"decal left", TileDecal, -10, 0, "outside is transparent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBitmapShader(checker(), tt.tile)
			if _, _, _, a := s.Sample(tt.x, 1.5); a != tt.wantA {
				t.Errorf("Sample(%v) alpha = %d, want %d (%s)", tt.x, a, tt.wantA, tt.wantOK)
			}
		})
	}
}

func TestBitmapShaderLocalMatrix(t *testing.T) {
	s := NewBitmapShader(checker(), TileDecal)
	s.SetLocalMatrix(Translate(2, 0))
	if got := s.LocalMatrix(); got != Translate(2, 0) {
		t.Errorf("LocalMatrix() = %+v", got)
	}
	// Bitmap texel 0 now appears at shader x 2.
	if _, _, _, a := s.Sample(2.5, 1.5); a != 255 {
		t.Errorf("translated sample alpha = %d, want 255", a)
	}
	if _, _, _, a := s.Sample(0.5, 1.5); a != 0 {
		t.Errorf("uncovered sample alpha = %d, want 0", a)
	}

	// Scaling by 2 about the origin doubles the white band.
	s.SetLocalMatrix(Scale(2, 2))
	if _, _, _, a := s.Sample(3.0, 3.0); a != 255 {
		t.Errorf("scaled sample alpha = %d, want 255", a)
	}
}

func TestTileModeString(t *testing.T) {
	if TileClamp.String() != "Clamp" || TileDecal.String() != "Decal" || TileMode(9).String() != "Unknown" {
		t.Error("unexpected TileMode strings")
	}
}
