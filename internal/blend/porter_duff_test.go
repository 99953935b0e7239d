// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "testing"

func TestMulDiv255Identity(t *testing.T) {
	for s := 0; s <= 255; s++ {
		if got := MulDiv255(byte(s), 255); got != byte(s) {
			t.Fatalf("MulDiv255(%d, 255) = %d, want %d", s, got, s)
		}
		if got := MulDiv255(byte(s), 0); got != 0 {
			t.Fatalf("MulDiv255(%d, 0) = %d, want 0", s, got)
		}
	}
}

func TestMulDiv255CloseToExact(t *testing.T) {
	for a := 0; a <= 255; a += 5 {
		for b := 0; b <= 255; b += 5 {
			fast := int(MulDiv255(byte(a), byte(b)))
			exact := int(mulDiv255Exact(byte(a), byte(b)))
			if d := fast - exact; d < -1 || d > 1 {
				t.Errorf("MulDiv255(%d, %d) = %d, exact %d", a, b, fast, exact)
			}
		}
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{"opaque replaces", [4]byte{10, 20, 30, 255}, [4]byte{200, 200, 200, 255}, [4]byte{10, 20, 30, 255}},
		{"transparent keeps", [4]byte{0, 0, 0, 0}, [4]byte{200, 100, 50, 255}, [4]byte{200, 100, 50, 255}},
		{"over empty", [4]byte{64, 0, 0, 128}, [4]byte{0, 0, 0, 0}, [4]byte{64, 0, 0, 128}},
		{"half over opaque", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 254, 255}, [4]byte{128, 0, 127, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestSourceOverCoverage(t *testing.T) {
	t.Run("zero coverage", func(t *testing.T) {
		dst := []byte{1, 2, 3, 4}
		SourceOverCoverage(dst, 255, 255, 255, 255, 0)
		if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 || dst[3] != 4 {
			t.Errorf("dst modified: %v", dst)
		}
	})
	t.Run("full coverage opaque", func(t *testing.T) {
		dst := []byte{1, 2, 3, 4}
		SourceOverCoverage(dst, 9, 8, 7, 255, 255)
		if dst[0] != 9 || dst[1] != 8 || dst[2] != 7 || dst[3] != 255 {
			t.Errorf("dst = %v, want [9 8 7 255]", dst)
		}
	})
	t.Run("partial coverage", func(t *testing.T) {
		dst := []byte{0, 0, 0, 0}
		SourceOverCoverage(dst, 255, 255, 255, 255, 128)
		if dst[3] != 128 {
			t.Errorf("alpha = %d, want 128", dst[3])
		}
	})
}
