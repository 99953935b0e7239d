// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "testing"

func TestShapeBuilderClosesSubpaths(t *testing.T) {
	s := NewShape().MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).MoveTo(0, 0).LineTo(0, 1)
	// move, line, line, close, move, line
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
	s.Close().Close()
	if s.Len() != 7 {
		t.Errorf("double Close should add one op, Len() = %d", s.Len())
	}
}

func TestShapeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		shape *Shape
		want  int
	}{
		{"circle", Circle(0.5, 0.5, 0.5), 6},
		{"square", RoundedRect(0, 0, 1, 1, 0), 5},
		{"rounded", RoundedRect(0, 0, 1, 1, 0.2), 10},
		{"triangle", Polygon(0.5, 0.5, 0.4, 3, 0), 4},
		{"degenerate polygon", Polygon(0.5, 0.5, 0.4, 2, 0), 0},
		{"star", Star(0.5, 0.5, 0.4, 0.2, 5, 0), 11},
		{"degenerate star", Star(0.5, 0.5, 0.4, 0.2, 1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPolygonFirstVertexUp(t *testing.T) {
	pm := NewPixmap(100, 100)
	ShapeDrawable{Shape: Polygon(0.5, 0.5, 0.45, 3, 0), Color: White}.Draw(pm, pm.Bounds())

	// Apex at the top center, flat base at the bottom.
	if a := alphaAt(pm, 50, 10); a == 0 {
		t.Error("triangle apex should be covered")
	}
	if a := alphaAt(pm, 10, 10); a != 0 {
		t.Errorf("top-left corner alpha = %d, want 0", a)
	}
	if a := alphaAt(pm, 20, 70); a != 255 {
		t.Errorf("base interior alpha = %d, want 255", a)
	}
}
