// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package playground

import "github.com/gogpu/adaptive"

// Decor is the backdrop the grid is shown over.
type Decor uint8

// Decors in cycling order.
const (
	Wallpaper Decor = iota
	Light
	Dusk
	Dark

	decorCount
)

var decorNames = [decorCount]string{"Wallpaper", "Light", "Dusk", "Dark"}

// String returns the decor name.
func (d Decor) String() string {
	if d < decorCount {
		return decorNames[d]
	}
	return "Decor(?)"
}

// Next returns the decor after d, wrapping after Dark.
func (d Decor) Next() Decor {
	return (d%decorCount + 1) % decorCount
}

// StatusColor returns the color of the translucent status bar.
func (d Decor) StatusColor() adaptive.RGBA {
	switch d % decorCount {
	case Light, Dusk:
		return adaptive.ARGB(0xb3eeeeee)
	default:
		return adaptive.ARGB(0x99000000)
	}
}

// DarkStatusIcons reports whether status bar content should be dark to
// stay legible over the decor.
func (d Decor) DarkStatusIcons() bool {
	switch d % decorCount {
	case Light, Dusk:
		return true
	default:
		return false
	}
}

// Background returns the drawable painted behind the grid.
func (d Decor) Background() adaptive.Drawable {
	var from, to string
	switch d % decorCount {
	case Light:
		from, to = "#fafafa", "#e0e0e0"
	case Dusk:
		from, to = "#ffcc80", "#8e5b9f"
	case Dark:
		from, to = "#303030", "#121212"
	default:
		from, to = "#4db6ac", "#1a237e"
	}
	return adaptive.GradientDrawable{
		Orientation: adaptive.GradientDiagonal,
		Start:       adaptive.Hex(from),
		End:         adaptive.Hex(to),
	}
}
