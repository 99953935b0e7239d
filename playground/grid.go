// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package playground

import (
	"image"
	"slices"

	"github.com/gogpu/adaptive"
)

// Adapter binds icons to grid cells and remembers the values shared by
// every cell, so that cells bound later start in the same state.
type Adapter struct {
	icons []adaptive.Icon

	CornerRadius              float64
	VelocityX                 float64
	VelocityY                 float64
	Scale                     float64
	ForegroundTranslateFactor float64
	BackgroundTranslateFactor float64
	ForegroundScaleFactor     float64
	BackgroundScaleFactor     float64
}

// NewAdapter creates an adapter over icons with the default factors.
func NewAdapter(icons []adaptive.Icon, cornerRadius float64) *Adapter {
	return &Adapter{
		icons:                     slices.Clone(icons),
		CornerRadius:              cornerRadius,
		ForegroundTranslateFactor: adaptive.DefaultForegroundTranslateFactor,
		BackgroundTranslateFactor: adaptive.DefaultBackgroundTranslateFactor,
		ForegroundScaleFactor:     adaptive.DefaultForegroundScaleFactor,
		BackgroundScaleFactor:     adaptive.DefaultBackgroundScaleFactor,
	}
}

// Icons returns the number of distinct icons.
func (a *Adapter) Icons() int { return len(a.icons) }

// ItemCount returns the number of grid cells: every icon, repeated to fill
// at least MinItemCount cells.
func (a *Adapter) ItemCount() int {
	return max(len(a.icons), MinItemCount)
}

// Icon returns the icon shown at position, or nil without icons.
func (a *Adapter) Icon(position int) adaptive.Icon {
	if len(a.icons) == 0 || position < 0 {
		return nil
	}
	return a.icons[position%len(a.icons)]
}

// Bind shows the icon for position in v and copies the shared values onto
// it.
func (a *Adapter) Bind(v *adaptive.View, position int) {
	v.SetIcon(a.Icon(position))
	v.SetCornerRadius(a.CornerRadius)
	v.SetForegroundTranslateFactor(a.ForegroundTranslateFactor)
	v.SetBackgroundTranslateFactor(a.BackgroundTranslateFactor)
	v.SetForegroundScaleFactor(a.ForegroundScaleFactor)
	v.SetBackgroundScaleFactor(a.BackgroundScaleFactor)
	v.SetVelocityX(a.VelocityX)
	v.SetVelocityY(a.VelocityY)
	v.SetScale(a.Scale)
}

// Grid tracks the adapter and the views currently bound to it.
type Grid struct {
	adapter *Adapter
	views   []*adaptive.View
}

// Adapter returns the adapter, or nil before icons were loaded.
func (g *Grid) Adapter() *Adapter { return g.adapter }

// SetAdapter installs a and rebinds every attached view.
func (g *Grid) SetAdapter(a *Adapter) {
	g.adapter = a
	if a == nil {
		return
	}
	for i, v := range g.views {
		a.Bind(v, i)
	}
}

// Bind attaches v at position and binds it. A view already attached is
// rebound in place.
func (g *Grid) Bind(v *adaptive.View, position int) {
	if !slices.Contains(g.views, v) {
		g.views = append(g.views, v)
	}
	if g.adapter != nil {
		g.adapter.Bind(v, position)
	}
}

// Recycle detaches v; it no longer receives property changes.
func (g *Grid) Recycle(v *adaptive.View) {
	g.views = slices.DeleteFunc(g.views, func(w *adaptive.View) bool { return w == v })
}

// Views returns the attached views.
func (g *Grid) Views() []*adaptive.View { return g.views }

// apply runs onAdapter on the adapter and onView on every attached view.
// It does nothing before the adapter exists.
func (g *Grid) apply(onAdapter func(*Adapter), onView func(*adaptive.View)) {
	if g.adapter == nil {
		return
	}
	onAdapter(g.adapter)
	for _, v := range g.views {
		onView(v)
	}
}

// Orientation is the grid scroll direction. Drags feed the velocity of the
// matching axis.
type Orientation uint8

// Orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation { return o ^ 1 }

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Insets are per-side pixel offsets.
type Insets struct {
	Left, Top, Right, Bottom int
}

// CenteringOffsets returns the item offsets that center a spans×spans block
// of items of side itemSize inside a width×height container with padding.
func CenteringOffsets(spans, itemSize, width, height int, padding Insets) Insets {
	if spans <= 0 {
		return Insets{}
	}
	w := width - padding.Left - padding.Right
	h := height - padding.Top - padding.Bottom
	x := (w - spans*itemSize) / (2 * spans)
	y := (h - spans*itemSize) / (2 * spans)
	return Insets{Left: x, Top: y, Right: x, Bottom: y}
}

// CellRect returns the bounds of the item at index in a grid of spans
// lines laid out along o, before scrolling. A vertical grid fills rows of
// spans columns; a horizontal grid fills columns of spans rows.
func CellRect(index, spans, itemSize int, off Insets, o Orientation) image.Rectangle {
	if spans <= 0 {
		spans = 1
	}
	across, along := index%spans, index/spans
	col, row := across, along
	if o == Horizontal {
		col, row = along, across
	}
	cw := off.Left + itemSize + off.Right
	ch := off.Top + itemSize + off.Bottom
	x := col*cw + off.Left
	y := row*ch + off.Top
	return image.Rect(x, y, x+itemSize, y+itemSize)
}
