// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

// Icon is an adaptive icon: two full-bleed layers that are masked and moved
// independently by the View.
//
// Either layer may be nil, in which case it renders transparent.
type Icon interface {
	Label() string
	Foreground() Drawable
	Background() Drawable
}

// AdaptiveIcon is the plain Icon implementation.
type AdaptiveIcon struct {
	label      string
	foreground Drawable
	background Drawable
}

// NewAdaptiveIcon creates an icon from its two layers.
func NewAdaptiveIcon(label string, foreground, background Drawable) *AdaptiveIcon {
	return &AdaptiveIcon{
		label:      label,
		foreground: foreground,
		background: background,
	}
}

// Label returns the icon's display name. A nil icon has no label and no
// layers.
func (i *AdaptiveIcon) Label() string {
	if i == nil {
		return ""
	}
	return i.label
}

// Foreground returns the foreground layer.
func (i *AdaptiveIcon) Foreground() Drawable {
	if i == nil {
		return nil
	}
	return i.foreground
}

// Background returns the background layer.
func (i *AdaptiveIcon) Background() Drawable {
	if i == nil {
		return nil
	}
	return i.background
}
