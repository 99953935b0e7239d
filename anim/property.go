// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "github.com/gogpu/adaptive"

// Property is an animatable float value.
//
// Set is called on every animation frame; implementations apply the value
// immediately, typically by calling a View setter that invalidates.
type Property interface {
	Get() float64
	Set(v float64)
}

// FuncProperty adapts a getter and setter pair to Property.
type FuncProperty struct {
	GetFunc func() float64
	SetFunc func(float64)
}

// NewProperty creates a Property from a getter and setter.
// A nil getter reads as zero.
func NewProperty(get func() float64, set func(float64)) *FuncProperty {
	return &FuncProperty{GetFunc: get, SetFunc: set}
}

// Get implements Property.
func (p *FuncProperty) Get() float64 {
	if p.GetFunc == nil {
		return 0
	}
	return p.GetFunc()
}

// Set implements Property.
func (p *FuncProperty) Set(v float64) {
	if p.SetFunc != nil {
		p.SetFunc(v)
	}
}

// Value is a plain stored property, useful as an animation target that
// other code polls.
type Value struct {
	V float64
}

// Get implements Property.
func (p *Value) Get() float64 { return p.V }

// Set implements Property.
func (p *Value) Set(v float64) { p.V = v }

// Scheduler runs frame callbacks. *adaptive.Choreographer implements it.
type Scheduler interface {
	PostFrameCallback(cb adaptive.FrameCallback)
}
