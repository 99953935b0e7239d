// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim animates float properties frame by frame.
//
// Two drivers are provided:
//   - Tween moves a property to a target over a fixed duration along an
//     Interpolator curve, the way a property animator does
//   - Spring moves a property to a final position with a damped harmonic
//     oscillator integrated by github.com/charmbracelet/harmonica
//
// Both register themselves with a Scheduler, normally the
// adaptive.Choreographer that also draws the views, so every value written
// in a frame is composited in that same frame.
//
// Example:
//
//	ch := adaptive.NewChoreographer()
//	radius := anim.NewProperty(view.CornerRadius, view.SetCornerRadius)
//	anim.NewTween(radius, 36, 200*time.Millisecond).Start(ch)
package anim
