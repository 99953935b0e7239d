// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "time"

// Tween animates a property from its value at start to a target value over
// a fixed duration.
//
// The first frame after Start writes the start value; the frame at or after
// the duration writes the target exactly and finishes the tween.
type Tween struct {
	prop     Property
	to       float64
	from     float64
	duration time.Duration
	interp   Interpolator

	running   bool
	scheduled bool
	started   bool
	begin     time.Time
	onEnd     func(canceled bool)
}

// NewTween creates a tween of p toward to. The interpolator defaults to
// FastOutSlowIn.
func NewTween(p Property, to float64, duration time.Duration) *Tween {
	return &Tween{
		prop:     p,
		to:       to,
		duration: duration,
		interp:   FastOutSlowIn,
	}
}

// SetInterpolator replaces the easing curve. nil restores Linear.
func (t *Tween) SetInterpolator(i Interpolator) *Tween {
	if i == nil {
		i = Linear
	}
	t.interp = i
	return t
}

// OnEnd registers fn to run once when the tween finishes or is canceled.
func (t *Tween) OnEnd(fn func(canceled bool)) *Tween {
	t.onEnd = fn
	return t
}

// Start captures the current property value and schedules the tween.
// Starting a running tween restarts it from the current value.
func (t *Tween) Start(s Scheduler) {
	t.from = t.prop.Get()
	t.started = false
	t.running = true
	if !t.scheduled {
		t.scheduled = true
		s.PostFrameCallback(t)
	}
}

// Cancel stops the tween where it is. The property keeps its last value.
func (t *Tween) Cancel() {
	if !t.running {
		return
	}
	t.running = false
	t.finish(true)
}

// IsRunning reports whether the tween is scheduled.
func (t *Tween) IsRunning() bool { return t.running }

// From returns the value captured by Start.
func (t *Tween) From() float64 { return t.from }

// To returns the target value.
func (t *Tween) To() float64 { return t.to }

// ValueAt returns the property value the tween writes after elapsed time.
func (t *Tween) ValueAt(elapsed time.Duration) float64 {
	if t.duration <= 0 || elapsed >= t.duration {
		return t.to
	}
	if elapsed <= 0 {
		return t.from
	}
	f := t.interp(float64(elapsed) / float64(t.duration))
	return t.from + (t.to-t.from)*f
}

// DoFrame implements adaptive.FrameCallback.
func (t *Tween) DoFrame(now time.Time) bool {
	if !t.running {
		t.scheduled = false
		return false
	}
	if !t.started {
		t.started = true
		t.begin = now
	}
	elapsed := now.Sub(t.begin)
	t.prop.Set(t.ValueAt(elapsed))
	if elapsed >= t.duration {
		t.running = false
		t.scheduled = false
		t.finish(false)
		return false
	}
	return true
}

func (t *Tween) finish(canceled bool) {
	if t.onEnd != nil {
		t.onEnd(canceled)
	}
}
