// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "time"

// FrameCallback is run once per frame by a Choreographer.
// DoFrame returns false when the callback has finished and should be
// removed.
type FrameCallback interface {
	DoFrame(now time.Time) bool
}

// FrameCallbackFunc adapts a function to FrameCallback.
type FrameCallbackFunc func(now time.Time) bool

// DoFrame implements FrameCallback.
func (f FrameCallbackFunc) DoFrame(now time.Time) bool { return f(now) }

// Choreographer coalesces redraw requests into frames.
//
// Views posted any number of times between two frames are drawn once.
// Animation callbacks run before drawing, so every value they write in a
// frame is visible in that frame's output.
//
// A Choreographer is not safe for concurrent use.
type Choreographer struct {
	pending   []*View
	queued    map[*View]struct{}
	callbacks []FrameCallback
	frames    uint64
}

// NewChoreographer creates an idle frame scheduler.
func NewChoreographer() *Choreographer {
	return &Choreographer{
		queued: make(map[*View]struct{}),
	}
}

// PostInvalidate implements Invalidator.
func (c *Choreographer) PostInvalidate(v *View) {
	if v == nil {
		return
	}
	if _, ok := c.queued[v]; ok {
		return
	}
	c.queued[v] = struct{}{}
	c.pending = append(c.pending, v)
}

// PostFrameCallback registers cb to run on every frame until it reports
// that it has finished.
func (c *Choreographer) PostFrameCallback(cb FrameCallback) {
	if cb != nil {
		c.callbacks = append(c.callbacks, cb)
	}
}

// HasWork reports whether the next frame would run a callback or draw a
// view.
func (c *Choreographer) HasWork() bool {
	return len(c.pending) > 0 || len(c.callbacks) > 0
}

// Callbacks returns the number of registered frame callbacks.
func (c *Choreographer) Callbacks() int { return len(c.callbacks) }

// Frames returns the number of frames run so far.
func (c *Choreographer) Frames() uint64 { return c.frames }

// DoFrame runs one frame at time now: animation callbacks first, then one
// Render of every view invalidated since the previous frame. It returns
// the number of views drawn.
func (c *Choreographer) DoFrame(now time.Time) int {
	c.frames++

	// Callbacks may post new callbacks; those start on the next frame.
	running := c.callbacks
	c.callbacks = nil
	for _, cb := range running {
		if cb.DoFrame(now) {
			c.callbacks = append(c.callbacks, cb)
		}
	}

	views := c.pending
	c.pending = nil
	clear(c.queued)
	for _, v := range views {
		v.Render()
	}

	if len(views) > 0 {
		Logger().Debug("adaptive: frame", "frame", c.frames, "views", len(views), "callbacks", len(c.callbacks))
	}
	return len(views)
}
