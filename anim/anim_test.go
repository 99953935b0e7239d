// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/adaptive"
)

const frame = 16 * time.Millisecond

// run drives sch until it is idle or maxFrames elapse, returning the number
// of frames run.
func run(t *testing.T, ch *adaptive.Choreographer, start time.Time, maxFrames int) int {
	t.Helper()
	now := start
	for i := 0; i < maxFrames; i++ {
		if !ch.HasWork() {
			return i
		}
		ch.DoFrame(now)
		now = now.Add(frame)
	}
	return maxFrames
}

func TestFastOutSlowIn(t *testing.T) {
	if FastOutSlowIn(0) != 0 || FastOutSlowIn(1) != 1 {
		t.Fatalf("endpoints = %v, %v, want 0, 1", FastOutSlowIn(0), FastOutSlowIn(1))
	}
	prev := 0.0
	for i := 1; i <= 1000; i++ {
		x := float64(i) / 1000
		y := FastOutSlowIn(x)
		if y < prev-1e-9 {
			t.Fatalf("not monotonic at %v: %v < %v", x, y, prev)
		}
		prev = y
	}
	// Fast out: ahead of linear in the middle.
	if y := FastOutSlowIn(0.5); y <= 0.5 {
		t.Errorf("FastOutSlowIn(0.5) = %v, want > 0.5", y)
	}
}

func TestCubicBezierLinear(t *testing.T) {
	lin := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := lin(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("linear bezier(%v) = %v", x, got)
		}
	}
	if lin(-1) != 0 || lin(2) != 1 {
		t.Error("out-of-range inputs should clamp")
	}
}

func TestTweenReachesTargetAtDuration(t *testing.T) {
	ch := adaptive.NewChoreographer()
	v := &Value{V: 10}
	ended := 0
	tw := NewTween(v, 36, 200*time.Millisecond).OnEnd(func(canceled bool) {
		if canceled {
			t.Error("tween reported cancel")
		}
		ended++
	})
	tw.Start(ch)
	if !tw.IsRunning() {
		t.Fatal("tween not running after Start")
	}

	start := time.Unix(100, 0)
	ch.DoFrame(start)
	if v.V != 10 {
		t.Errorf("first frame value = %v, want start value 10", v.V)
	}
	ch.DoFrame(start.Add(100 * time.Millisecond))
	if v.V <= 10 || v.V >= 36 {
		t.Errorf("mid value = %v, want in (10, 36)", v.V)
	}
	ch.DoFrame(start.Add(200 * time.Millisecond))
	if v.V != 36 {
		t.Errorf("final value = %v, want exactly 36", v.V)
	}
	if tw.IsRunning() || ended != 1 {
		t.Errorf("IsRunning() = %v, ended = %d, want false and 1", tw.IsRunning(), ended)
	}
	if ch.HasWork() {
		t.Error("finished tween still scheduled")
	}
}

func TestTweenValueAt(t *testing.T) {
	tw := NewTween(&Value{}, 36, 200*time.Millisecond).SetInterpolator(Linear)
	tw.Start(adaptive.NewChoreographer())
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Millisecond, 0},
		{0, 0},
		{50 * time.Millisecond, 9},
		{100 * time.Millisecond, 18},
		{200 * time.Millisecond, 36},
		{time.Second, 36},
	}
	for _, tt := range tests {
		if got := tw.ValueAt(tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestTweenCancelAndRestart(t *testing.T) {
	ch := adaptive.NewChoreographer()
	v := &Value{}
	var canceled bool
	tw := NewTween(v, 100, time.Second).SetInterpolator(Linear).OnEnd(func(c bool) { canceled = c })
	tw.Start(ch)
	start := time.Unix(0, 0)
	ch.DoFrame(start)
	ch.DoFrame(start.Add(500 * time.Millisecond))

	tw.Cancel()
	if !canceled || tw.IsRunning() {
		t.Fatalf("Cancel: canceled=%v running=%v", canceled, tw.IsRunning())
	}
	held := v.V

	// Restarting before the scheduler drops the callback must not double-register.
	tw.Start(ch)
	if ch.Callbacks() != 1 {
		t.Fatalf("Callbacks() = %d after restart, want 1", ch.Callbacks())
	}
	if tw.From() != held {
		t.Errorf("From() = %v, want %v", tw.From(), held)
	}
	frames := run(t, ch, start.Add(time.Second), 200)
	if v.V != 100 {
		t.Errorf("restarted tween ended at %v, want 100", v.V)
	}
	if frames >= 200 {
		t.Error("restarted tween never finished")
	}
}

func TestCornerRadiusAnimationDrivesView(t *testing.T) {
	ch := adaptive.NewChoreographer()
	view := adaptive.NewView(adaptive.WithInvalidator(ch))
	radius := NewProperty(view.CornerRadius, view.SetCornerRadius)
	tw := NewTween(radius, 36, 200*time.Millisecond)
	tw.Start(ch)

	start := time.Unix(0, 0)
	for ms := 0; ms <= 208; ms += 16 {
		at := start.Add(time.Duration(ms) * time.Millisecond)
		if drawn := ch.DoFrame(at); drawn != 1 {
			t.Fatalf("frame at %dms drew %d views, want 1", ms, drawn)
		}
		want := tw.ValueAt(time.Duration(ms) * time.Millisecond)
		if view.CornerRadius() != want {
			t.Errorf("at %dms radius = %v, want %v", ms, view.CornerRadius(), want)
		}
	}
	if view.CornerRadius() != 36 {
		t.Errorf("final radius = %v, want 36", view.CornerRadius())
	}
}

func TestSpringSettlesAtFinalPosition(t *testing.T) {
	ch := adaptive.NewChoreographer()
	writes := 0
	var last float64
	p := NewProperty(func() float64 { return 0 }, func(v float64) {
		writes++
		last = v
	})

	ended := false
	sp := NewSpring(p, 0).SetStartVelocity(4000).OnEnd(func(canceled bool) { ended = !canceled })
	sp.Start(ch)

	frames := run(t, ch, time.Unix(0, 0), 1000)
	if frames >= 1000 {
		t.Fatal("spring did not settle within 1000 frames")
	}
	if !ended || sp.IsRunning() {
		t.Errorf("ended=%v running=%v, want settled", ended, sp.IsRunning())
	}
	if last != 0 {
		t.Errorf("final write = %v, want exactly 0", last)
	}
	// One write per frame: the start frame plus every stepping frame.
	if writes != frames {
		t.Errorf("writes = %d, frames = %d, want one write per frame", writes, frames)
	}
}

func TestSpringOvershootsWhenUnderdamped(t *testing.T) {
	ch := adaptive.NewChoreographer()
	v := &Value{V: 1000}
	sp := NewSpring(v, 0).SetDampingRatio(MinDampingRatio).SetStiffness(DefaultStiffness)
	sp.Start(ch)

	minSeen := v.V
	now := time.Unix(0, 0)
	for i := 0; i < 200 && ch.HasWork(); i++ {
		ch.DoFrame(now)
		now = now.Add(frame)
		minSeen = math.Min(minSeen, v.V)
	}
	if minSeen >= 0 {
		t.Errorf("lightly damped spring never crossed 0, min = %v", minSeen)
	}
}

func TestSpringCriticallyDampedDoesNotOvershoot(t *testing.T) {
	ch := adaptive.NewChoreographer()
	v := &Value{V: 1000}
	NewSpring(v, 0).SetDampingRatio(1).Start(ch)

	now := time.Unix(0, 0)
	for i := 0; i < 500 && ch.HasWork(); i++ {
		ch.DoFrame(now)
		now = now.Add(frame)
		if v.V < -DefaultValueThreshold {
			t.Fatalf("critically damped spring overshot to %v", v.V)
		}
	}
	if v.V != 0 {
		t.Errorf("final value = %v, want 0", v.V)
	}
}

func TestSpringSetters(t *testing.T) {
	sp := NewSpring(&Value{}, 0)
	if sp.Stiffness() != DefaultStiffness || sp.DampingRatio() != DefaultDampingRatio {
		t.Errorf("defaults = %v, %v", sp.Stiffness(), sp.DampingRatio())
	}
	sp.SetStiffness(-1).SetDampingRatio(-1).SetValueThreshold(0)
	if sp.Stiffness() != DefaultStiffness || sp.DampingRatio() != DefaultDampingRatio {
		t.Errorf("invalid values accepted: %v, %v", sp.Stiffness(), sp.DampingRatio())
	}
	sp.SetStiffness(MinStiffness).SetDampingRatio(MinDampingRatio)
	if sp.Stiffness() != MinStiffness || sp.DampingRatio() != MinDampingRatio {
		t.Errorf("minima rejected: %v, %v", sp.Stiffness(), sp.DampingRatio())
	}
}

func TestSpringCancel(t *testing.T) {
	ch := adaptive.NewChoreographer()
	v := &Value{V: 50}
	var canceled bool
	sp := NewSpring(v, 0).OnEnd(func(c bool) { canceled = c })
	sp.Start(ch)
	ch.DoFrame(time.Unix(0, 0))
	ch.DoFrame(time.Unix(0, int64(frame)))
	held := v.V

	sp.Cancel()
	ch.DoFrame(time.Unix(0, int64(2*frame)))
	if !canceled || sp.IsRunning() || ch.HasWork() {
		t.Errorf("cancel: canceled=%v running=%v scheduled=%v", canceled, sp.IsRunning(), ch.HasWork())
	}
	if v.V != held {
		t.Errorf("value moved after cancel: %v -> %v", held, v.V)
	}
}
