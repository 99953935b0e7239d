// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults and limits.
const (
	// DefaultStiffness is the spring constant for unit mass.
	DefaultStiffness = 500.0

	// MinStiffness is the lowest stiffness the playground exposes.
	MinStiffness = 50.0

	// DefaultDampingRatio gives a visibly bouncy release.
	DefaultDampingRatio = 0.3

	// MinDampingRatio is the lowest damping ratio the playground exposes.
	MinDampingRatio = 0.05

	// DefaultValueThreshold is the distance from the final position below
	// which the spring may settle: three quarters of one visible unit.
	DefaultValueThreshold = 0.75

	// velocityThresholdMultiplier converts the value threshold into the
	// velocity below which the spring may settle.
	velocityThresholdMultiplier = 62.5

	// stepFPS is the fixed integration rate. Frames are sub-stepped at this
	// rate so the result does not depend on the display refresh rate.
	stepFPS = 240
)

// Spring drives a property toward a final position with a damped harmonic
// oscillator. Every frame writes the property.
//
// The spring settles when it is within the value threshold of the final
// position and slower than 62.5 times that threshold per second; the final
// position is then written exactly.
type Spring struct {
	prop      Property
	final     float64
	stiffness float64
	damping   float64
	threshold float64

	startVelocity float64
	pos, vel      float64
	step          harmonica.Spring
	dt            time.Duration
	remainder     time.Duration

	running   bool
	scheduled bool
	started   bool
	last      time.Time
	onEnd     func(canceled bool)
}

// NewSpring creates a spring that moves p toward final with the default
// stiffness and damping ratio.
func NewSpring(p Property, final float64) *Spring {
	return &Spring{
		prop:      p,
		final:     final,
		stiffness: DefaultStiffness,
		damping:   DefaultDampingRatio,
		threshold: DefaultValueThreshold,
		dt:        time.Second / stepFPS,
	}
}

// SetStiffness sets the spring constant. Non-positive values are ignored.
func (s *Spring) SetStiffness(k float64) *Spring {
	if k > 0 {
		s.stiffness = k
	}
	return s
}

// Stiffness returns the spring constant.
func (s *Spring) Stiffness() float64 { return s.stiffness }

// SetDampingRatio sets the damping ratio; 1 is critically damped.
// Negative values are ignored.
func (s *Spring) SetDampingRatio(r float64) *Spring {
	if r >= 0 {
		s.damping = r
	}
	return s
}

// DampingRatio returns the damping ratio.
func (s *Spring) DampingRatio() float64 { return s.damping }

// SetValueThreshold sets the settle distance. Non-positive values are
// ignored.
func (s *Spring) SetValueThreshold(t float64) *Spring {
	if t > 0 {
		s.threshold = t
	}
	return s
}

// SetStartVelocity sets the velocity, in property units per second, the
// next Start begins with.
func (s *Spring) SetStartVelocity(v float64) *Spring {
	s.startVelocity = v
	return s
}

// OnEnd registers fn to run once when the spring settles or is canceled.
func (s *Spring) OnEnd(fn func(canceled bool)) *Spring {
	s.onEnd = fn
	return s
}

// Start reads the property's current value and schedules the spring.
func (s *Spring) Start(sch Scheduler) {
	s.pos = s.prop.Get()
	s.vel = s.startVelocity
	s.remainder = 0
	s.started = false
	s.step = harmonica.NewSpring(s.dt.Seconds(), math.Sqrt(s.stiffness), s.damping)
	s.running = true
	if !s.scheduled {
		s.scheduled = true
		sch.PostFrameCallback(s)
	}
}

// Cancel stops the spring where it is. The property keeps its last value.
func (s *Spring) Cancel() {
	if !s.running {
		return
	}
	s.running = false
	if s.onEnd != nil {
		s.onEnd(true)
	}
}

// IsRunning reports whether the spring is moving.
func (s *Spring) IsRunning() bool { return s.running }

// Position returns the current spring position.
func (s *Spring) Position() float64 { return s.pos }

// Velocity returns the current spring velocity in units per second.
func (s *Spring) Velocity() float64 { return s.vel }

// DoFrame implements adaptive.FrameCallback.
func (s *Spring) DoFrame(now time.Time) bool {
	if !s.running {
		s.scheduled = false
		return false
	}
	if !s.started {
		s.started = true
		s.last = now
		s.prop.Set(s.pos)
		return true
	}

	elapsed := now.Sub(s.last) + s.remainder
	s.last = now
	for ; elapsed >= s.dt; elapsed -= s.dt {
		s.pos, s.vel = s.step.Update(s.pos, s.vel, s.final)
		if s.atEquilibrium() {
			s.pos, s.vel = s.final, 0
			s.prop.Set(s.pos)
			s.running = false
			s.scheduled = false
			if s.onEnd != nil {
				s.onEnd(false)
			}
			return false
		}
	}
	s.remainder = elapsed
	s.prop.Set(s.pos)
	return true
}

func (s *Spring) atEquilibrium() bool {
	return math.Abs(s.vel) < s.threshold*velocityThresholdMultiplier &&
		math.Abs(s.pos-s.final) < s.threshold
}
