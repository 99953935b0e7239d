// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package velocity estimates pointer velocity from a stream of positions.
//
// The estimator fits a quadratic to the recent samples of each axis by least
// squares and reports the slope of the fit at the newest sample. This is
// resilient to the jitter of touch digitizers while still following
// acceleration through a fling.
package velocity

import (
	"math"
	"time"
)

const (
	// historySize is the maximum number of samples kept.
	historySize = 20

	// horizon is how far back samples contribute to the estimate.
	horizon = 100 * time.Millisecond

	// stoppedTime is the gap after which the pointer is assumed to have
	// stopped and the history is discarded.
	stoppedTime = 40 * time.Millisecond

	// degree of the fitted polynomial.
	degree = 2
)

type sample struct {
	t    time.Time
	x, y float64
}

// Tracker accumulates pointer samples and computes velocity on demand.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	samples []sample
	vx, vy  float64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{samples: make([]sample, 0, historySize)}
}

// Clear discards all samples and the last computed velocity.
func (tr *Tracker) Clear() {
	tr.samples = tr.samples[:0]
	tr.vx, tr.vy = 0, 0
}

// AddMovement records the pointer at (x, y) at time t.
//
// Samples must arrive in time order; an older sample replaces the history.
// A gap longer than 40ms also starts a new history.
func (tr *Tracker) AddMovement(t time.Time, x, y float64) {
	if n := len(tr.samples); n > 0 {
		last := tr.samples[n-1].t
		if t.Before(last) || t.Sub(last) >= stoppedTime {
			tr.samples = tr.samples[:0]
		}
	}
	if len(tr.samples) == historySize {
		copy(tr.samples, tr.samples[1:])
		tr.samples = tr.samples[:historySize-1]
	}
	tr.samples = append(tr.samples, sample{t: t, x: x, y: y})
}

// Len returns the number of samples in the history.
func (tr *Tracker) Len() int { return len(tr.samples) }

// ComputeCurrentVelocity estimates velocity in pixels per units
// milliseconds; 1000 gives pixels per second. The result is read with
// XVelocity and YVelocity.
func (tr *Tracker) ComputeCurrentVelocity(units int) {
	tr.vx, tr.vy = 0, 0
	n := len(tr.samples)
	if n < 2 || units <= 0 {
		return
	}

	newest := tr.samples[n-1].t
	ts := make([]float64, 0, n)
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := n - 1; i >= 0; i-- {
		s := tr.samples[i]
		age := newest.Sub(s.t)
		if age > horizon {
			break
		}
		// Seconds relative to the newest sample, so the fit's linear
		// coefficient is the velocity now.
		ts = append(ts, -age.Seconds())
		xs = append(xs, s.x)
		ys = append(ys, s.y)
	}
	if len(ts) < 2 {
		return
	}

	d := min(degree, len(ts)-1)
	scale := float64(units) / 1000
	if bx, ok := fitSlope(ts, xs, d); ok {
		tr.vx = bx * scale
	}
	if by, ok := fitSlope(ts, ys, d); ok {
		tr.vy = by * scale
	}
}

// XVelocity returns the horizontal velocity from the last
// ComputeCurrentVelocity.
func (tr *Tracker) XVelocity() float64 { return tr.vx }

// YVelocity returns the vertical velocity from the last
// ComputeCurrentVelocity.
func (tr *Tracker) YVelocity() float64 { return tr.vy }

// fitSlope fits a polynomial of degree d to (ts, vs) by least squares and
// returns its first-order coefficient.
func fitSlope(ts, vs []float64, d int) (float64, bool) {
	m := d + 1
	// Normal equations: (AᵀA) b = Aᵀv, with A[i][j] = t_i^j.
	var ata [degree + 1][degree + 1]float64
	var atv [degree + 1]float64
	for i, t := range ts {
		var pow [2*degree + 1]float64
		pow[0] = 1
		for k := 1; k < 2*m-1; k++ {
			pow[k] = pow[k-1] * t
		}
		for r := 0; r < m; r++ {
			atv[r] += pow[r] * vs[i]
			for c := 0; c < m; c++ {
				ata[r][c] += pow[r+c]
			}
		}
	}

	// Gaussian elimination with partial pivoting.
	for col := 0; col < m; col++ {
		p := col
		for r := col + 1; r < m; r++ {
			if math.Abs(ata[r][col]) > math.Abs(ata[p][col]) {
				p = r
			}
		}
		if math.Abs(ata[p][col]) < 1e-18 {
			return 0, false
		}
		ata[col], ata[p] = ata[p], ata[col]
		atv[col], atv[p] = atv[p], atv[col]
		for r := col + 1; r < m; r++ {
			f := ata[r][col] / ata[col][col]
			for c := col; c < m; c++ {
				ata[r][c] -= f * ata[col][c]
			}
			atv[r] -= f * atv[col]
		}
	}
	var b [degree + 1]float64
	for r := m - 1; r >= 0; r-- {
		sum := atv[r]
		for c := r + 1; c < m; c++ {
			sum -= ata[r][c] * b[c]
		}
		b[r] = sum / ata[r][r]
	}
	return b[1], true
}
