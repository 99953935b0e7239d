// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package playground

import (
	"math"
	"time"

	"github.com/gogpu/adaptive"
	"github.com/gogpu/adaptive/anim"
	"github.com/gogpu/adaptive/velocity"
)

// Controller owns the playground state and turns input into property
// changes on every grid view.
//
// A Controller is not safe for concurrent use; call it from the goroutine
// that runs the Choreographer.
type Controller struct {
	cfg     Config
	frames  *adaptive.Choreographer
	layers  *adaptive.LayerCache
	grid    Grid
	tracker *velocity.Tracker

	corners     []float64
	corner      int
	decor       Decor
	orientation Orientation

	stiffnessProgress int
	dampingProgress   int

	cornerAnim *anim.Tween
	scaleAnim  *anim.Tween
	springX    *anim.Spring
	springY    *anim.Spring

	cornerProp    anim.Property
	scaleProp     anim.Property
	velocityXProp anim.Property
	velocityYProp anim.Property
}

// NewController creates a controller that schedules work on frames.
func NewController(cfg Config, frames *adaptive.Choreographer) *Controller {
	cfg = cfg.normalize()
	c := &Controller{
		cfg:               cfg,
		frames:            frames,
		layers:            adaptive.NewLayerCache(0),
		tracker:           velocity.NewTracker(),
		corners:           cfg.Corners(),
		stiffnessProgress: int(math.Round(cfg.Stiffness)),
		dampingProgress:   int(math.Round(cfg.DampingRatio * 100)),
	}
	c.cornerProp = anim.NewProperty(c.CornerRadius, c.SetCornerRadius)
	c.scaleProp = anim.NewProperty(c.Scale, c.SetScale)
	c.velocityXProp = anim.NewProperty(c.VelocityX, c.SetVelocityX)
	c.velocityYProp = anim.NewProperty(c.VelocityY, c.SetVelocityY)
	return c
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config { return c.cfg }

// Grid returns the grid of bound views.
func (c *Controller) Grid() *Grid { return &c.grid }

// Layers returns the layer cache shared by the controller's views.
func (c *Controller) Layers() *adaptive.LayerCache { return c.layers }

// NewView creates a grid cell view that redraws through the controller's
// Choreographer and shares rasterized layers with its siblings.
func (c *Controller) NewView() *adaptive.View {
	opts := append(c.cfg.ViewOptions(),
		adaptive.WithInvalidator(c.frames),
		adaptive.WithLayerCache(c.layers))
	v := adaptive.NewView(opts...)
	size := c.cfg.ItemSize()
	v.SetSize(size, size)
	return v
}

// SetIcons installs the loaded icons. Until then property changes and
// touches are ignored.
func (c *Controller) SetIcons(icons []adaptive.Icon) {
	c.grid.SetAdapter(NewAdapter(icons, c.corners[0]))
	adaptive.Logger().Info("playground: icons bound",
		"icons", len(icons), "items", c.grid.adapter.ItemCount())
}

// Loaded reports whether icons have been installed.
func (c *Controller) Loaded() bool { return c.grid.adapter != nil }

// CornerRadius returns the shared corner radius, or 0 before loading.
func (c *Controller) CornerRadius() float64 {
	if a := c.grid.adapter; a != nil {
		return a.CornerRadius
	}
	return 0
}

// SetCornerRadius sets the corner radius of every cell.
func (c *Controller) SetCornerRadius(r float64) {
	c.grid.apply(
		func(a *Adapter) { a.CornerRadius = r },
		func(v *adaptive.View) { v.SetCornerRadius(r) })
}

// VelocityX returns the shared horizontal velocity.
func (c *Controller) VelocityX() float64 {
	if a := c.grid.adapter; a != nil {
		return a.VelocityX
	}
	return 0
}

// SetVelocityX sets the horizontal velocity of every cell.
func (c *Controller) SetVelocityX(vx float64) {
	c.grid.apply(
		func(a *Adapter) { a.VelocityX = vx },
		func(v *adaptive.View) { v.SetVelocityX(vx) })
}

// VelocityY returns the shared vertical velocity.
func (c *Controller) VelocityY() float64 {
	if a := c.grid.adapter; a != nil {
		return a.VelocityY
	}
	return 0
}

// SetVelocityY sets the vertical velocity of every cell.
func (c *Controller) SetVelocityY(vy float64) {
	c.grid.apply(
		func(a *Adapter) { a.VelocityY = vy },
		func(v *adaptive.View) { v.SetVelocityY(vy) })
}

// Scale returns the shared pinch progress.
func (c *Controller) Scale() float64 {
	if a := c.grid.adapter; a != nil {
		return a.Scale
	}
	return 0
}

// SetScale sets the pinch progress of every cell.
func (c *Controller) SetScale(t float64) {
	c.grid.apply(
		func(a *Adapter) { a.Scale = t },
		func(v *adaptive.View) { v.SetScale(t) })
}

// ForegroundTranslateFactor returns the shared foreground parallax factor.
func (c *Controller) ForegroundTranslateFactor() float64 {
	if a := c.grid.adapter; a != nil {
		return a.ForegroundTranslateFactor
	}
	return adaptive.DefaultForegroundTranslateFactor
}

// SetForegroundTranslateFactor sets the foreground parallax of every cell.
func (c *Controller) SetForegroundTranslateFactor(f float64) {
	c.grid.apply(
		func(a *Adapter) { a.ForegroundTranslateFactor = f },
		func(v *adaptive.View) { v.SetForegroundTranslateFactor(f) })
}

// BackgroundTranslateFactor returns the shared background parallax factor.
func (c *Controller) BackgroundTranslateFactor() float64 {
	if a := c.grid.adapter; a != nil {
		return a.BackgroundTranslateFactor
	}
	return adaptive.DefaultBackgroundTranslateFactor
}

// SetBackgroundTranslateFactor sets the background parallax of every cell.
func (c *Controller) SetBackgroundTranslateFactor(f float64) {
	c.grid.apply(
		func(a *Adapter) { a.BackgroundTranslateFactor = f },
		func(v *adaptive.View) { v.SetBackgroundTranslateFactor(f) })
}

// ForegroundScaleFactor returns the shared foreground scale factor.
func (c *Controller) ForegroundScaleFactor() float64 {
	if a := c.grid.adapter; a != nil {
		return a.ForegroundScaleFactor
	}
	return adaptive.DefaultForegroundScaleFactor
}

// SetForegroundScaleFactor sets the foreground scale factor of every cell.
func (c *Controller) SetForegroundScaleFactor(f float64) {
	c.grid.apply(
		func(a *Adapter) { a.ForegroundScaleFactor = f },
		func(v *adaptive.View) { v.SetForegroundScaleFactor(f) })
}

// BackgroundScaleFactor returns the shared background scale factor.
func (c *Controller) BackgroundScaleFactor() float64 {
	if a := c.grid.adapter; a != nil {
		return a.BackgroundScaleFactor
	}
	return adaptive.DefaultBackgroundScaleFactor
}

// SetBackgroundScaleFactor sets the background scale factor of every cell.
func (c *Controller) SetBackgroundScaleFactor(f float64) {
	c.grid.apply(
		func(a *Adapter) { a.BackgroundScaleFactor = f },
		func(v *adaptive.View) { v.SetBackgroundScaleFactor(f) })
}

// Slider inputs. Progress runs 0..100 for the factors and damping.

// SetForegroundParallax applies the foreground parallax slider.
func (c *Controller) SetForegroundParallax(progress int) {
	c.SetForegroundTranslateFactor(float64(progress) / 100)
}

// SetBackgroundParallax applies the background parallax slider.
func (c *Controller) SetBackgroundParallax(progress int) {
	c.SetBackgroundTranslateFactor(float64(progress) / 100)
}

// SetForegroundScale applies the foreground scale slider.
func (c *Controller) SetForegroundScale(progress int) {
	c.SetForegroundScaleFactor(float64(progress) / 100)
}

// SetBackgroundScale applies the background scale slider.
func (c *Controller) SetBackgroundScale(progress int) {
	c.SetBackgroundScaleFactor(float64(progress) / 100)
}

// SetStiffnessProgress applies the stiffness slider.
func (c *Controller) SetStiffnessProgress(progress int) { c.stiffnessProgress = progress }

// SetDampingProgress applies the damping slider.
func (c *Controller) SetDampingProgress(progress int) { c.dampingProgress = progress }

// Stiffness returns the release spring stiffness, at least MinStiffness.
func (c *Controller) Stiffness() float64 {
	return max(float64(c.stiffnessProgress), anim.MinStiffness)
}

// DampingRatio returns the release spring damping ratio, at least
// MinDampingRatio.
func (c *Controller) DampingRatio() float64 {
	return max(float64(c.dampingProgress)/100, anim.MinDampingRatio)
}

// Corner returns the index of the current corner preset.
func (c *Controller) Corner() int { return c.corner }

// CycleCorner advances to the next corner preset and animates every cell
// toward it. It returns the target radius.
func (c *Controller) CycleCorner() float64 {
	c.corner = (c.corner + 1) % len(c.corners)
	target := c.corners[c.corner]
	if c.cornerAnim != nil {
		c.cornerAnim.Cancel()
	}
	c.cornerAnim = anim.NewTween(c.cornerProp, target, CornerDuration).
		SetInterpolator(anim.FastOutSlowIn)
	c.cornerAnim.Start(c.frames)
	return target
}

// AnimateScale animates the pinch progress of every cell toward t.
func (c *Controller) AnimateScale(t float64) {
	if c.scaleAnim != nil {
		c.scaleAnim.Cancel()
	}
	c.scaleAnim = anim.NewTween(c.scaleProp, t, ScaleDuration).
		SetInterpolator(anim.FastOutSlowIn)
	c.scaleAnim.Start(c.frames)
}

// Orientation returns the current scroll orientation.
func (c *Controller) Orientation() Orientation { return c.orientation }

// ToggleOrientation switches the scroll orientation and returns it.
func (c *Controller) ToggleOrientation() Orientation {
	c.orientation = c.orientation.Toggle()
	return c.orientation
}

// Decor returns the current backdrop.
func (c *Controller) Decor() Decor { return c.decor }

// NextDecor switches to the next backdrop and returns it.
func (c *Controller) NextDecor() Decor {
	c.decor = c.decor.Next()
	return c.decor
}

// SheetColor returns the settings sheet background for a slide offset in
// [-1, 1]: white whose opacity grows from 80% as the sheet opens.
func SheetColor(slideOffset float64) adaptive.RGBA {
	slideOffset = min(max(slideOffset, -1), 1)
	alpha := uint32(204 + int(38*slideOffset))
	return adaptive.ARGB(0xccffffff&0x00ffffff | alpha<<24)
}

// Down starts a gesture at pointer position (x, y).
func (c *Controller) Down(t time.Time, x, y float64) {
	if !c.Loaded() {
		return
	}
	c.tracker.Clear()
	c.track(t, x, y)
}

// Move continues a gesture.
func (c *Controller) Move(t time.Time, x, y float64) {
	if !c.Loaded() {
		return
	}
	c.track(t, x, y)
}

// Up ends a gesture and springs the velocity back to rest.
func (c *Controller) Up(t time.Time, x, y float64) {
	c.release(t, x, y)
}

// Cancel aborts a gesture; it releases like Up.
func (c *Controller) Cancel(t time.Time, x, y float64) {
	c.release(t, x, y)
}

// track feeds the tracker and writes the velocity of the active axis.
func (c *Controller) track(t time.Time, x, y float64) {
	c.tracker.AddMovement(t, x, y)
	c.tracker.ComputeCurrentVelocity(1000)
	switch c.orientation {
	case Horizontal:
		c.SetVelocityX(c.tracker.XVelocity())
	case Vertical:
		c.SetVelocityY(c.tracker.YVelocity())
	}
}

func (c *Controller) release(t time.Time, x, y float64) {
	if !c.Loaded() {
		return
	}
	c.tracker.AddMovement(t, x, y)
	c.tracker.ComputeCurrentVelocity(1000)
	c.releaseVelocity(c.tracker.XVelocity(), c.tracker.YVelocity())
	c.tracker.Clear()
}

// releaseVelocity starts a spring toward rest on every axis that has a
// release velocity or is still displaced.
func (c *Controller) releaseVelocity(vx, vy float64) {
	adaptive.Logger().Debug("playground: release", "vx", vx, "vy", vy,
		"stiffness", c.Stiffness(), "damping", c.DampingRatio())
	if vx != 0 || c.VelocityX() != 0 {
		c.springX = c.startSpring(c.springX, c.velocityXProp, vx)
	}
	if vy != 0 || c.VelocityY() != 0 {
		c.springY = c.startSpring(c.springY, c.velocityYProp, vy)
	}
}

func (c *Controller) startSpring(prev *anim.Spring, p anim.Property, v float64) *anim.Spring {
	if prev != nil {
		prev.Cancel()
	}
	s := anim.NewSpring(p, 0).
		SetStiffness(c.Stiffness()).
		SetDampingRatio(c.DampingRatio()).
		SetStartVelocity(v)
	s.Start(c.frames)
	return s
}

// Animating reports whether any playground animation is running.
func (c *Controller) Animating() bool {
	return (c.cornerAnim != nil && c.cornerAnim.IsRunning()) ||
		(c.scaleAnim != nil && c.scaleAnim.IsRunning()) ||
		(c.springX != nil && c.springX.IsRunning()) ||
		(c.springY != nil && c.springY.IsRunning())
}
