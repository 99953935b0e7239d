// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import (
	"image"
	"math"

	"github.com/gogpu/adaptive/internal/blend"
)

// Icon metrics, in dp, as defined by the adaptive icon format.
const (
	// LayerSizeDp is the edge length of each full-bleed layer.
	LayerSizeDp = 108.0

	// ExtraInsetFraction is the fraction of the visible icon that each layer
	// extends beyond the mask on every side.
	ExtraInsetFraction = 0.25
)

// Default parallax and scale factors.
const (
	DefaultForegroundTranslateFactor = 0.1
	DefaultBackgroundTranslateFactor = 0.08
	DefaultForegroundScaleFactor     = 0.2
	DefaultBackgroundScaleFactor     = 0.3
)

// Invalidator schedules a redraw of a view on the next frame.
type Invalidator interface {
	PostInvalidate(v *View)
}

// View renders an adaptive icon: both layers are rasterized once into
// fixed-size buffers, then every draw samples them through a per-layer
// transform and masks the result with a rounded rectangle.
//
// A View is not safe for concurrent use. All methods must be called from the
// goroutine that drives frames.
type View struct {
	density        float64
	layerSize      int
	iconSize       int
	viewportOffset int
	layerCenter    float64

	shadowColor RGBA
	shadowDy    float64
	hasShadow   bool

	background *Pixmap
	foreground *Pixmap
	bgShader   *BitmapShader
	fgShader   *BitmapShader

	width, height int
	left, top     float64

	label string

	foregroundDx, foregroundDy float64
	backgroundDx, backgroundDy float64
	foregroundScale            float64
	backgroundScale            float64
	viewScale                  float64

	cornerRadius              float64
	foregroundTranslateFactor float64
	backgroundTranslateFactor float64
	foregroundScaleFactor     float64
	backgroundScaleFactor     float64
	velocityX, velocityY      float64
	scale                     float64

	invalidator Invalidator
	layerCache  *LayerCache
	dirty       bool
	canvas      *Pixmap
	generation  uint64
}

// NewView creates a view. All derived metrics are fixed at creation:
//
//	layerSize      = round(108 * density)
//	iconSize       = int(layerSize / (1 + 2*insetFraction))
//	viewportOffset = (layerSize - iconSize) / 2
//	layerCenter    = layerSize / 2
//
// The view size starts at iconSize x iconSize.
func NewView(opts ...ViewOption) *View {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	layerSize := int(math.Round(LayerSizeDp * o.density))
	iconSize := int(float64(layerSize) / (1 + 2*o.insetFraction))

	v := &View{
		density:        o.density,
		layerSize:      layerSize,
		iconSize:       iconSize,
		viewportOffset: (layerSize - iconSize) / 2,
		layerCenter:    float64(layerSize / 2),

		shadowColor: o.shadowColor,
		shadowDy:    o.shadowDy,
		hasShadow:   !o.shadowColor.IsTransparent() && o.shadowDy > 0,

		background: NewPixmap(layerSize, layerSize),
		foreground: NewPixmap(layerSize, layerSize),

		foregroundScale: 1,
		backgroundScale: 1,
		viewScale:       1,

		foregroundTranslateFactor: DefaultForegroundTranslateFactor,
		backgroundTranslateFactor: DefaultBackgroundTranslateFactor,
		foregroundScaleFactor:     DefaultForegroundScaleFactor,
		backgroundScaleFactor:     DefaultBackgroundScaleFactor,

		invalidator: o.invalidator,
		layerCache:  o.layerCache,
	}
	v.bgShader = NewBitmapShader(v.background, TileClamp)
	v.fgShader = NewBitmapShader(v.foreground, TileClamp)
	v.SetSize(iconSize, iconSize)
	return v
}

// Density returns the pixels-per-dp the view was created with.
func (v *View) Density() float64 { return v.density }

// LayerSize returns the edge length of the layer buffers in pixels.
func (v *View) LayerSize() int { return v.layerSize }

// IconSize returns the edge length of the visible, masked icon in pixels.
func (v *View) IconSize() int { return v.iconSize }

// ViewportOffset returns the distance from a layer edge to the visible
// viewport edge in pixels.
func (v *View) ViewportOffset() int { return v.viewportOffset }

// LayerCenter returns the scale pivot of both layers, in layer pixels.
func (v *View) LayerCenter() float64 { return v.layerCenter }

// HasShadow reports whether the view paints a shadow.
func (v *View) HasShadow() bool { return v.hasShadow }

// Label returns the label of the icon last set, or "".
func (v *View) Label() string { return v.label }

// SetIcon erases both layer buffers and rasterizes the icon's layers into
// them. A nil icon or nil layer leaves the buffer transparent. With a
// LayerCache the layers are copied from the cache when present.
func (v *View) SetIcon(icon Icon) {
	v.background.Erase()
	v.foreground.Erase()
	v.label = ""
	if icon != nil {
		v.label = icon.Label()
		if !v.copyCachedLayers(icon) {
			v.rasterize(icon.Background(), v.background)
			v.rasterize(icon.Foreground(), v.foreground)
		}
	}
	Logger().Debug("adaptive: icon rasterized", "label", v.label, "layerSize", v.layerSize)
	v.invalidate()
}

func (v *View) copyCachedLayers(icon Icon) bool {
	if v.layerCache == nil {
		return false
	}
	p, ok := v.layerCache.layers(icon, v.layerSize, v.rasterize)
	if !ok {
		return false
	}
	copy(v.background.Data(), p.background.Data())
	copy(v.foreground.Data(), p.foreground.Data())
	return true
}

func (v *View) rasterize(d Drawable, dst *Pixmap) {
	if d == nil {
		return
	}
	d.Draw(dst, image.Rect(0, 0, v.layerSize, v.layerSize))
}

// ForegroundLayer returns the rasterized foreground buffer.
// The buffer is owned by the view and must not be modified.
func (v *View) ForegroundLayer() *Pixmap { return v.foreground }

// BackgroundLayer returns the rasterized background buffer.
// The buffer is owned by the view and must not be modified.
func (v *View) BackgroundLayer() *Pixmap { return v.background }

// SetSize sets the view size in pixels. The icon is centered in the view.
func (v *View) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	v.left = float64(w-v.iconSize) / 2
	v.top = float64(h-v.iconSize) / 2
	v.invalidate()
}

// Size returns the view size in pixels.
func (v *View) Size() (w, h int) { return v.width, v.height }

// Origin returns the top-left corner of the icon within the view.
func (v *View) Origin() (left, top float64) { return v.left, v.top }

// CornerRadius returns the mask corner radius in pixels.
func (v *View) CornerRadius() float64 { return v.cornerRadius }

// SetCornerRadius sets the mask corner radius in pixels. The value is stored
// as given; drawing limits it to half the icon size.
func (v *View) SetCornerRadius(r float64) {
	v.cornerRadius = r
	v.invalidate()
}

// ForegroundTranslateFactor returns the foreground parallax factor.
func (v *View) ForegroundTranslateFactor() float64 { return v.foregroundTranslateFactor }

// SetForegroundTranslateFactor sets the foreground parallax factor,
// clamped to [0, 1]. It takes effect on the next velocity write.
func (v *View) SetForegroundTranslateFactor(f float64) {
	v.foregroundTranslateFactor = clampUnit(f)
}

// BackgroundTranslateFactor returns the background parallax factor.
func (v *View) BackgroundTranslateFactor() float64 { return v.backgroundTranslateFactor }

// SetBackgroundTranslateFactor sets the background parallax factor,
// clamped to [0, 1]. It takes effect on the next velocity write.
func (v *View) SetBackgroundTranslateFactor(f float64) {
	v.backgroundTranslateFactor = clampUnit(f)
}

// ForegroundScaleFactor returns the foreground scale factor.
func (v *View) ForegroundScaleFactor() float64 { return v.foregroundScaleFactor }

// SetForegroundScaleFactor sets the foreground scale factor, clamped to
// [0, 1]. It takes effect on the next scale write.
func (v *View) SetForegroundScaleFactor(f float64) {
	v.foregroundScaleFactor = clampUnit(f)
}

// BackgroundScaleFactor returns the background scale factor.
func (v *View) BackgroundScaleFactor() float64 { return v.backgroundScaleFactor }

// SetBackgroundScaleFactor sets the background scale factor, clamped to
// [0, 1]. It takes effect on the next scale write.
func (v *View) SetBackgroundScaleFactor(f float64) {
	v.backgroundScaleFactor = clampUnit(f)
}

// VelocityX returns the last horizontal velocity written.
func (v *View) VelocityX() float64 { return v.velocityX }

// SetVelocityX maps a horizontal pointer velocity to both layers'
// horizontal displacement.
func (v *View) SetVelocityX(velocity float64) {
	v.velocityX = velocity
	d := VelocityToDisplacement(v.iconSize, velocity)
	v.backgroundDx = v.backgroundTranslateFactor * d
	v.foregroundDx = v.foregroundTranslateFactor * d
	v.invalidate()
}

// VelocityY returns the last vertical velocity written.
func (v *View) VelocityY() float64 { return v.velocityY }

// SetVelocityY maps a vertical pointer velocity to both layers' vertical
// displacement.
func (v *View) SetVelocityY(velocity float64) {
	v.velocityY = velocity
	d := VelocityToDisplacement(v.iconSize, velocity)
	v.backgroundDy = v.backgroundTranslateFactor * d
	v.foregroundDy = v.foregroundTranslateFactor * d
	v.invalidate()
}

// ForegroundOffset returns the foreground displacement in pixels.
func (v *View) ForegroundOffset() (dx, dy float64) { return v.foregroundDx, v.foregroundDy }

// BackgroundOffset returns the background displacement in pixels.
func (v *View) BackgroundOffset() (dx, dy float64) { return v.backgroundDx, v.backgroundDy }

// Scale returns the last pinch value written, in [0, 1].
func (v *View) Scale() float64 { return v.scale }

// SetScale applies a pinch value t, clamped to [0, 1]:
//
//	backgroundScale = 1 + backgroundScaleFactor*t
//	foregroundScale = 1 + foregroundScaleFactor*t
//
// The view itself is scaled by backgroundScale, see ViewScale.
func (v *View) SetScale(t float64) {
	v.scale = clampUnit(t)
	v.backgroundScale = 1 + v.backgroundScaleFactor*v.scale
	v.foregroundScale = 1 + v.foregroundScaleFactor*v.scale
	v.viewScale = v.backgroundScale
	v.invalidate()
}

// ForegroundScale returns the current foreground layer scale.
func (v *View) ForegroundScale() float64 { return v.foregroundScale }

// BackgroundScale returns the current background layer scale.
func (v *View) BackgroundScale() float64 { return v.backgroundScale }

// ViewScale returns the scale the host should apply to the whole view about
// its center, on both axes.
func (v *View) ViewScale() float64 { return v.viewScale }

// ForegroundMatrix returns the local matrix of the foreground shader for
// the current displacement and scale.
func (v *View) ForegroundMatrix() Matrix {
	return v.layerMatrix(v.foregroundDx, v.foregroundDy, v.foregroundScale)
}

// BackgroundMatrix returns the local matrix of the background shader for
// the current displacement and scale.
func (v *View) BackgroundMatrix() Matrix {
	return v.layerMatrix(v.backgroundDx, v.backgroundDy, v.backgroundScale)
}

func (v *View) layerMatrix(dx, dy, s float64) Matrix {
	vo := float64(v.viewportOffset)
	return ScaleAbout(s, s, v.layerCenter, v.layerCenter).PostTranslate(dx-vo, dy-vo)
}

// Invalidate schedules a redraw.
func (v *View) Invalidate() { v.invalidate() }

func (v *View) invalidate() {
	v.dirty = true
	if v.invalidator != nil {
		v.invalidator.PostInvalidate(v)
	}
}

// IsDirty reports whether the view changed since it was last rendered.
func (v *View) IsDirty() bool { return v.dirty }

// Draw composites the icon into dst, which is addressed in view
// coordinates. The caller owns clearing dst.
//
// Paint order is shadow, background, foreground. All three share the
// rounded-rect mask; the shadow is offset down by its dy.
func (v *View) Draw(dst *Pixmap) {
	if dst == nil || v.iconSize <= 0 {
		return
	}
	v.bgShader.SetLocalMatrix(v.BackgroundMatrix())
	v.fgShader.SetLocalMatrix(v.ForegroundMatrix())

	if v.hasShadow {
		sr, sg, sb, sa := v.shadowColor.Premul8()
		v.fillRoundRect(dst, v.left, v.top+v.shadowDy, func(float64, float64) (uint8, uint8, uint8, uint8) {
			return sr, sg, sb, sa
		})
	}
	v.fillRoundRect(dst, v.left, v.top, v.bgShader.Sample)
	v.fillRoundRect(dst, v.left, v.top, v.fgShader.Sample)
}

// Render clears the view's own pixmap, draws into it and returns it.
// The pixmap is reused between calls and resized with the view.
func (v *View) Render() *Pixmap {
	if v.canvas == nil || v.canvas.Width() != v.width || v.canvas.Height() != v.height {
		v.canvas = NewPixmap(v.width, v.height)
	} else {
		v.canvas.Erase()
	}
	v.Draw(v.canvas)
	v.dirty = false
	v.generation++
	return v.canvas
}

// Pixmap returns the pixmap of the last Render, or nil.
func (v *View) Pixmap() *Pixmap { return v.canvas }

// Generation returns the number of completed Render calls. It changes
// exactly when Pixmap holds new content.
func (v *View) Generation() uint64 { return v.generation }

// fillRoundRect paints an iconSize square with origin (ox, oy) masked by
// the corner radius. src is sampled at the pixel center relative to the
// square origin and returns premultiplied color.
func (v *View) fillRoundRect(dst *Pixmap, ox, oy float64, src func(x, y float64) (r, g, b, a uint8)) {
	size := float64(v.iconSize)
	half := size / 2
	cx, cy := ox+half, oy+half

	x0 := max(int(math.Floor(ox))-1, 0)
	y0 := max(int(math.Floor(oy))-1, 0)
	x1 := min(int(math.Ceil(ox+size))+1, dst.Width())
	y1 := min(int(math.Ceil(oy+size))+1, dst.Height())

	data := dst.Data()
	stride := dst.Width() * 4
	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		row := y * stride
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5
			cov := coverage8(SDFFilledRRectCoverage(px, py, cx, cy, half, half, v.cornerRadius))
			if cov == 0 {
				continue
			}
			r, g, b, a := src(px-ox, py-oy)
			i := row + x*4
			blend.SourceOverCoverage(data[i:i+4], r, g, b, a, cov)
		}
	}
}
