// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/adaptive"
	"github.com/gogpu/adaptive/integration/ebitencanvas"
	"github.com/gogpu/adaptive/playground"
)

// statusHeight is the height of the translucent status strip in dp.
const statusHeight = 24

// game implements ebiten.Game on top of a playground controller.
type game struct {
	cfg      playground.Config
	frames   *adaptive.Choreographer
	ctrl     *playground.Controller
	iconsCh  <-chan []adaptive.Icon
	canvases []*ebitencanvas.Canvas

	side     int
	item     int
	offsets  playground.Insets
	backdrop *ebiten.Image

	scroll    float64
	pointer   ebimath.Vector
	dragging  bool
	touchID   ebiten.TouchID
	touching  bool
	scaled    bool
	sheetOpen bool

	fgParallax, bgParallax int
	fgScale, bgScale       int
}

func newGame(cfg playground.Config, icons <-chan []adaptive.Icon) *game {
	frames := adaptive.NewChoreographer()
	ctrl := playground.NewController(cfg, frames)
	cfg = ctrl.Config()
	g := &game{
		cfg:        cfg,
		frames:     frames,
		ctrl:       ctrl,
		iconsCh:    icons,
		side:       screenSize(cfg),
		item:       cfg.ItemSize(),
		fgParallax: int(adaptive.DefaultForegroundTranslateFactor * 100),
		bgParallax: int(adaptive.DefaultBackgroundTranslateFactor * 100),
		fgScale:    int(adaptive.DefaultForegroundScaleFactor * 100),
		bgScale:    int(adaptive.DefaultBackgroundScaleFactor * 100),
	}
	g.offsets = playground.CenteringOffsets(cfg.Spans, g.item, g.side, g.side, playground.Insets{})
	g.paintBackdrop()
	return g
}

// paintBackdrop renders the current decor into the backdrop image.
func (g *game) paintBackdrop() {
	pm := adaptive.NewPixmap(g.side, g.side)
	g.ctrl.Decor().Background().Draw(pm, pm.Bounds())
	if g.backdrop != nil {
		g.backdrop.Deallocate()
	}
	g.backdrop = ebiten.NewImageFromImage(pm.RGBAImage())
}

// bind creates one view and canvas per grid cell once icons arrive.
func (g *game) bind(icons []adaptive.Icon) error {
	g.ctrl.SetIcons(icons)
	n := g.ctrl.Grid().Adapter().ItemCount()
	for i := 0; i < n; i++ {
		v := g.ctrl.NewView()
		g.ctrl.Grid().Bind(v, i)
		c, err := ebitencanvas.New(v)
		if err != nil {
			return fmt.Errorf("iconplay: cell %d: %w", i, err)
		}
		g.canvases = append(g.canvases, c)
	}
	return nil
}

// pitch is the distance between two grid lines.
func (g *game) pitch() int {
	if g.ctrl.Orientation() == playground.Vertical {
		return g.offsets.Top + g.item + g.offsets.Bottom
	}
	return g.offsets.Left + g.item + g.offsets.Right
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	now := time.Now()
	if !g.ctrl.Loaded() {
		select {
		case icons := <-g.iconsCh:
			if err := g.bind(icons); err != nil {
				return err
			}
		default:
		}
	}

	g.handleKeys()
	g.handlePointer(now)
	g.frames.DoFrame(now)
	return nil
}

func (g *game) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.ctrl.CycleCorner()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.ctrl.ToggleOrientation()
		g.scroll = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.ctrl.NextDecor()
		g.paintBackdrop()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.scaled = !g.scaled
		if g.scaled {
			g.ctrl.AnimateScale(1)
		} else {
			g.ctrl.AnimateScale(0)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.sheetOpen = !g.sheetOpen
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.fgParallax = stepProgress(g.fgParallax, !shift)
		g.ctrl.SetForegroundParallax(g.fgParallax)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.bgParallax = stepProgress(g.bgParallax, !shift)
		g.ctrl.SetBackgroundParallax(g.bgParallax)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.fgScale = stepProgress(g.fgScale, !shift)
		g.ctrl.SetForegroundScale(g.fgScale)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.bgScale = stepProgress(g.bgScale, !shift)
		g.ctrl.SetBackgroundScale(g.bgScale)
	}
}

// handlePointer turns the mouse or the first touch into a gesture.
func (g *game) handlePointer(now time.Time) {
	var (
		pos              ebimath.Vector
		pressed, release bool
		down             bool
	)
	if ids := inpututil.AppendJustPressedTouchIDs(nil); !g.touching && len(ids) > 0 {
		g.touchID, g.touching, down = ids[0], true, true
	}
	switch {
	case g.touching:
		if inpututil.IsTouchJustReleased(g.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(g.touchID)
			pos, release, g.touching = ebimath.V(float64(x), float64(y)), true, false
		} else {
			x, y := ebiten.TouchPosition(g.touchID)
			pos, pressed = ebimath.V(float64(x), float64(y)), true
		}
	default:
		x, y := ebiten.CursorPosition()
		pos = ebimath.V(float64(x), float64(y))
		down = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		release = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	switch {
	case down:
		g.dragging = true
		g.pointer = pos
		g.ctrl.Down(now, pos.X, pos.Y)
	case release && g.dragging:
		g.dragging = false
		g.ctrl.Up(now, pos.X, pos.Y)
	case pressed && g.dragging:
		if pos.X == g.pointer.X && pos.Y == g.pointer.Y {
			return
		}
		delta := pos.X - g.pointer.X
		if g.ctrl.Orientation() == playground.Vertical {
			delta = pos.Y - g.pointer.Y
		}
		g.pointer = pos
		g.scroll = clampScroll(g.scroll-delta, len(g.canvases), g.cfg.Spans, g.pitch(), g.side)
		g.ctrl.Move(now, pos.X, pos.Y)
	}
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backdrop, nil)

	bounds := image.Rect(0, 0, g.side, g.side)
	o := g.ctrl.Orientation()
	for i, c := range g.canvases {
		cell := playground.CellRect(i, g.cfg.Spans, g.item, g.offsets, o)
		cell = scrolled(cell, g.scroll, o)
		if !cell.Overlaps(bounds) {
			continue
		}
		if err := c.Draw(screen, cell); err != nil {
			adaptive.Logger().Warn("iconplay: draw failed", "cell", i, "error", err)
		}
	}

	d := g.ctrl.Decor()
	status := float32(statusHeight * g.cfg.Density)
	vector.DrawFilledRect(screen, 0, 0, float32(g.side), status, d.StatusColor().Color(), false)

	if !g.ctrl.Loaded() {
		ebitenutil.DebugPrintAt(screen, "Loading icons...", g.side/2-48, g.side/2)
		return
	}
	if g.sheetOpen {
		top := float32(g.side) * 0.6
		vector.DrawFilledRect(screen, 0, top, float32(g.side), float32(g.side)-top,
			playground.SheetColor(1).Color(), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"foreground parallax %3d%%   background parallax %3d%%\n"+
				"foreground scale    %3d%%   background scale    %3d%%\n"+
				"stiffness %.0f   damping %.2f\n"+
				"orientation %v   decor %v   mask %d",
			g.fgParallax, g.bgParallax, g.fgScale, g.bgScale,
			g.ctrl.Stiffness(), g.ctrl.DampingRatio(),
			g.ctrl.Orientation(), d, g.ctrl.Corner()), 8, int(top)+8)
	}
}

// Layout implements ebiten.Game.
func (g *game) Layout(int, int) (int, int) {
	return g.side, g.side
}
