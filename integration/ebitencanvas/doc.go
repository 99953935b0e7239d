// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas presents adaptive views in an Ebitengine window.
//
// The compositor runs on the CPU; this package moves its output to the
// GPU. The data flow is:
//
//	adaptive.View (Render) -> Pixmap (CPU) -> *ebiten.Image -> screen
//
// # Architecture
//
// Canvas pairs one View with one Ebitengine image:
//
//   - Flush uploads the view's pixmap with WritePixels, only when the view
//     rendered since the previous upload
//   - Draw flushes and draws the image into a grid cell, scaled about the
//     cell center by the view's pinch scale
//
// Pixmaps hold premultiplied RGBA, which is the layout WritePixels
// expects, so uploads copy bytes without conversion.
//
// # Usage
//
//	canvas := ebitencanvas.MustNew(view)
//	defer canvas.Close()
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		_ = canvas.Draw(screen, cell)
//	}
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Call it from the Ebitengine game
// loop, the same goroutine that renders the view.
package ebitencanvas
