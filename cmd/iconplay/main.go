// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command iconplay is an interactive adaptive icon playground.
//
// Drag the grid to see parallax; release to watch the icons spring back.
//
//	M        cycle the mask corner radius
//	O        toggle the scroll orientation
//	B        cycle the backdrop
//	S        toggle the pinch scale demo
//	1..4     raise foreground/background parallax and scale (Shift lowers)
//	Tab      show or hide the settings sheet
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/gogpu/adaptive"
	"github.com/gogpu/adaptive/loader"
	"github.com/gogpu/adaptive/playground"
)

func main() {
	cfg := playground.DefaultConfig()
	var (
		icons   = flag.String("icons", "", "directory of <name>/{foreground,background}.png icons")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Float64Var(&cfg.Density, "density", 1.5, "pixels per dp")
	flag.IntVar(&cfg.Spans, "spans", cfg.Spans, "icons across the grid")
	flag.Float64Var(&cfg.Stiffness, "stiffness", cfg.Stiffness, "release spring stiffness")
	flag.Float64Var(&cfg.DampingRatio, "damping", cfg.DampingRatio, "release spring damping ratio")
	flag.Parse()

	if *verbose {
		adaptive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sources := []loader.Source{loader.Builtin()}
	if *icons != "" {
		sources = append(sources, loader.FSSource{FS: os.DirFS(*icons)})
	}

	g := newGame(cfg, loader.New(nil, sources).Chan(context.Background()))
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Adaptive Icon Playground")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

// screenSize returns the square window side for cfg: spans cells plus the
// gutters around them.
func screenSize(cfg playground.Config) int {
	return cfg.Spans * (cfg.ItemSize() + int(math.Round(16*cfg.Density)))
}

// clampScroll limits scroll to the content extent along the scroll axis.
func clampScroll(scroll float64, items, spans, pitch, screen int) float64 {
	lines := (items + spans - 1) / spans
	limit := float64(max(lines*pitch-screen, 0))
	return min(max(scroll, 0), limit)
}

// scrolled moves a cell against the scroll offset along o.
func scrolled(cell image.Rectangle, scroll float64, o playground.Orientation) image.Rectangle {
	d := int(math.Round(scroll))
	if o == playground.Vertical {
		return cell.Sub(image.Pt(0, d))
	}
	return cell.Sub(image.Pt(d, 0))
}

// stepProgress moves a 0..100 slider by ten, wrapping at either end.
func stepProgress(p int, up bool) int {
	if up {
		p += 10
	} else {
		p -= 10
	}
	return (p%110 + 110) % 110
}
