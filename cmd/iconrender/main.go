// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command iconrender renders one frame of the adaptive icon grid to a PNG.
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/adaptive"
	"github.com/gogpu/adaptive/loader"
	"github.com/gogpu/adaptive/playground"
)

func main() {
	var (
		output    = flag.String("output", "icons.png", "output file")
		density   = flag.Float64("density", 2, "pixels per dp")
		spans     = flag.Int("spans", playground.DefaultSpans, "icons per row and column")
		velocityX = flag.Float64("velocity", 0, "horizontal pointer velocity in px/s, clamped to ±1000")
		velocityY = flag.Float64("velocity-y", 0, "vertical pointer velocity in px/s, clamped to ±1000")
		scale     = flag.Float64("scale", 0, "pinch progress in [0, 1]")
		corner    = flag.Float64("corner", -1, "corner radius in dp (default: first mask preset)")
		icons     = flag.String("icons", "", "directory of <name>/{foreground,background}.png icons")
		decor     = flag.Int("decor", 0, "backdrop: 0 wallpaper, 1 light, 2 dusk, 3 dark")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		adaptive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := playground.DefaultConfig()
	cfg.Density = *density
	cfg.Spans = *spans

	sources := []loader.Source{loader.Builtin()}
	if *icons != "" {
		sources = append(sources, loader.FSSource{FS: os.DirFS(*icons)})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	var list []adaptive.Icon
	select {
	case list = <-loader.New(nil, sources).Chan(ctx):
	case <-ctx.Done():
		log.Fatalf("Failed to load icons: %v", ctx.Err())
	}

	frames := adaptive.NewChoreographer()
	c := playground.NewController(cfg, frames)
	cfg = c.Config()
	c.SetIcons(list)

	n := cfg.Spans * cfg.Spans
	for i := 0; i < n; i++ {
		c.Grid().Bind(c.NewView(), i)
	}
	if *corner >= 0 {
		c.SetCornerRadius(*corner * cfg.Density)
	}
	c.SetVelocityX(*velocityX)
	c.SetVelocityY(*velocityY)
	c.SetScale(*scale)
	drawn := frames.DoFrame(time.Now())

	item := cfg.ItemSize()
	side := cfg.Spans * (item + int(math.Round(16*cfg.Density)))
	frame := adaptive.NewPixmap(side, side)
	d := playground.Wallpaper
	for i := 0; i < *decor%4; i++ {
		d = d.Next()
	}
	d.Background().Draw(frame, frame.Bounds())

	off := playground.CenteringOffsets(cfg.Spans, item, side, side, playground.Insets{})
	for i, v := range c.Grid().Views() {
		cell := playground.CellRect(i, cfg.Spans, item, off, playground.Vertical)
		composite(frame, v, cell)
	}

	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered %d icons (%d drawn) to %s (%dx%d)\n", n, drawn, *output, side, side)
}

// composite draws the view's pixmap centered in cell, scaled by the view's
// pinch scale.
func composite(dst *adaptive.Pixmap, v *adaptive.View, cell image.Rectangle) {
	src := v.Pixmap()
	if src == nil {
		return
	}
	s := v.ViewScale()
	cx := float64(cell.Min.X) + float64(cell.Dx())/2
	cy := float64(cell.Min.Y) + float64(cell.Dy())/2
	aff := f64.Aff3{
		s, 0, cx - s*float64(src.Width())/2,
		0, s, cy - s*float64(src.Height())/2,
	}
	xdraw.BiLinear.Transform(dst.RGBAImage(), aff, src.RGBAImage(), src.Bounds(), xdraw.Over, nil)
}
