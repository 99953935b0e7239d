// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/image/webp"

	"github.com/gogpu/adaptive"
)

// Sentinel errors for file-based icons.
var (
	// ErrNoLayers is returned when an icon directory holds neither layer.
	ErrNoLayers = errors.New("loader: icon has no layer images")

	// ErrUnsupportedFormat is returned for layer files that are neither PNG
	// nor WebP.
	ErrUnsupportedFormat = errors.New("loader: unsupported image format")
)

// layerExts lists the accepted layer file extensions in lookup order.
var layerExts = []string{".png", ".webp"}

// FSSource loads icons from a file system laid out as one directory per
// icon:
//
//	<label>/foreground.png   (or .webp)
//	<label>/background.png   (or .webp)
//
// Either layer may be missing; a directory with neither is skipped. Layer
// images are scaled to the full layer bounds when drawn.
type FSSource struct {
	FS fs.FS
}

// Icons implements Source. Unreadable icons are logged and skipped; only a
// failure to list the root is returned.
func (s FSSource) Icons(ctx context.Context) ([]adaptive.Icon, error) {
	entries, err := fs.ReadDir(s.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("loader: read icon directory: %w", err)
	}

	log := adaptive.Logger()
	var icons []adaptive.Icon
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return icons, err
		}
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		icon, err := s.loadIcon(e.Name())
		if err != nil {
			log.Warn("loader: icon skipped", "icon", e.Name(), "error", err)
			continue
		}
		log.Debug("loader: icon decoded", "icon", e.Name())
		icons = append(icons, icon)
	}
	return icons, nil
}

func (s FSSource) loadIcon(dir string) (adaptive.Icon, error) {
	fg, err := s.loadLayer(dir, "foreground")
	if err != nil {
		return nil, err
	}
	bg, err := s.loadLayer(dir, "background")
	if err != nil {
		return nil, err
	}
	if fg == nil && bg == nil {
		return nil, ErrNoLayers
	}
	return adaptive.NewAdaptiveIcon(dir, fg, bg), nil
}

// loadLayer returns the decoded layer, or nil when no file exists for it.
func (s FSSource) loadLayer(dir, name string) (adaptive.Drawable, error) {
	for _, ext := range layerExts {
		p := path.Join(dir, name+ext)
		img, err := decodeFile(s.FS, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return adaptive.ImageDrawable{Image: img}, nil
	}
	return nil, nil
}

// decodeFile decodes a PNG or WebP file chosen by its extension.
func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	var decode func(f fs.File) (image.Image, error)
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		decode = func(f fs.File) (image.Image, error) { return png.Decode(f) }
	case ".webp":
		decode = func(f fs.File) (image.Image, error) { return webp.Decode(f) }
	default:
		return nil, ErrUnsupportedFormat
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return decode(f)
}
