// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adaptive

import "github.com/gogpu/adaptive/internal/cache"

// DefaultLayerCacheSize is the number of icons a LayerCache keeps when
// created with a non-positive size.
const DefaultLayerCacheSize = 64

// LayerCache shares rasterized layers between views, so an icon shown in
// many grid cells is drawn once per layer size.
//
// Only *AdaptiveIcon values are cached; other Icon implementations are
// rasterized on every SetIcon. Layers are copied into each view, so a view
// never aliases cached pixels.
//
// LayerCache is safe for concurrent use.
type LayerCache struct {
	c *cache.Cache[layerKey, *layerPair]
}

type layerKey struct {
	icon *AdaptiveIcon
	size int
}

type layerPair struct {
	foreground *Pixmap
	background *Pixmap
}

// NewLayerCache creates a cache holding the layers of up to size icons.
func NewLayerCache(size int) *LayerCache {
	if size <= 0 {
		size = DefaultLayerCacheSize
	}
	return &LayerCache{c: cache.New[layerKey, *layerPair](size)}
}

// Len returns the number of cached icons.
func (lc *LayerCache) Len() int { return lc.c.Len() }

// Hits returns how many SetIcon calls reused cached layers.
func (lc *LayerCache) Hits() uint64 { return lc.c.Stats().Hits }

// Clear drops every cached layer.
func (lc *LayerCache) Clear() { lc.c.Clear() }

// layers returns the layers of icon at size, rasterizing them on a miss
// with raster. ok is false for icons that cannot be cached.
func (lc *LayerCache) layers(icon Icon, size int, raster func(d Drawable, dst *Pixmap)) (*layerPair, bool) {
	ai, ok := icon.(*AdaptiveIcon)
	if !ok || ai == nil {
		return nil, false
	}
	return lc.c.GetOrCreate(layerKey{icon: ai, size: size}, func() *layerPair {
		p := &layerPair{
			foreground: NewPixmap(size, size),
			background: NewPixmap(size, size),
		}
		raster(ai.Background(), p.background)
		raster(ai.Foreground(), p.foreground)
		return p
	}), true
}
