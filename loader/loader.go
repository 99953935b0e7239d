// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loader enumerates adaptive icons in the background.
//
// A Loader runs its sources once, caches the combined result forever and
// hands it to every caller of Start: the first callers when loading
// completes, later callers immediately from the cache. Sources that fail are
// logged and skipped, so loading itself never fails and always yields at
// least the fallback icon.
package loader

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gogpu/adaptive"
)

// Source produces icons, typically from some external catalog.
type Source interface {
	Icons(ctx context.Context) ([]adaptive.Icon, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]adaptive.Icon, error)

// Icons implements Source.
func (f SourceFunc) Icons(ctx context.Context) ([]adaptive.Icon, error) { return f(ctx) }

// maxConcurrentSources bounds how many sources are enumerated at once.
const maxConcurrentSources = 4

type state uint8

const (
	stateIdle state = iota
	stateLoading
	stateDone
)

// Loader is a fire-once, cache-forever icon loader.
//
// Loader is safe for concurrent use. Delivery callbacks run on the
// loader's goroutine for the first load and on the caller's goroutine for
// cached replays; hosts with a UI thread should hand the slice over with a
// channel, see Chan.
type Loader struct {
	sources  []Source
	fallback adaptive.Icon
	tag      language.Tag

	mu      sync.Mutex
	state   state
	icons   []adaptive.Icon
	waiters []func([]adaptive.Icon)
}

// Option configures a Loader.
type Option func(*Loader)

// WithLanguage sets the collation language for sorting labels.
// The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(l *Loader) {
		l.tag = tag
	}
}

// New creates a loader over sources. fallback is appended to every result;
// nil selects the bundled Fallback icon.
func New(fallback adaptive.Icon, sources []Source, opts ...Option) *Loader {
	if fallback == nil {
		fallback = Fallback()
	}
	l := &Loader{
		sources:  slices.Clone(sources),
		fallback: fallback,
		tag:      language.English,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start delivers the icon list to deliver exactly once.
//
// The first call starts loading on a new goroutine with ctx handed to the
// sources. Calls made while loading is in progress are queued behind it.
// Calls after loading completed replay the cached list synchronously.
func (l *Loader) Start(ctx context.Context, deliver func([]adaptive.Icon)) {
	l.mu.Lock()
	switch l.state {
	case stateDone:
		icons := l.icons
		l.mu.Unlock()
		if deliver != nil {
			deliver(icons)
		}
		return
	case stateLoading:
		if deliver != nil {
			l.waiters = append(l.waiters, deliver)
		}
		l.mu.Unlock()
		return
	}
	l.state = stateLoading
	if deliver != nil {
		l.waiters = append(l.waiters, deliver)
	}
	l.mu.Unlock()

	go l.load(ctx)
}

// Chan starts loading and returns a channel that receives the icon list
// once.
func (l *Loader) Chan(ctx context.Context) <-chan []adaptive.Icon {
	ch := make(chan []adaptive.Icon, 1)
	l.Start(ctx, func(icons []adaptive.Icon) { ch <- icons })
	return ch
}

// Cached returns the loaded list and true once loading has completed.
func (l *Loader) Cached() ([]adaptive.Icon, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.icons, l.state == stateDone
}

func (l *Loader) load(ctx context.Context) {
	log := adaptive.Logger()
	log.Info("loader: loading icons", "sources", len(l.sources))

	results := make([][]adaptive.Icon, len(l.sources))
	var g errgroup.Group
	g.SetLimit(maxConcurrentSources)
	for i, src := range l.sources {
		g.Go(func() error {
			icons, err := src.Icons(ctx)
			if err != nil {
				log.Warn("loader: source skipped", "source", i, "error", err)
				return nil
			}
			results[i] = icons
			return nil
		})
	}
	_ = g.Wait() // sources never fail the group

	var icons []adaptive.Icon
	for _, r := range results {
		for _, icon := range r {
			if icon != nil {
				icons = append(icons, icon)
			}
		}
	}
	sortByLabel(icons, l.tag)
	icons = append(icons, l.fallback)

	l.mu.Lock()
	l.icons = icons
	l.state = stateDone
	waiters := l.waiters
	l.waiters = nil
	l.mu.Unlock()

	log.Info("loader: icons loaded", "count", len(icons))
	for _, deliver := range waiters {
		deliver(icons)
	}
}

// sortByLabel orders icons by label using the collation rules of tag.
// Ties keep their source order.
func sortByLabel(icons []adaptive.Icon, tag language.Tag) {
	c := collate.New(tag, collate.Loose)
	slices.SortStableFunc(icons, func(a, b adaptive.Icon) int {
		return c.CompareString(a.Label(), b.Label())
	})
}
