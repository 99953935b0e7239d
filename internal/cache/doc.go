// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, *Pixmap](64)
//	c.Set("key", pm)
//	pm, ok := c.Get("key")
//
// # Eviction
//
// The cache holds at most its capacity; inserting beyond it evicts the least
// recently used entry. Get, Set and GetOrCreate all count as a use.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
