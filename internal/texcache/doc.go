// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texcache implements the version-aware LRU cache behind the
// MirrorLayer's texture store.
//
// Entries are keyed by object identity only, never by zoom level, and
// carry the object version they were captured at. A lookup returns the
// stored version alongside the value so the caller can distinguish a
// fresh hit from a stale one; the cache itself never serves a value it
// claims is current when it is not.
//
// The entry bound is strict: after any sequence of Put calls,
// Len() <= Capacity(). Eviction is least-recently-used, with access
// order maintained by an intrusive doubly-linked list for O(1)
// updates.
//
// The cache is not safe for concurrent use. The viewport engine
// mutates it from a single goroutine, so per the engine's concurrency
// model no locking is required here.
package texcache
