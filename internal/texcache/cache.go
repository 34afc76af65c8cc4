// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texcache

import "github.com/google/uuid"

// DefaultCapacity is the entry bound used when a non-positive capacity
// is requested.
const DefaultCapacity = 256

// entry is a cache slot threaded on the intrusive LRU list.
// The list head is the most recently used entry, the tail the least.
type entry[V any] struct {
	id      uuid.UUID
	value   V
	version uint64
	atime   int64
	prev    *entry[V]
	next    *entry[V]
}

// Cache is a version-aware LRU cache keyed by object identity.
// release, if non-nil, is called for every value leaving the cache
// (replacement, deletion, eviction, clear) so the owner can free the
// underlying texture.
type Cache[V any] struct {
	entries map[uuid.UUID]*entry[V]
	head    *entry[V]
	tail    *entry[V]
	cap     int
	tick    int64
	release func(uuid.UUID, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats is the cache's read-only statistics snapshot.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64 // 0.0 to 1.0
	Evictions uint64
}

// New creates a cache bounded to capacity entries. A non-positive
// capacity selects DefaultCapacity.
func New[V any](capacity int, release func(uuid.UUID, V)) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[V]{
		entries: make(map[uuid.UUID]*entry[V]),
		cap:     capacity,
		release: release,
	}
}

// Lookup returns the cached value and the version it was captured at.
// A found entry is marked most recently used regardless of staleness;
// the caller decides whether the version is current. Misses and hits
// are counted for the hit-rate statistic.
func (c *Cache[V]) Lookup(id uuid.UUID) (V, uint64, bool) {
	e, ok := c.entries[id]
	if !ok {
		c.misses++
		var zero V
		return zero, 0, false
	}
	c.hits++
	c.touch(e)
	return e.value, e.version, true
}

// Contains reports whether id has a cache entry, without affecting
// access order or statistics.
func (c *Cache[V]) Contains(id uuid.UUID) bool {
	_, ok := c.entries[id]
	return ok
}

// Version returns the captured version for id without affecting access
// order or statistics.
func (c *Cache[V]) Version(id uuid.UUID) (uint64, bool) {
	e, ok := c.entries[id]
	if !ok {
		return 0, false
	}
	return e.version, true
}

// Put stores a value captured at the given version, replacing any
// existing entry for id (the replaced value is released). If the
// insert pushes the cache over capacity, least-recently-used entries
// are evicted until the bound holds again.
func (c *Cache[V]) Put(id uuid.UUID, version uint64, v V) {
	if e, ok := c.entries[id]; ok {
		if c.release != nil {
			c.release(id, e.value)
		}
		e.value = v
		e.version = version
		c.touch(e)
		return
	}
	e := &entry[V]{id: id, value: v, version: version}
	c.entries[id] = e
	c.pushFront(e)
	c.tick++
	e.atime = c.tick
	for len(c.entries) > c.cap {
		c.evictOldest()
	}
}

// Delete removes the entry for id, releasing its value.
// Returns true if an entry was removed.
func (c *Cache[V]) Delete(id uuid.UUID) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	c.unlink(e)
	delete(c.entries, id)
	if c.release != nil {
		c.release(id, e.value)
	}
	return true
}

// Clear removes all entries, releasing every value. Statistics are
// preserved; eviction counts are not incremented.
func (c *Cache[V]) Clear() {
	for id, e := range c.entries {
		if c.release != nil {
			c.release(id, e.value)
		}
	}
	c.entries = make(map[uuid.UUID]*entry[V])
	c.head = nil
	c.tail = nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int { return len(c.entries) }

// Capacity returns the entry bound.
func (c *Cache[V]) Capacity() int { return c.cap }

// Stats returns the statistics snapshot.
func (c *Cache[V]) Stats() Stats {
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.cap,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   rate,
		Evictions: c.evictions,
	}
}

// evictOldest removes the least recently used entry.
func (c *Cache[V]) evictOldest() {
	e := c.tail
	if e == nil {
		return
	}
	c.unlink(e)
	delete(c.entries, e.id)
	c.evictions++
	if c.release != nil {
		c.release(e.id, e.value)
	}
}

// touch marks e most recently used.
func (c *Cache[V]) touch(e *entry[V]) {
	c.tick++
	e.atime = c.tick
	if e == c.head {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *Cache[V]) pushFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *Cache[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
