package main

import "sync/atomic"

const defaultLeafCacheSize = 1 << 16

type leafEntry struct {
	key   uint64
	score Score
	valid bool
}

// LeafCache remembers static evaluations of search leaves, keyed by the
// board's Zobrist hash and the candidate window. It is direct-mapped: a new
// entry overwrites whatever shared its slot.
type LeafCache struct {
	mask    uint64
	entries []leafEntry
	hits    atomic.Uint64
	misses  atomic.Uint64
}

func NewLeafCache(size uint64) *LeafCache {
	if size < 1 {
		size = 1
	}
	if size&(size-1) != 0 {
		size = nextPowerOfTwo(size)
	}
	return &LeafCache{mask: size - 1, entries: make([]leafEntry, size)}
}

func (c *LeafCache) Probe(key uint64) (Score, bool) {
	entry := c.entries[key&c.mask]
	if entry.valid && entry.key == key {
		c.hits.Add(1)
		return entry.score, true
	}
	c.misses.Add(1)
	return 0, false
}

func (c *LeafCache) Store(key uint64, score Score) {
	c.entries[key&c.mask] = leafEntry{key: key, score: score, valid: true}
}

func (c *LeafCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func nextPowerOfTwo(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}
