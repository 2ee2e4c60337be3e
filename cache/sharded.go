// Package cache interns finalized display lists so that structurally equal
// recordings share one instance.
//
// Interning lets callers replace a freshly built list with an earlier
// equal one, which keeps identity-based checks (such as a renderer's
// per-list raster cache) hitting across frames that re-record the same
// content.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/displaylist"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum fingerprints per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Stats holds cache statistics.
type Stats struct {
	// Len is the number of interned lists.
	Len int
	// Capacity is the per-shard fingerprint capacity.
	Capacity int
	// TotalCapacity is Capacity times DefaultShardCount.
	TotalCapacity int
	Hits          uint64
	Misses        uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate   float64
	Evictions uint64
}

// Cache is a thread-safe, sharded LRU set of display lists keyed by
// DisplayList.Fingerprint.
//
// Features:
//   - 16 shards selected by fingerprint bits
//   - LRU eviction with configurable capacity per shard
//   - Fingerprint collisions resolved with DisplayList.Equals
//   - Atomic statistics for monitoring
type Cache struct {
	shards   [DefaultShardCount]*shard
	capacity int // Per-shard capacity

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a single shard of the cache with its own mutex.
type shard struct {
	mu      sync.Mutex
	entries map[uint64]*lruNode
	lru     lruList
}

// New creates a cache holding up to capacity fingerprints per shard.
// Total capacity is approximately capacity * DefaultShardCount (16).
//
// If capacity <= 0, DefaultCapacity (256) is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[uint64]*lruNode)}
	}
	return c
}

func (c *Cache) shardFor(fingerprint uint64) *shard {
	return c.shards[fingerprint&shardMask]
}

// Intern returns a previously interned list equal to dl, or stores dl and
// returns it. A nil dl returns nil.
func (c *Cache) Intern(dl *displaylist.DisplayList) *displaylist.DisplayList {
	if dl == nil {
		return nil
	}
	fp := dl.Fingerprint()
	s := c.shardFor(fp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if node, ok := s.entries[fp]; ok {
		s.lru.MoveToFront(node)
		for _, have := range node.lists {
			if have.Equals(dl) {
				c.hits.Add(1)
				return have
			}
		}
		c.misses.Add(1)
		node.lists = append(node.lists, dl)
		return dl
	}

	c.misses.Add(1)
	for s.lru.Len() >= c.capacity {
		oldest := s.lru.RemoveOldest()
		delete(s.entries, oldest.fingerprint)
		c.evictions.Add(uint64(len(oldest.lists)))
	}
	s.entries[fp] = s.lru.PushFront(fp, dl)
	return dl
}

// Get returns the earliest interned list with the given fingerprint.
//
// On a hit the entry becomes the most recently used.
func (c *Cache) Get(fingerprint uint64) (*displaylist.DisplayList, bool) {
	s := c.shardFor(fingerprint)

	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.entries[fingerprint]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	s.lru.MoveToFront(node)
	c.hits.Add(1)
	return node.lists[0], true
}

// Delete removes every list with the given fingerprint.
// Returns true if anything was removed.
func (c *Cache) Delete(fingerprint uint64) bool {
	s := c.shardFor(fingerprint)

	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.entries[fingerprint]
	if !ok {
		return false
	}
	s.lru.Remove(node)
	delete(s.entries, fingerprint)
	return true
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[uint64]*lruNode)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of interned lists across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		for _, node := range s.entries {
			total += len(node.lists)
		}
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * DefaultShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
