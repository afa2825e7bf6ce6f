package chain

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes transition costs. Each key is written at most once: Store
// keeps the first value it sees. It is safe for concurrent use, though the
// usual arrangement is one Cache per query or per worker.
type Cache struct {
	mu      sync.RWMutex
	entries map[Transition]uint64
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// CacheStats is a point-in-time view of a Cache.
type CacheStats struct {
	Entries int    `json:"entries" yaml:"entries"`
	Hits    uint64 `json:"hits" yaml:"hits"`
	Misses  uint64 `json:"misses" yaml:"misses"`
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Transition]uint64)}
}

// Get returns the cost stored for t and counts a hit or a miss.
func (c *Cache) Get(t Transition) (uint64, bool) {
	c.mu.RLock()
	v, ok := c.entries[t]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Store records cost for t unless t is already present, and returns the
// value now held for t.
func (c *Cache) Store(t Transition, cost uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[t]; ok {
		return v
	}
	c.entries[t] = cost
	return cost
}

// Len returns the number of stored transitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a copy of the stored entries.
func (c *Cache) Snapshot() map[Transition]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Transition]uint64, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Stats returns entry, hit and miss counts.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
