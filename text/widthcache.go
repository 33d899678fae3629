package text

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// widthShards is the number of cache shards. Must be a power of 2.
	widthShards = 16

	// shardMask is used for fast shard selection.
	shardMask = widthShards - 1

	// DefaultCacheCapacity is the default maximum entries per shard.
	DefaultCacheCapacity = 512
)

// widthKey identifies a measurement. The style key is part of the key, so a
// font change never reads a width measured in another style.
type widthKey struct {
	style string
	text  string
}

type widthEntry struct {
	key   widthKey
	width float64
}

// widthShard is an LRU list plus index guarded by its own mutex.
type widthShard struct {
	mu      sync.Mutex
	entries map[widthKey]*list.Element
	lru     *list.List
}

// CachedMeasurer memoises the widths returned by another Measurer.
//
// Wrapping and hit-testing measure the same prefixes over and over while a
// user types; the cache turns those into map lookups. It is sharded to keep
// lock contention low when several canvases share one measurer.
type CachedMeasurer struct {
	inner    Measurer
	shards   [widthShards]*widthShard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCachedMeasurer wraps inner with an LRU cache holding up to capacity
// entries per shard. If capacity <= 0, DefaultCacheCapacity is used.
func NewCachedMeasurer(inner Measurer, capacity int) *CachedMeasurer {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &CachedMeasurer{inner: inner, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &widthShard{
			entries: make(map[widthKey]*list.Element),
			lru:     list.New(),
		}
	}
	return c
}

func (c *CachedMeasurer) shard(k widthKey) *widthShard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.style)) // fnv.Write never returns an error
	_, _ = h.Write([]byte(k.text))
	return c.shards[h.Sum64()&shardMask]
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(s string, style Style) float64 {
	if s == "" {
		return 0
	}
	k := widthKey{style: style.Key(), text: s}
	sh := c.shard(k)

	sh.mu.Lock()
	if el, ok := sh.entries[k]; ok {
		sh.lru.MoveToFront(el)
		w := el.Value.(*widthEntry).width
		sh.mu.Unlock()
		c.hits.Add(1)
		return w
	}
	sh.mu.Unlock()

	// Measure outside the lock; the inner measurer may be slow.
	c.misses.Add(1)
	w := width(c.inner, s, style)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if el, ok := sh.entries[k]; ok {
		sh.lru.MoveToFront(el)
		return w
	}
	for sh.lru.Len() >= c.capacity {
		oldest := sh.lru.Back()
		sh.lru.Remove(oldest)
		delete(sh.entries, oldest.Value.(*widthEntry).key)
		c.evictions.Add(1)
	}
	sh.entries[k] = sh.lru.PushFront(&widthEntry{key: k, width: w})
	return w
}

// Purge drops every cached width, e.g. after registering a font that
// replaces a family.
func (c *CachedMeasurer) Purge() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.entries = make(map[widthKey]*list.Element)
		sh.lru.Init()
		sh.mu.Unlock()
	}
}

// Stats returns current cache statistics.
func (c *CachedMeasurer) Stats() CacheStats {
	n := 0
	for _, sh := range c.shards {
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return CacheStats{
		Len:       n,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
