package flametext

// widthSentinel is the probe string measured at the start of every pass.
// There is no direct "font changed" notification from a drawing surface, so
// a change in this string's measured width is the signal that the active
// font, size, or device pixel ratio changed since the last pass and every
// cached width is stale. The glyph mix covers caps, descenders, and the
// ellipsis so size changes cannot cancel out to the same width.
const widthSentinel = "Mg|W…"

// MetricsCache memoizes the measured pixel width of strings under the
// currently active font.
//
// The first Measure call for a string measures it through the surface and
// stores the result keyed by the exact string; subsequent calls return the
// cached width. BeginPass runs the sentinel probe and wipes the cache when
// the font changed.
//
// A capacity of 0 lets the cache grow without bound, which matches typical
// flamegraph sessions where label cardinality is naturally small. A positive
// capacity bounds the cache with least-recently-used eviction.
//
// MetricsCache is owned by one Renderer and is not safe for concurrent use.
type MetricsCache struct {
	capacity int
	entries  map[string]*metricsEntry
	lru      *lruList[string] // nil when unbounded

	hits      uint64
	misses    uint64
	evictions uint64
	resets    uint64
}

// metricsEntry holds a cached width with its LRU node (nil when unbounded).
type metricsEntry struct {
	width float64
	node  *lruNode[string]
}

// NewMetricsCache creates a metrics cache. capacity <= 0 means unbounded;
// a positive capacity enables LRU eviction once that many strings are held.
func NewMetricsCache(capacity int) *MetricsCache {
	c := &MetricsCache{
		capacity: capacity,
		entries:  make(map[string]*metricsEntry),
	}
	if capacity > 0 {
		c.lru = newLRUList[string]()
	}
	return c
}

// BeginPass runs the font-change probe. Call once before a render pass,
// after the surface's font has been configured.
//
// If the sentinel has not been measured yet (first pass), its width is
// cached and the pass proceeds. If the freshly measured width
// differs from the cached one, the active font or scale changed and the
// whole cache is discarded and reseeded with the sentinel's new width.
func (c *MetricsCache) BeginPass(s Surface) {
	w := s.MeasureText(widthSentinel)
	if e, ok := c.entries[widthSentinel]; ok {
		if e.width != w {
			Logger().Debug("flametext: font change detected, resetting metrics cache",
				"entries", len(c.entries), "sentinel_was", e.width, "sentinel_now", w)
			c.reset()
			c.put(widthSentinel, w)
		}
		return
	}
	c.put(widthSentinel, w)
}

// Measure returns the width of text in physical pixels under the surface's
// active font, measuring through the surface only on a cache miss.
func (c *MetricsCache) Measure(s Surface, text string) float64 {
	if e, ok := c.entries[text]; ok {
		c.hits++
		if c.lru != nil {
			c.lru.MoveToFront(e.node)
		}
		return e.width
	}
	c.misses++
	w := s.MeasureText(text)
	c.put(text, w)
	return w
}

// Invalidate discards every cached width. Collaborators that do observe
// font or device-pixel-ratio changes directly can call this instead of
// relying on the sentinel probe.
func (c *MetricsCache) Invalidate() {
	c.reset()
}

// Len returns the number of cached strings.
func (c *MetricsCache) Len() int {
	return len(c.entries)
}

// Capacity returns the configured capacity, 0 meaning unbounded.
func (c *MetricsCache) Capacity() int {
	return c.capacity
}

func (c *MetricsCache) put(text string, w float64) {
	e := &metricsEntry{width: w}
	// The sentinel is pinned outside the LRU: evicting it would make the
	// next BeginPass mistake a font change for a first run and serve stale
	// widths. It lives in the map with a nil node and never counts against
	// the capacity.
	if c.lru != nil && text != widthSentinel {
		for c.lru.Len() >= c.capacity {
			oldest, ok := c.lru.RemoveOldest()
			if !ok {
				break
			}
			delete(c.entries, oldest)
			c.evictions++
		}
		e.node = c.lru.PushFront(text)
	}
	c.entries[text] = e
}

func (c *MetricsCache) reset() {
	c.entries = make(map[string]*metricsEntry)
	if c.lru != nil {
		c.lru.Clear()
	}
	c.resets++
}

// CacheStats contains metrics-cache statistics for monitoring.
type CacheStats struct {
	// Len is the current number of cached strings.
	Len int
	// Capacity is the configured capacity, 0 meaning unbounded.
	Capacity int
	// Hits is the number of Measure calls answered from the cache.
	Hits uint64
	// Misses is the number of Measure calls that hit the surface.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was measured.
	HitRate float64
	// Evictions is the number of strings evicted by the capacity bound.
	Evictions uint64
	// Resets is the number of wholesale invalidations (font changes plus
	// explicit Invalidate calls).
	Resets uint64
}

// Stats returns current cache statistics.
func (c *MetricsCache) Stats() CacheStats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return CacheStats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
		Resets:    c.resets,
	}
}
