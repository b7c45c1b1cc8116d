package resultcache

import (
	"container/list"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/threadlens/threadlens/ranking"
)

// ErrInvalidConfig reports an unusable cache configuration.
var ErrInvalidConfig = errors.New("invalid cache config")

// Config configures a Cache. Both fields must be positive.
type Config struct {
	// TTL is the maximum entry age before it is treated as absent.
	TTL time.Duration

	// MaxSize is the maximum number of distinct keys held at once.
	MaxSize int
}

// DefaultConfig returns the standard cache configuration.
func DefaultConfig() Config {
	return Config{
		TTL:     5 * time.Minute,
		MaxSize: 1000,
	}
}

// key identifies one cached page.
type key struct {
	query    string
	page     int
	pageSize int
}

// entry is the stored value plus the bookkeeping the LRU needs.
type entry struct {
	key        key
	value      *ranking.SearchResults
	insertedAt time.Time
}

// Cache is a bounded, time-limited store of result pages. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[key]*list.Element
	order   *list.List // front is most recently used
	hits    uint64
	misses  uint64

	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// New creates a Cache with the given config.
func New(cfg Config) (*Cache, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("%w: TTL must be positive, got %v", ErrInvalidConfig, cfg.TTL)
	}
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: MaxSize must be positive, got %d", ErrInvalidConfig, cfg.MaxSize)
	}
	return &Cache{
		entries: make(map[key]*list.Element),
		order:   list.New(),
		ttl:     cfg.TTL,
		maxSize: cfg.MaxSize,
		now:     time.Now,
	}, nil
}

// NormalizeQuery canonicalizes a query string for use as a cache key:
// lower-cased with whitespace runs collapsed to single spaces.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Get returns the cached page for (query, page, pageSize) if present
// and not expired. An expired entry is evicted and counted as a miss;
// a hit marks the entry most-recently-used.
func (c *Cache) Get(query string, page, pageSize int) (*ranking.SearchResults, bool) {
	k := key{query: NormalizeQuery(query), page: page, pageSize: pageSize}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[k]
	if !ok {
		c.misses++
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.now().Sub(ent.insertedAt) > c.ttl {
		c.removeLocked(elem, ent)
		c.misses++
		return nil, false
	}

	c.hits++
	c.order.MoveToFront(elem)
	return ent.value, true
}

// Set inserts or overwrites the entry for (query, page, pageSize),
// stamping it with the current time. When the insertion would exceed
// MaxSize distinct keys, the least-recently-used entry is evicted
// first.
func (c *Cache) Set(query string, page, pageSize int, results *ranking.SearchResults) {
	k := key{query: NormalizeQuery(query), page: page, pageSize: pageSize}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[k]; ok {
		ent := elem.Value.(*entry)
		ent.value = results
		ent.insertedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	ent := &entry{key: k, value: results, insertedAt: c.now()}
	c.entries[k] = c.order.PushFront(ent)
}

// Invalidate removes entries matching pattern and returns how many
// were removed. Pattern "*" clears every entry; "prefix*" removes
// entries whose normalized query starts with prefix; any other value
// removes entries whose normalized query equals it exactly (all pages).
func (c *Cache) Invalidate(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "*" {
		removed := len(c.entries)
		c.entries = make(map[key]*list.Element)
		c.order.Init()
		return removed
	}

	match := func(q string) bool { return q == NormalizeQuery(pattern) }
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		p := NormalizeQuery(prefix)
		match = func(q string) bool { return strings.HasPrefix(q, p) }
	}

	removed := 0
	for k, elem := range c.entries {
		if match(k.query) {
			c.removeLocked(elem, elem.Value.(*entry))
			removed++
		}
	}
	return removed
}

// Clear removes every entry. Hit/miss counters are left untouched and
// persist across content clears.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[key]*list.Element)
	c.order.Init()
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Size    int     `json:"size"`
}

// Stats returns the current counters. HitRate is 0 when no requests
// have been counted.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Hits: c.hits, Misses: c.misses, Size: len(c.entries)}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// ResetStats zeroes the hit/miss counters without touching stored
// entries.
func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hits = 0
	c.misses = 0
}

func (c *Cache) removeLocked(elem *list.Element, ent *entry) {
	c.order.Remove(elem)
	delete(c.entries, ent.key)
}

func (c *Cache) evictOldestLocked() {
	back := c.order.Back()
	if back == nil {
		// Entries exist but the recency order is empty: the two
		// structures have diverged and nothing further can be
		// trusted.
		panic("resultcache: entry map and recency order out of sync")
	}
	ent := back.Value.(*entry)
	if _, ok := c.entries[ent.key]; !ok {
		panic("resultcache: recency order holds key missing from entry map")
	}
	c.removeLocked(back, ent)
}
