package resultcache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/threadlens/threadlens/ranking"
)

func newTestCache(t *testing.T, cfg Config) (*Cache, *time.Time) {
	t.Helper()

	cache, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }
	return cache, &clock
}

func page(query string) *ranking.SearchResults {
	return &ranking.SearchResults{
		Results:  []ranking.SearchResult{{DocID: "t3_" + query}},
		Page:     1,
		PageSize: 10,
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{TTL: 0, MaxSize: 10}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero TTL: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(Config{TTL: time.Second, MaxSize: 0}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero MaxSize: err = %v, want ErrInvalidConfig", err)
	}
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	want := page("hit")
	cache.Set("go channels", 1, 10, want)

	got, ok := cache.Get("go channels", 1, 10)
	if !ok {
		t.Fatal("expected a hit")
	}
	if got != want {
		t.Errorf("got %+v, want the stored page", got)
	}

	// Same query, different page is a distinct key.
	if _, ok := cache.Get("go channels", 2, 10); ok {
		t.Error("different page should miss")
	}
	if _, ok := cache.Get("go channels", 1, 20); ok {
		t.Error("different page size should miss")
	}
}

func TestCache_KeyNormalization(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	cache.Set("Go  Channels", 1, 10, page("norm"))

	if _, ok := cache.Get("go channels", 1, 10); !ok {
		t.Error("case and whitespace variants should share a key")
	}
}

func TestCache_LRUEviction(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 3})

	for i := 1; i <= 3; i++ {
		cache.Set(fmt.Sprintf("q%d", i), 1, 10, page("x"))
	}

	// Inserting a 4th distinct key evicts exactly the
	// least-recently-touched entry, q1.
	cache.Set("q4", 1, 10, page("x"))

	if _, ok := cache.Get("q1", 1, 10); ok {
		t.Error("q1 should have been evicted")
	}
	for _, q := range []string{"q2", "q3", "q4"} {
		if _, ok := cache.Get(q, 1, 10); !ok {
			t.Errorf("%s should still be cached", q)
		}
	}
}

func TestCache_GetTouchChangesEvictionVictim(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 3})

	for i := 1; i <= 3; i++ {
		cache.Set(fmt.Sprintf("q%d", i), 1, 10, page("x"))
	}

	// Touch q1 so q2 becomes the LRU entry.
	if _, ok := cache.Get("q1", 1, 10); !ok {
		t.Fatal("q1 should be cached")
	}

	cache.Set("q4", 1, 10, page("x"))

	if _, ok := cache.Get("q2", 1, 10); ok {
		t.Error("q2 should have been evicted after q1 was touched")
	}
	if _, ok := cache.Get("q1", 1, 10); !ok {
		t.Error("q1 should have survived")
	}
}

func TestCache_OverwriteDoesNotGrow(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 3})

	cache.Set("q", 1, 10, page("a"))
	cache.Set("q", 1, 10, page("b"))

	if size := cache.Stats().Size; size != 1 {
		t.Errorf("size = %d after overwrite, want 1", size)
	}

	got, ok := cache.Get("q", 1, 10)
	if !ok || got.Results[0].DocID != "t3_b" {
		t.Errorf("overwrite did not replace the value: %+v", got)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, clock := newTestCache(t, Config{TTL: time.Second, MaxSize: 10})

	cache.Set("q", 1, 10, page("x"))

	// Retrievable immediately.
	if _, ok := cache.Get("q", 1, 10); !ok {
		t.Fatal("fresh entry should be retrievable")
	}

	// Absent slightly more than one second later, counted as a miss.
	*clock = clock.Add(1100 * time.Millisecond)
	if _, ok := cache.Get("q", 1, 10); ok {
		t.Fatal("expired entry should be absent")
	}

	stats := cache.Stats()
	if stats.Size != 0 {
		t.Errorf("expired entry not evicted, size = %d", stats.Size)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
}

func TestCache_HitRate(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	// Zero requests: no division by zero.
	if rate := cache.Stats().HitRate; rate != 0 {
		t.Errorf("hit rate with no requests = %f, want 0", rate)
	}

	cache.Set("q", 1, 10, page("x"))
	cache.Get("q", 1, 10)       // hit
	cache.Get("other", 1, 10)   // miss

	if rate := cache.Stats().HitRate; rate != 0.5 {
		t.Errorf("hit rate = %f, want 0.5", rate)
	}
}

func TestCache_ClearKeepsCounters(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	cache.Set("q", 1, 10, page("x"))
	cache.Get("q", 1, 10)
	cache.Get("miss", 1, 10)

	cache.Clear()

	stats := cache.Stats()
	if stats.Size != 0 {
		t.Errorf("size after Clear = %d, want 0", stats.Size)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("counters reset by Clear: %+v", stats)
	}
}

func TestCache_ResetStatsKeepsEntries(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	cache.Set("q", 1, 10, page("x"))
	cache.Get("q", 1, 10)

	cache.ResetStats()

	stats := cache.Stats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("counters not zeroed: %+v", stats)
	}
	if _, ok := cache.Get("q", 1, 10); !ok {
		t.Error("ResetStats should not remove entries")
	}
}

func TestCache_InvalidateWildcard(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	cache.Set("a", 1, 10, page("x"))
	cache.Set("b", 1, 10, page("x"))

	if removed := cache.Invalidate("*"); removed != 2 {
		t.Errorf("Invalidate(*) removed %d, want 2", removed)
	}
	if size := cache.Stats().Size; size != 0 {
		t.Errorf("size after Invalidate(*) = %d, want 0", size)
	}
}

func TestCache_InvalidatePrefixAndExact(t *testing.T) {
	cache, _ := newTestCache(t, Config{TTL: time.Minute, MaxSize: 10})

	cache.Set("go channels", 1, 10, page("x"))
	cache.Set("go generics", 1, 10, page("x"))
	cache.Set("rust traits", 1, 10, page("x"))

	if removed := cache.Invalidate("go *"); removed != 2 {
		t.Errorf("prefix invalidate removed %d, want 2", removed)
	}
	if _, ok := cache.Get("rust traits", 1, 10); !ok {
		t.Error("non-matching entry should survive prefix invalidation")
	}

	if removed := cache.Invalidate("rust traits"); removed != 1 {
		t.Errorf("exact invalidate removed %d, want 1", removed)
	}
}
