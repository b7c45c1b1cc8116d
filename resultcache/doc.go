// Package resultcache memoizes fully materialized search result pages.
//
// Entries are keyed by (normalized query, page, page size) and live in
// a single structure: a map for O(1) lookup plus an intrusive recency
// list for strict LRU eviction, both guarded by one mutex so readers
// never observe a torn eviction. Expiry is lazy: an entry older than
// the TTL is treated as absent (and evicted) on the read that finds
// it; there is no background sweep.
//
// Hit/miss counters persist across Clear so dashboards keep their
// history; ResetStats zeroes the counters without touching entries.
package resultcache
