package history

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidConfig reports an unusable store configuration.
var ErrInvalidConfig = errors.New("invalid history config")

// Config configures a Store.
type Config struct {
	// MaxEntriesPerUser caps retention per user. Must be positive.
	MaxEntriesPerUser int
}

// DefaultConfig returns the standard history configuration.
func DefaultConfig() Config {
	return Config{MaxEntriesPerUser: 50}
}

// Entry is one recorded query event.
type Entry struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// Store holds query history in memory, one capped list per user. Safe
// for concurrent use.
type Store struct {
	mu     sync.Mutex
	byUser map[string][]Entry // oldest first
	nextID int64

	maxPerUser int
	now        func() time.Time
}

// NewStore creates a Store with the given config.
func NewStore(cfg Config) (*Store, error) {
	if cfg.MaxEntriesPerUser <= 0 {
		return nil, fmt.Errorf("%w: MaxEntriesPerUser must be positive, got %d",
			ErrInvalidConfig, cfg.MaxEntriesPerUser)
	}
	return &Store{
		byUser:     make(map[string][]Entry),
		maxPerUser: cfg.MaxEntriesPerUser,
		now:        time.Now,
	}, nil
}

// AddEntry records a query event for userID with a fresh identifier
// and the current timestamp, then enforces the per-user cap by
// discarding the oldest entries.
func (s *Store) AddEntry(userID, query string, resultCount int) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry := Entry{
		ID:          s.nextID,
		UserID:      userID,
		Query:       query,
		ResultCount: resultCount,
		Timestamp:   s.now(),
	}

	entries := append(s.byUser[userID], entry)
	if over := len(entries) - s.maxPerUser; over > 0 {
		entries = append([]Entry(nil), entries[over:]...)
	}
	s.byUser[userID] = entries

	return entry
}

// History returns the user's entries most-recent-first. A positive
// limit truncates the result after ordering; limit <= 0 returns
// everything the cap retained.
func (s *Store) History(userID string, limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byUser[userID]
	out := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DeleteEntry removes the entry with the given id if it exists and
// belongs to userID, reporting whether a removal occurred. Cross-user
// deletion attempts always return false.
func (s *Store) DeleteEntry(userID string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byUser[userID]
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(s.byUser, userID)
		} else {
			s.byUser[userID] = entries
		}
		return true
	}
	return false
}

// ClearHistory removes all of the user's entries and returns how many
// were removed.
func (s *Store) ClearHistory(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.byUser[userID])
	delete(s.byUser, userID)
	return removed
}

// EntryCount returns the user's current entry count.
func (s *Store) EntryCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byUser[userID])
}

// Stats aggregates over all users currently tracked.
type Stats struct {
	TotalUsers        int     `json:"total_users"`
	TotalEntries      int     `json:"total_entries"`
	AvgEntriesPerUser float64 `json:"avg_entries_per_user"`
}

// Stats returns aggregate counts; all zero when the store is empty.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{TotalUsers: len(s.byUser)}
	for _, entries := range s.byUser {
		stats.TotalEntries += len(entries)
	}
	if stats.TotalUsers > 0 {
		stats.AvgEntriesPerUser = float64(stats.TotalEntries) / float64(stats.TotalUsers)
	}
	return stats
}
