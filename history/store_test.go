package history

import (
	"errors"
	"fmt"
	"testing"
)

func newTestStore(t *testing.T, maxPerUser int) *Store {
	t.Helper()

	store, err := NewStore(Config{MaxEntriesPerUser: maxPerUser})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestNewStore_InvalidConfig(t *testing.T) {
	if _, err := NewStore(Config{MaxEntriesPerUser: 0}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestAddEntry_AssignsFreshIDs(t *testing.T) {
	store := newTestStore(t, 10)

	first := store.AddEntry("alice", "go channels", 5)
	second := store.AddEntry("alice", "go generics", 3)

	if first.ID == second.ID {
		t.Errorf("entries share ID %d", first.ID)
	}
	if first.UserID != "alice" || first.Query != "go channels" || first.ResultCount != 5 {
		t.Errorf("entry fields wrong: %+v", first)
	}
	if first.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestAddEntry_PerUserCap(t *testing.T) {
	store := newTestStore(t, 5)

	for i := 1; i <= 10; i++ {
		store.AddEntry("alice", fmt.Sprintf("query %d", i), i)
	}

	entries := store.History("alice", 0)
	if len(entries) != 5 {
		t.Fatalf("retained %d entries, want 5", len(entries))
	}

	// Exactly the 5 most recent, most-recent-first.
	for i, entry := range entries {
		want := fmt.Sprintf("query %d", 10-i)
		if entry.Query != want {
			t.Errorf("entries[%d].Query = %q, want %q", i, entry.Query, want)
		}
	}
}

func TestAddEntry_CapIsPerUserNotGlobal(t *testing.T) {
	store := newTestStore(t, 3)

	for i := 0; i < 3; i++ {
		store.AddEntry("alice", "a", 1)
		store.AddEntry("bob", "b", 1)
	}

	if got := store.EntryCount("alice"); got != 3 {
		t.Errorf("alice count = %d, want 3", got)
	}
	if got := store.EntryCount("bob"); got != 3 {
		t.Errorf("bob count = %d, want 3", got)
	}
}

func TestHistory_LimitAppliedAfterCap(t *testing.T) {
	store := newTestStore(t, 5)

	for i := 1; i <= 10; i++ {
		store.AddEntry("alice", fmt.Sprintf("query %d", i), i)
	}

	limited := store.History("alice", 2)
	if len(limited) != 2 {
		t.Fatalf("got %d entries, want 2", len(limited))
	}
	// The cap retained queries 6..10; the limit then takes the two
	// most recent of those.
	if limited[0].Query != "query 10" || limited[1].Query != "query 9" {
		t.Errorf("limited = [%q, %q], want [query 10, query 9]",
			limited[0].Query, limited[1].Query)
	}
}

func TestHistory_UnknownUser(t *testing.T) {
	store := newTestStore(t, 5)

	if got := store.History("nobody", 0); len(got) != 0 {
		t.Errorf("unknown user history = %v, want empty", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	store := newTestStore(t, 10)

	entry := store.AddEntry("alice", "secret query", 1)
	store.AddEntry("alice", "other query", 1)

	if !store.DeleteEntry("alice", entry.ID) {
		t.Fatal("DeleteEntry should report removal")
	}
	if store.EntryCount("alice") != 1 {
		t.Errorf("count = %d after delete, want 1", store.EntryCount("alice"))
	}

	// Deleting again finds nothing.
	if store.DeleteEntry("alice", entry.ID) {
		t.Error("second delete should return false")
	}
}

func TestDeleteEntry_CrossUser(t *testing.T) {
	store := newTestStore(t, 10)

	entry := store.AddEntry("alice", "query", 1)

	if store.DeleteEntry("bob", entry.ID) {
		t.Error("cross-user delete should return false")
	}
	if store.EntryCount("alice") != 1 {
		t.Error("alice's entry should survive a cross-user delete attempt")
	}
}

func TestClearHistory(t *testing.T) {
	store := newTestStore(t, 10)

	store.AddEntry("alice", "one", 1)
	store.AddEntry("alice", "two", 1)

	if removed := store.ClearHistory("alice"); removed != 2 {
		t.Errorf("ClearHistory removed %d, want 2", removed)
	}
	if removed := store.ClearHistory("alice"); removed != 0 {
		t.Errorf("second ClearHistory removed %d, want 0", removed)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t, 10)

	empty := store.Stats()
	if empty.TotalUsers != 0 || empty.TotalEntries != 0 || empty.AvgEntriesPerUser != 0 {
		t.Errorf("empty store stats = %+v, want zeros", empty)
	}

	store.AddEntry("alice", "one", 1)
	store.AddEntry("bob", "two", 1)
	store.AddEntry("bob", "three", 1)

	stats := store.Stats()
	if stats.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", stats.TotalUsers)
	}
	if stats.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", stats.TotalEntries)
	}
	if stats.AvgEntriesPerUser != 1.5 {
		t.Errorf("AvgEntriesPerUser = %f, want 1.5", stats.AvgEntriesPerUser)
	}
}
