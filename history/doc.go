// Package history records per-user query events with a per-user
// retention cap.
//
// The store is independent of the ranking path: the search facade
// records an event after a page is served, and a reporting surface
// reads it back. Entries are scoped per user and never shared across
// users; once a user's entry count exceeds the cap, the oldest entries
// are discarded. Reads return most-recent-first, with an optional
// limit applied after the cap has already trimmed retention.
package history
