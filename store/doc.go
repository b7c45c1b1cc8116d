// Package store persists collected posts in SQLite.
//
// A [PostStore] is the durable side of the collection cycle: the
// ingest layer saves each fetched batch with [PostStore.SavePosts],
// and on startup the full corpus is reloaded with
// [PostStore.LoadPosts] and handed to the search service for
// indexing. Saves are upserts keyed by post ID, so re-fetching a
// subreddit refreshes scores and comment counts in place.
package store
