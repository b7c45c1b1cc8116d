// Package search is the unified facade over the threadlens pipeline.
//
// A [Service] wires the document processor, ranking engine, result
// cache and history store together and exposes the serving path:
//
//	query -> cache check -> (miss) process query like a document ->
//	rank -> slice page -> cache store -> record history
//
// History recording happens after the page is materialized, off the
// scoring critical path, and only when the caller supplies a user ID.
//
// Indexing is cycle-based: [Service.IndexPosts] replaces the corpus
// and invalidates every cached page, after which concurrent
// [Service.Search] calls are safe.
package search
