// Package ingest fetches subreddit listings from the Reddit JSON API.
//
// A [Client] wraps an injected http.Client with a request rate
// limiter and a descriptive User-Agent (Reddit rejects anonymous
// agents). [Client.FetchSubreddit] pages through a listing with the
// "after" cursor until the requested number of posts is collected or
// the listing ends, returning [model.Post] values ready for the store
// and the search index.
package ingest
