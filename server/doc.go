// Package server exposes the search service over the Model Context
// Protocol.
//
// A [Server] registers one MCP tool per service operation
// (search_posts, get_search_history, delete_search_history_entry,
// clear_search_history, cache_stats, history_stats) and serves them
// over stdio. Tool results are JSON documents in a single text
// content block.
package server
