package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/threadlens/threadlens/search"
)

const (
	serverName    = "threadlens"
	serverVersion = "1.0.0"

	defaultPageSize     = 10
	defaultHistoryLimit = 20
)

// Server serves search, cache and history tools over MCP.
type Server struct {
	svc *search.Service
	mcp *mcp.Server
}

// New creates a Server wrapping the search service.
func New(svc *search.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: "Search an archive of Reddit posts. Results are ranked by text relevance combined with recency, popularity and engagement. Supply a user_id to keep a per-user search history.",
	})

	s.addTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled or the
// transport closes.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

type searchPostsArgs struct {
	Query    string `json:"query" jsonschema:"Search query text"`
	Page     int    `json:"page,omitempty" jsonschema:"Result page, 1-based. Defaults to 1."`
	PageSize int    `json:"page_size,omitempty" jsonschema:"Results per page. Defaults to 10."`
	UserID   string `json:"user_id,omitempty" jsonschema:"Record this search in the user's history. Leave empty for anonymous search."`
}

type historyArgs struct {
	UserID string `json:"user_id" jsonschema:"User whose history to read"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum entries to return. Defaults to 20."`
}

type deleteHistoryArgs struct {
	UserID  string `json:"user_id" jsonschema:"User the entry belongs to"`
	EntryID int64  `json:"entry_id" jsonschema:"ID of the history entry to delete"`
}

type clearHistoryArgs struct {
	UserID string `json:"user_id" jsonschema:"User whose history to clear"`
}

type noArgs struct{}

func (s *Server) addTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_posts",
		Description: "Search indexed posts, returning a ranked result page with snippets",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args searchPostsArgs) (*mcp.CallToolResult, any, error) {
		result, err := s.searchPosts(ctx, args)
		if err != nil {
			return nil, nil, err
		}
		return textResult(result)
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_search_history",
		Description: "Return a user's recent searches, most recent first",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args historyArgs) (*mcp.CallToolResult, any, error) {
		result, err := s.getHistory(args)
		if err != nil {
			return nil, nil, err
		}
		return textResult(result)
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_search_history_entry",
		Description: "Delete one entry from a user's search history",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args deleteHistoryArgs) (*mcp.CallToolResult, any, error) {
		result, err := s.deleteHistoryEntry(args)
		if err != nil {
			return nil, nil, err
		}
		return textResult(result)
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "clear_search_history",
		Description: "Delete all of a user's search history",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args clearHistoryArgs) (*mcp.CallToolResult, any, error) {
		result, err := s.clearHistory(args)
		if err != nil {
			return nil, nil, err
		}
		return textResult(result)
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "cache_stats",
		Description: "Report result cache hit/miss counters and current size",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args noArgs) (*mcp.CallToolResult, any, error) {
		return textResult(s.svc.CacheStats())
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "history_stats",
		Description: "Report aggregate search history counts across all users",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args noArgs) (*mcp.CallToolResult, any, error) {
		return textResult(s.svc.HistoryStats())
	})
}

func (s *Server) searchPosts(ctx context.Context, args searchPostsArgs) (map[string]any, error) {
	if args.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if args.Page == 0 {
		args.Page = 1
	}
	if args.PageSize == 0 {
		args.PageSize = defaultPageSize
	}

	results, err := s.svc.Search(ctx, args.Query, args.Page, args.PageSize, args.UserID)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return map[string]any{
		"query":         args.Query,
		"results":       results.Results,
		"total_count":   results.TotalCount,
		"page":          results.Page,
		"page_size":     results.PageSize,
		"query_time_ms": results.QueryTimeMs,
	}, nil
}

func (s *Server) getHistory(args historyArgs) (map[string]any, error) {
	if args.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if args.Limit == 0 {
		args.Limit = defaultHistoryLimit
	}

	entries := s.svc.History(args.UserID, args.Limit)
	return map[string]any{
		"user_id": args.UserID,
		"entries": entries,
		"count":   len(entries),
	}, nil
}

func (s *Server) deleteHistoryEntry(args deleteHistoryArgs) (map[string]any, error) {
	if args.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	deleted := s.svc.DeleteHistoryEntry(args.UserID, args.EntryID)
	return map[string]any{
		"user_id":  args.UserID,
		"entry_id": args.EntryID,
		"deleted":  deleted,
	}, nil
}

func (s *Server) clearHistory(args clearHistoryArgs) (map[string]any, error) {
	if args.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	removed := s.svc.ClearHistory(args.UserID)
	return map[string]any{
		"user_id": args.UserID,
		"removed": removed,
	}, nil
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
