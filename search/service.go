package search

import (
	"context"
	"fmt"

	"github.com/threadlens/threadlens/history"
	"github.com/threadlens/threadlens/model"
	"github.com/threadlens/threadlens/ranking"
	"github.com/threadlens/threadlens/resultcache"
	"github.com/threadlens/threadlens/textproc"
)

// Options configures a Service. Zero-value configs fall back to the
// package defaults.
type Options struct {
	// Ranking holds the scoring weights and BM25 parameters.
	Ranking ranking.Config

	// Cache configures the result cache.
	Cache resultcache.Config

	// History configures the per-user history store.
	History history.Config

	// Relevance is the optional semantic scorer. It is consulted
	// only when Ranking.RelevanceWeight is non-zero.
	Relevance ranking.RelevanceScorer
}

// Service combines processing, ranking, caching and history into one
// serving surface.
type Service struct {
	processor *textproc.Processor
	engine    *ranking.Engine
	cache     *resultcache.Cache
	hist      *history.Store
}

// New creates a Service with the given options.
func New(opts Options) (*Service, error) {
	if opts.Ranking == (ranking.Config{}) {
		opts.Ranking = ranking.DefaultConfig()
	}
	if opts.Cache == (resultcache.Config{}) {
		opts.Cache = resultcache.DefaultConfig()
	}
	if opts.History == (history.Config{}) {
		opts.History = history.DefaultConfig()
	}

	engine, err := ranking.NewEngine(opts.Ranking, opts.Relevance)
	if err != nil {
		return nil, fmt.Errorf("ranking engine: %w", err)
	}
	cache, err := resultcache.New(opts.Cache)
	if err != nil {
		return nil, fmt.Errorf("result cache: %w", err)
	}
	hist, err := history.NewStore(opts.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}

	return &Service{
		processor: textproc.NewProcessor(),
		engine:    engine,
		cache:     cache,
		hist:      hist,
	}, nil
}

// IndexPosts processes the posts and installs them as the corpus for
// the new collection cycle, invalidating every cached page. Posts that
// fail processing are reported but never abort the batch.
func (s *Service) IndexPosts(posts []model.Post) []textproc.BatchError {
	processed, failed := s.processor.ProcessBatch(posts)

	docs := make([]ranking.Doc, 0, len(processed))
	byID := make(map[string]model.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	for _, doc := range processed {
		docs = append(docs, ranking.Doc{Processed: doc, Post: byID[doc.DocID]})
	}

	s.engine.Index(docs)
	s.cache.Invalidate("*")
	return failed
}

// Search serves one result page. The cache is consulted first; on a
// miss the query is processed like a document, ranked, sliced and the
// page stored. When userID is non-empty the query event is recorded in
// the history store after the page is served.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int, userID string) (*ranking.SearchResults, error) {
	// Validate before touching the cache so invalid input does not
	// skew the miss counter.
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ranking.ErrInvalidPage, page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ranking.ErrInvalidPageSize, pageSize)
	}

	if cached, ok := s.cache.Get(query, page, pageSize); ok {
		if userID != "" {
			s.hist.AddEntry(userID, query, cached.TotalCount)
		}
		return cached, nil
	}

	results, err := s.engine.Search(ctx, query, page, pageSize)
	if err != nil {
		return nil, err
	}
	s.cache.Set(query, page, pageSize, results)

	if userID != "" {
		s.hist.AddEntry(userID, query, results.TotalCount)
	}
	return results, nil
}

// DocCount returns the number of indexed documents.
func (s *Service) DocCount() int {
	return s.engine.DocCount()
}

// CacheStats returns the result cache counters.
func (s *Service) CacheStats() resultcache.Stats {
	return s.cache.Stats()
}

// ResetCacheStats zeroes the cache counters without touching entries.
func (s *Service) ResetCacheStats() {
	s.cache.ResetStats()
}

// InvalidateCache removes cached pages matching pattern ("*" clears
// everything) and returns how many were removed.
func (s *Service) InvalidateCache(pattern string) int {
	return s.cache.Invalidate(pattern)
}

// History returns the user's recorded queries, most-recent-first,
// optionally truncated to limit.
func (s *Service) History(userID string, limit int) []history.Entry {
	return s.hist.History(userID, limit)
}

// DeleteHistoryEntry removes one history entry if it belongs to the
// user, reporting whether a removal occurred.
func (s *Service) DeleteHistoryEntry(userID string, id int64) bool {
	return s.hist.DeleteEntry(userID, id)
}

// ClearHistory removes all of the user's history, returning the count
// removed.
func (s *Service) ClearHistory(userID string) int {
	return s.hist.ClearHistory(userID)
}

// HistoryStats returns aggregate history counts across all users.
func (s *Service) HistoryStats() history.Stats {
	return s.hist.Stats()
}
