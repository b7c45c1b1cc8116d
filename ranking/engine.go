package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/threadlens/threadlens/model"
	"github.com/threadlens/threadlens/textproc"
)

// Doc pairs a processed document with its source post for indexing.
type Doc struct {
	Processed textproc.ProcessedDocument
	Post      model.Post
}

// indexedDoc is the per-document state the engine keeps after Index.
type indexedDoc struct {
	post      model.Post
	termFreq  map[string]int
	length    int
	cleanText string
}

// Engine ranks indexed documents against queries. Index installs a
// corpus for the current collection cycle; after that, concurrent
// Search calls are safe. Index must not run concurrently with Search.
type Engine struct {
	cfg       Config
	relevance RelevanceScorer
	now       func() time.Time

	docs   []indexedDoc
	scorer *BM25Scorer
}

// NewEngine creates an engine with the given config. relevance may be
// nil; it is only consulted when Config.RelevanceWeight is non-zero.
func NewEngine(cfg Config, relevance RelevanceScorer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		relevance: relevance,
		now:       time.Now,
	}, nil
}

// Index replaces the engine's corpus with the given documents and
// recomputes the BM25 corpus statistics (document frequencies, average
// document length).
func (e *Engine) Index(docs []Doc) {
	indexed := make([]indexedDoc, 0, len(docs))
	docFreq := make(map[string]int)
	totalLength := 0

	for _, d := range docs {
		termFreq := make(map[string]int, len(d.Processed.Tokens))
		for _, tok := range d.Processed.Tokens {
			termFreq[tok.Stem]++
		}
		for term := range termFreq {
			docFreq[term]++
		}
		totalLength += d.Processed.TokenCount

		cleanText := textproc.CleanHTML(d.Post.Selftext)
		if cleanText == "" {
			cleanText = textproc.CleanHTML(d.Post.Title)
		}

		indexed = append(indexed, indexedDoc{
			post:      d.Post,
			termFreq:  termFreq,
			length:    d.Processed.TokenCount,
			cleanText: cleanText,
		})
	}

	avgDocLength := 0.0
	if len(indexed) > 0 {
		avgDocLength = float64(totalLength) / float64(len(indexed))
	}

	e.docs = indexed
	e.scorer = NewBM25Scorer(e.cfg.BM25K1, e.cfg.BM25B, avgDocLength, len(indexed), docFreq)
}

// DocCount returns the number of indexed documents.
func (e *Engine) DocCount() int {
	return len(e.docs)
}

// Search scores every candidate document against query, ranks by
// composite score and returns the requested page. An empty corpus or a
// query with no indexable terms yields an empty page, not an error;
// page < 1 or pageSize < 1 is a caller input error.
func (e *Engine) Search(ctx context.Context, query string, page, pageSize int) (*SearchResults, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	started := time.Now()
	results := &SearchResults{
		Results:  []SearchResult{},
		Page:     page,
		PageSize: pageSize,
	}

	stems, surfaces := queryTerms(query)
	if len(stems) == 0 || len(e.docs) == 0 {
		results.QueryTimeMs = float64(time.Since(started).Microseconds()) / 1000
		return results, nil
	}

	// Candidates are documents matching at least one query stem.
	type scoredDoc struct {
		idx   int
		raw   float64
		score float64
	}
	candidates := make([]scoredDoc, 0, len(e.docs))
	maxRaw := 0.0
	for i := range e.docs {
		raw := e.scorer.Score(stems, e.docs[i].termFreq, e.docs[i].length)
		if raw <= 0 {
			continue
		}
		if raw > maxRaw {
			maxRaw = raw
		}
		candidates = append(candidates, scoredDoc{idx: i, raw: raw})
	}

	now := e.now()
	for i := range candidates {
		post := e.docs[candidates[i].idx].post

		text := candidates[i].raw / maxRaw
		recency := recencyScore(now.Sub(post.CreatedUTC), e.cfg.RecencyDecayDays)
		popularity := popularityScore(post.Score)
		engagement := engagementScore(post.NumComments)

		relevance := 0.0
		if e.cfg.RelevanceWeight > 0 && e.relevance != nil {
			score, err := e.relevance.Score(ctx, query, post)
			if err != nil {
				return nil, fmt.Errorf("relevance score for %s: %w", post.ID, err)
			}
			relevance = score
		}

		candidates[i].score = e.cfg.TextWeight*text +
			e.cfg.RecencyWeight*recency +
			e.cfg.PopularityWeight*popularity +
			e.cfg.EngagementWeight*engagement +
			e.cfg.RelevanceWeight*relevance
	}

	// Composite descending, then recency descending, then DocID
	// ascending. DocIDs are unique, so the order is total and the
	// ranking reproducible.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		pa, pb := e.docs[a.idx].post, e.docs[b.idx].post
		if !pa.CreatedUTC.Equal(pb.CreatedUTC) {
			return pa.CreatedUTC.After(pb.CreatedUTC)
		}
		return pa.ID < pb.ID
	})

	results.TotalCount = len(candidates)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(candidates) {
		start = len(candidates)
	}
	if end > len(candidates) {
		end = len(candidates)
	}

	snippetTerms := append(append([]string{}, surfaces...), stems...)
	for _, c := range candidates[start:end] {
		d := e.docs[c.idx]
		results.Results = append(results.Results, SearchResult{
			DocID:   d.post.ID,
			Title:   textproc.CleanHTML(d.post.Title),
			URL:     d.post.URL,
			Snippet: extractSnippet(d.cleanText, snippetTerms, snippetLength),
			Score:   c.score,
			Meta: ResultMeta{
				Author:       d.post.Author,
				Subreddit:    d.post.Subreddit,
				RedditScore:  d.post.Score,
				CommentCount: d.post.NumComments,
				CreatedUTC:   d.post.CreatedUTC,
			},
		})
	}

	results.QueryTimeMs = float64(time.Since(started).Microseconds()) / 1000
	return results, nil
}

// queryTerms runs the query through the same pipeline as documents and
// returns the unique stems in first-seen order, plus the lower-cased
// surface forms for snippet matching.
func queryTerms(query string) (stems, surfaces []string) {
	text := textproc.NormalizeCase(textproc.CleanHTML(query))
	tokens := textproc.StemTokens(textproc.RemoveStopwords(textproc.Tokenize(text)))

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		surfaces = append(surfaces, tok.Text)
		if seen[tok.Stem] {
			continue
		}
		seen[tok.Stem] = true
		stems = append(stems, tok.Stem)
	}
	return stems, surfaces
}
