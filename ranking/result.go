package ranking

import "time"

// ResultMeta carries the post metadata surfaced with each result.
type ResultMeta struct {
	Author       string    `json:"author"`
	Subreddit    string    `json:"subreddit"`
	RedditScore  int       `json:"reddit_score"`
	CommentCount int       `json:"comment_count"`
	CreatedUTC   time.Time `json:"created_utc"`
}

// SearchResult is a single ranked hit. Results are produced fresh per
// query, never mutated afterwards, and safe to share across cache
// reads.
type SearchResult struct {
	DocID   string     `json:"doc_id"`
	Title   string     `json:"title"`
	URL     string     `json:"url"`
	Snippet string     `json:"snippet"`
	Score   float64    `json:"score"`
	Meta    ResultMeta `json:"metadata"`
}

// SearchResults is one materialized page of results, the unit stored
// by the result cache.
type SearchResults struct {
	Results     []SearchResult `json:"results"`
	TotalCount  int            `json:"total_count"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	QueryTimeMs float64        `json:"query_time_ms"`
}

// DocIDs returns just the document IDs from the page, in rank order.
func (r *SearchResults) DocIDs() []string {
	ids := make([]string, len(r.Results))
	for i, res := range r.Results {
		ids[i] = res.DocID
	}
	return ids
}
