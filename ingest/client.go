package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/threadlens/threadlens/model"
)

const (
	defaultBaseURL   = "https://www.reddit.com"
	defaultUserAgent = "threadlens/1.0 (post search archive)"

	// Reddit's unauthenticated API allows 10 requests per minute.
	defaultInterval = 6 * time.Second

	// Listing endpoints return at most 100 children per request.
	maxPageSize = 100
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	// HTTPClient performs the requests. Defaults to a client with a
	// 30 second timeout.
	HTTPClient *http.Client

	// BaseURL overrides the Reddit endpoint, mainly for tests.
	BaseURL string

	// UserAgent identifies the collector to Reddit.
	UserAgent string

	// RequestInterval is the minimum spacing between requests.
	RequestInterval time.Duration
}

// Client fetches subreddit listings at a bounded request rate.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a Client with the given options.
func NewClient(opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.RequestInterval <= 0 {
		opts.RequestInterval = defaultInterval
	}

	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		limiter:    rate.NewLimiter(rate.Every(opts.RequestInterval), 1),
	}
}

// listing mirrors the subset of the Reddit listing response we read.
type listing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data listingPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type listingPost struct {
	Name        string  `json:"name"` // fullname, e.g. t3_abc123
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

// FetchSubreddit collects up to limit posts from the subreddit's "new"
// listing, following the "after" cursor across pages. A limit of zero
// or less fetches a single page.
func (c *Client) FetchSubreddit(ctx context.Context, subreddit string, limit int) ([]model.Post, error) {
	if subreddit == "" {
		return nil, fmt.Errorf("subreddit name is empty")
	}
	if limit <= 0 {
		limit = maxPageSize
	}

	var posts []model.Post
	after := ""
	for len(posts) < limit {
		pageSize := limit - len(posts)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		page, next, err := c.fetchPage(ctx, subreddit, pageSize, after)
		if err != nil {
			return nil, err
		}
		posts = append(posts, page...)

		if next == "" || len(page) == 0 {
			break
		}
		after = next
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (c *Client) fetchPage(ctx context.Context, subreddit string, pageSize int, after string) ([]model.Post, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/r/%s/new.json", c.baseURL, url.PathEscape(subreddit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch r/%s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch r/%s: unexpected status %s", subreddit, resp.Status)
	}

	var body listing
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, "", fmt.Errorf("decode r/%s listing: %w", subreddit, err)
	}

	posts := make([]model.Post, 0, len(body.Data.Children))
	for _, child := range body.Data.Children {
		posts = append(posts, toPost(child.Data))
	}
	return posts, body.Data.After, nil
}

func toPost(lp listingPost) model.Post {
	sec := int64(lp.CreatedUTC)
	return model.Post{
		ID:          lp.Name,
		Title:       lp.Title,
		Selftext:    lp.Selftext,
		URL:         lp.URL,
		Permalink:   lp.Permalink,
		Author:      lp.Author,
		Subreddit:   lp.Subreddit,
		Score:       lp.Score,
		NumComments: lp.NumComments,
		CreatedUTC:  time.Unix(sec, 0).UTC(),
	}
}
