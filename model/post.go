// Package model defines the core document types shared across the
// threadlens packages.
package model

import (
	"errors"
	"time"
)

// Error values for document validation.
var (
	ErrMissingID = errors.New("post has no id")
)

// Post is a single Reddit submission as collected from a listing.
// Title and Selftext may contain raw HTML or markdown; the textproc
// package is responsible for cleaning them before indexing.
type Post struct {
	// ID is the Reddit base36 identifier, unique within the corpus.
	ID string `json:"id"`

	// Title is the submission title.
	Title string `json:"title"`

	// Selftext is the submission body. Empty for link posts.
	Selftext string `json:"selftext"`

	// URL is the external link target, or the permalink for self posts.
	URL string `json:"url"`

	// Permalink is the reddit.com path for the submission.
	Permalink string `json:"permalink"`

	// Author is the submitting account name.
	Author string `json:"author"`

	// Subreddit the post was submitted to, without the /r/ prefix.
	Subreddit string `json:"subreddit"`

	// Score is the community score (upvotes minus downvotes) at
	// collection time. May be negative.
	Score int `json:"score"`

	// NumComments is the comment count at collection time.
	NumComments int `json:"num_comments"`

	// CreatedUTC is the submission creation time.
	CreatedUTC time.Time `json:"created_utc"`
}

// Validate checks that the post can be indexed. An empty title and
// body is fine (it indexes to zero tokens); a missing ID is not,
// since every downstream structure is keyed by it.
func (p Post) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	return nil
}
