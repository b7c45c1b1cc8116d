package textproc

import (
	"fmt"

	"github.com/threadlens/threadlens/model"
)

// Processor runs the full pipeline over posts. It is stateless and
// safe for concurrent use.
type Processor struct{}

// NewProcessor creates a Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// BatchError records a document that could not be processed during a
// batch run.
type BatchError struct {
	DocID string
	Err   error
}

// Error implements the error interface.
func (e BatchError) Error() string {
	return fmt.Sprintf("process document %q: %v", e.DocID, e.Err)
}

// Unwrap returns the underlying error for errors.Is checks.
func (e BatchError) Unwrap() error {
	return e.Err
}

// Process turns a single post into its indexable form. The title and
// body are concatenated with a newline boundary so terms never merge
// across the join, then cleaned, case-folded, tokenized,
// stopword-filtered and stemmed. A post with an empty title and body
// yields TokenCount 0, not an error.
func (p *Processor) Process(post model.Post) ProcessedDocument {
	raw := post.Title
	if post.Selftext != "" {
		raw += "\n" + post.Selftext
	}

	text := NormalizeCase(CleanHTML(raw))
	tokens := StemTokens(RemoveStopwords(Tokenize(text)))

	return ProcessedDocument{
		DocID:      post.ID,
		Tokens:     tokens,
		TokenCount: len(tokens),
	}
}

// ProcessBatch applies Process to each post in order, preserving input
// order in the output. One post's failure never aborts the rest: a
// post that fails validation is recorded against its DocID in the
// returned BatchError slice and skipped.
func (p *Processor) ProcessBatch(posts []model.Post) ([]ProcessedDocument, []BatchError) {
	docs := make([]ProcessedDocument, 0, len(posts))
	var failed []BatchError

	for _, post := range posts {
		if err := post.Validate(); err != nil {
			failed = append(failed, BatchError{DocID: post.ID, Err: err})
			continue
		}
		docs = append(docs, p.Process(post))
	}

	return docs, failed
}
