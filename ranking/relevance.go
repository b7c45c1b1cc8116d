package ranking

import (
	"context"

	"github.com/threadlens/threadlens/model"
)

// RelevanceScorer is the pluggable semantic-similarity signal. The
// engine consults it only when Config.RelevanceWeight is non-zero and
// a scorer was supplied, so the engine functions with the signal
// entirely absent.
//
// Implementations must return scores in [0,1] so the signal weights
// stay comparable, and must be safe for concurrent Score calls.
type RelevanceScorer interface {
	// Score returns the semantic similarity of post to query.
	Score(ctx context.Context, query string, post model.Post) (float64, error)
}
