package ranking

import "fmt"

// Config holds the ranking parameters. It is loaded once at startup
// and read-only for the lifetime of the process. Weights are
// non-negative and need not sum to 1: the composite score is a
// weighted sum, not a normalized probability.
type Config struct {
	// BM25K1 controls term-frequency saturation.
	BM25K1 float64

	// BM25B controls length-normalization strength.
	BM25B float64

	// TextWeight scales the BM25 text-relevance signal.
	TextWeight float64

	// RecencyWeight scales the age-decay signal.
	RecencyWeight float64

	// PopularityWeight scales the community-score signal.
	PopularityWeight float64

	// EngagementWeight scales the comment-count signal.
	EngagementWeight float64

	// RelevanceWeight scales the pluggable semantic signal.
	// Zero (the default) means the signal is never consulted.
	RelevanceWeight float64

	// RecencyDecayDays is the half-life of the recency signal: a
	// document aged exactly this many days scores half of a
	// brand-new one.
	RecencyDecayDays float64
}

// DefaultConfig returns the standard ranking parameters.
func DefaultConfig() Config {
	return Config{
		BM25K1:           1.5,
		BM25B:            0.75,
		TextWeight:       0.5,
		RecencyWeight:    0.2,
		PopularityWeight: 0.2,
		EngagementWeight: 0.1,
		RelevanceWeight:  0,
		RecencyDecayDays: 7,
	}
}

// Validate checks the config for usable values.
func (c Config) Validate() error {
	if c.BM25K1 <= 0 {
		return fmt.Errorf("%w: BM25K1 must be positive, got %v", ErrInvalidConfig, c.BM25K1)
	}
	if c.BM25B < 0 || c.BM25B > 1 {
		return fmt.Errorf("%w: BM25B must be in [0,1], got %v", ErrInvalidConfig, c.BM25B)
	}
	if c.RecencyDecayDays <= 0 {
		return fmt.Errorf("%w: RecencyDecayDays must be positive, got %v", ErrInvalidConfig, c.RecencyDecayDays)
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"TextWeight", c.TextWeight},
		{"RecencyWeight", c.RecencyWeight},
		{"PopularityWeight", c.PopularityWeight},
		{"EngagementWeight", c.EngagementWeight},
		{"RelevanceWeight", c.RelevanceWeight},
	} {
		if w.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidConfig, w.name, w.value)
		}
	}
	return nil
}
