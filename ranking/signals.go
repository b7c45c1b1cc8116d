package ranking

import (
	"math"
	"time"
)

// Saturation points for the bounded log transforms. A post at or above
// the reference value scores 1.0, which keeps a single runaway thread
// from dominating the corpus.
const (
	popularityRef = 10000
	engagementRef = 1000
)

// recencyScore decays exponentially with document age: a document aged
// exactly halfLifeDays scores 0.5, a brand-new one scores 1.0.
// Documents with timestamps in the future are treated as brand-new.
func recencyScore(age time.Duration, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		return 0
	}
	if age < 0 {
		age = 0
	}
	days := age.Hours() / 24
	return math.Exp2(-days / halfLifeDays)
}

// popularityScore maps the raw community score into [0,1] with a
// bounded log transform. Negative scores map to 0.
func popularityScore(score int) float64 {
	return boundedLog(score, popularityRef)
}

// engagementScore maps the comment count into [0,1] with the same
// transform as popularityScore.
func engagementScore(comments int) float64 {
	return boundedLog(comments, engagementRef)
}

func boundedLog(v, ref int) float64 {
	if v <= 0 {
		return 0
	}
	if v > ref {
		v = ref
	}
	return math.Log1p(float64(v)) / math.Log1p(float64(ref))
}
