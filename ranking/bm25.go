package ranking

import "math"

// BM25Scorer calculates text relevance using the BM25 ranking function
// over precomputed corpus statistics. It is immutable after
// construction and safe for concurrent use.
type BM25Scorer struct {
	k1           float64
	b            float64
	avgDocLength float64
	totalDocs    int
	docFreq      map[string]int
}

// NewBM25Scorer creates a scorer for a corpus of totalDocs documents
// with the given average length and per-term document frequencies.
func NewBM25Scorer(k1, b, avgDocLength float64, totalDocs int, docFreq map[string]int) *BM25Scorer {
	return &BM25Scorer{
		k1:           k1,
		b:            b,
		avgDocLength: avgDocLength,
		totalDocs:    totalDocs,
		docFreq:      docFreq,
	}
}

// Score returns the raw BM25 score of a document with the given term
// frequencies and length against the query terms. Terms absent from
// the corpus contribute zero.
func (s *BM25Scorer) Score(queryTerms []string, termFreq map[string]int, docLength int) float64 {
	if s.totalDocs == 0 || s.avgDocLength == 0 {
		return 0
	}

	score := 0.0
	for _, term := range queryTerms {
		tf := float64(termFreq[term])
		if tf == 0 {
			continue
		}
		df := float64(s.docFreq[term])
		if df == 0 {
			continue
		}

		// Non-negative IDF variant: log(1 + (N - df + 0.5) / (df + 0.5)).
		idf := math.Log(1 + (float64(s.totalDocs)-df+0.5)/(df+0.5))

		tfNorm := (tf * (s.k1 + 1)) /
			(tf + s.k1*(1-s.b+s.b*float64(docLength)/s.avgDocLength))

		score += idf * tfNorm
	}
	return score
}
