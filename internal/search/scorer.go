package search

import "github.com/docsift/docsift/index"

// Score sums the document's TF-IDF weight for every query token occurrence.
// Duplicate query tokens contribute once per occurrence, and tokens absent
// from the document contribute 0, so a document sharing no tokens with the
// query scores exactly 0. The sum is deliberately unnormalized: no cosine,
// no query-side IDF weighting, no query-length division.
func Score(weights index.DocumentWeights, queryTokens []string) float64 {
	var score float64
	for _, token := range queryTokens {
		score += weights[token]
	}
	return score
}

// ScoreAll scores every document in the index against the query tokens,
// returning scores index-aligned with the corpus.
func ScoreAll(idx *index.TFIDFIndex, queryTokens []string) []float64 {
	scores := make([]float64, len(idx.Weights))
	for i, weights := range idx.Weights {
		scores[i] = Score(weights, queryTokens)
	}
	return scores
}
