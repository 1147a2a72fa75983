package search

import (
	"sort"

	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/services"
)

// rankHits pairs each document with its aligned score, stable-sorts by score
// descending, and keeps the first topN. The stable sort is a guarantee, not
// an accident: documents with equal scores keep their corpus order, which is
// what makes an all-zero-score query return the first topN documents as
// loaded.
func rankHits(documents []model.Document, scores []float64, topN int) []services.Hit {
	hits := make([]services.Hit, len(documents))
	for i, doc := range documents {
		hits[i] = services.Hit{Document: doc, Score: scores[i]}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	if topN > len(hits) {
		topN = len(hits)
	}
	return hits[:topN]
}

// Rank returns the topN documents for the given aligned scores, preserving
// corpus order between equal scores.
func Rank(documents []model.Document, scores []float64, topN int) []model.Document {
	hits := rankHits(documents, scores, topN)
	ranked := make([]model.Document, len(hits))
	for i, hit := range hits {
		ranked[i] = hit.Document
	}
	return ranked
}
