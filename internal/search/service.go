// Package search implements query-time scoring and ranking over a built
// TF-IDF index: query normalization, additive per-document scoring, and
// stable top-N ranking.
package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/index"
	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/internal/tokenizer"
	"github.com/docsift/docsift/services"
	"github.com/docsift/docsift/store"
)

// Service executes queries against an explicitly supplied TF-IDF index. It
// holds no per-query state and only reads the index and store, so any number
// of searches may run concurrently.
type Service struct {
	analyzer      *tokenizer.Analyzer
	documentStore *store.DocumentStore
}

// NewService creates a search Service. The analyzer must be the same one the
// index was built with; queries normalized differently cannot match.
func NewService(analyzer *tokenizer.Analyzer, documentStore *store.DocumentStore) (*Service, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("analyzer cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	return &Service{
		analyzer:      analyzer,
		documentStore: documentStore,
	}, nil
}

// Search normalizes the query through the indexing pipeline, scores every
// document in the index, and returns the topN ranked hits. An empty query
// normalizes to no tokens, scores every document 0, and therefore returns
// the first topN documents in corpus order. Search recomputes from scratch
// on every call and is idempotent for an unchanged index.
func (s *Service) Search(idx *index.TFIDFIndex, query services.SearchQuery, defaultTopN int) (services.SearchResult, error) {
	startTime := time.Now()

	topN := query.TopN
	if topN == 0 {
		topN = defaultTopN
	}
	if topN <= 0 {
		return services.SearchResult{}, internalErrors.NewValidationError("top_n", "must be a positive integer")
	}

	queryTokens := s.analyzer.Analyze(query.Query)
	scores := ScoreAll(idx, queryTokens)

	documents := s.documentStore.All()
	if len(documents) != len(scores) {
		return services.SearchResult{}, fmt.Errorf(
			"document store has %d documents but index covers %d; index is stale", len(documents), len(scores))
	}

	return services.SearchResult{
		Hits:    rankHits(documents, scores, topN),
		Total:   len(documents),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}
