// Package indexing turns a stored corpus into a built TF-IDF index.
package indexing

import (
	"fmt"

	"github.com/docsift/docsift/index"
	"github.com/docsift/docsift/internal/tokenizer"
	"github.com/docsift/docsift/store"
)

// Service rebuilds the TF-IDF index for a single corpus. There is no
// incremental path: adding documents re-analyzes everything and builds a
// fresh index, which is the whole update story for a small static corpus.
type Service struct {
	analyzer      *tokenizer.Analyzer
	documentStore *store.DocumentStore
}

// NewService creates an indexing Service over the shared analyzer and store.
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

// BuildIndex analyzes every stored document and builds an index over the
// aligned token corpus. The returned index is immutable; callers swap it in
// for the previous one.
func (s *Service) BuildIndex() *index.TFIDFIndex {
	docs := s.documentStore.All()

	corpus := make([][]string, len(docs))
	for i, doc := range docs {
		corpus[i] = s.analyzer.Analyze(doc.Text)
	}
	return index.Build(corpus)
}
