// Package services defines the contracts between the engine, its per-index
// services, and the API layer.
package services

import (
	"github.com/docsift/docsift/config"
	"github.com/docsift/docsift/model"
)

// SearchQuery is a single free-text query against one index.
type SearchQuery struct {
	Query string `json:"query"`

	// TopN limits the number of ranked documents returned. Zero means the
	// index's configured default; negative values are rejected.
	TopN int `json:"top_n"`
}

// Hit is one ranked document together with the additive TF-IDF score it
// earned for the query.
type Hit struct {
	Document model.Document `json:"document"`
	Score    float64        `json:"score"`
}

// SearchResult is the ordered outcome of one search invocation.
type SearchResult struct {
	Hits    []Hit  `json:"hits"`
	Total   int    `json:"total"`    // documents in the corpus, not hits returned
	Took    int64  `json:"took"`     // milliseconds
	QueryID string `json:"query_id"` // unique UUID for this search query
}

// Indexer defines operations for adding documents to an index.
type Indexer interface {
	AddDocuments(docs []model.Document) error
}

// Searcher defines operations for querying an index.
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// IndexAccessor combines ingestion and querying for a single index.
type IndexAccessor interface {
	Indexer
	Searcher
	Settings() config.IndexSettings
	DocumentCount() int
	GetDocument(id string) (model.Document, bool)
}

// IndexManager manages the lifecycle of indexes.
type IndexManager interface {
	CreateIndex(settings config.IndexSettings) error
	GetIndex(name string) (IndexAccessor, error)
	GetIndexSettings(name string) (config.IndexSettings, error)
	DeleteIndex(name string) error
	ListIndexes() []string
	PersistIndexData(indexName string) error
}
