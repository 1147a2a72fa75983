package engine

import (
	"fmt"
	"sync"

	"github.com/docsift/docsift/config"
	"github.com/docsift/docsift/index"
	"github.com/docsift/docsift/internal/indexing"
	"github.com/docsift/docsift/internal/lang"
	"github.com/docsift/docsift/internal/search"
	"github.com/docsift/docsift/internal/tokenizer"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/services"
	"github.com/docsift/docsift/store"
)

// IndexInstance holds all components for a single index: its settings, the
// corpus, the built TF-IDF index, and the indexing and search services over
// them. It implements services.IndexAccessor.
//
// The mutex protects the TFIDFIndex pointer swap: adds rebuild and swap
// under the write lock, searches read under the read lock, so a search
// always sees a store and index that are aligned.
type IndexInstance struct {
	mu       sync.RWMutex
	settings *config.IndexSettings

	TFIDFIndex    *index.TFIDFIndex
	DocumentStore *store.DocumentStore

	indexer  *indexing.Service
	searcher *search.Service
}

// NewIndexInstance creates an empty IndexInstance for the given settings,
// wiring one analyzer into both the indexing and search services so
// documents and queries are normalized identically.
func NewIndexInstance(settings config.IndexSettings) (*IndexInstance, error) {
	if settings.Name == "" {
		return nil, fmt.Errorf("index name cannot be empty in settings")
	}

	resources, err := lang.ForLanguage(settings.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to load linguistic resources for index '%s': %w", settings.Name, err)
	}
	analyzer := tokenizer.NewAnalyzer(resources)

	documentStore := store.NewDocumentStore()

	indexerService, err := indexing.NewService(analyzer, documentStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexing service: %w", err)
	}
	searchService, err := search.NewService(analyzer, documentStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &IndexInstance{
		settings:      &settings,
		TFIDFIndex:    index.Build(nil),
		DocumentStore: documentStore,
		indexer:       indexerService,
		searcher:      searchService,
	}, nil
}

// AddDocuments appends documents to the corpus and rebuilds the TF-IDF
// index over the grown corpus. The rebuild is a full one: the index has no
// incremental update path.
func (i *IndexInstance) AddDocuments(docs []model.Document) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.DocumentStore.Add(docs); err != nil {
		return fmt.Errorf("failed to add documents to index '%s': %w", i.settings.Name, err)
	}
	i.TFIDFIndex = i.indexer.BuildIndex()
	return nil
}

// Rebuild recomputes the index from the current corpus. The engine uses it
// after loading a persisted corpus whose index file is missing or stale.
func (i *IndexInstance) Rebuild() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.TFIDFIndex = i.indexer.BuildIndex()
}

// Search runs a query against the current index snapshot. Concurrent
// searches share the read lock.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.searcher.Search(i.TFIDFIndex, query, i.settings.DefaultTopN)
}

// snapshot returns the current store and index under the read lock, so
// persistence sees an aligned pair even while adds are running.
func (i *IndexInstance) snapshot() (*store.DocumentStore, *index.TFIDFIndex) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.DocumentStore, i.TFIDFIndex
}

// Settings returns a copy of the instance's configuration.
func (i *IndexInstance) Settings() config.IndexSettings {
	return *i.settings
}

// DocumentCount returns the number of documents in the corpus.
func (i *IndexInstance) DocumentCount() int {
	return i.DocumentStore.Len()
}

// GetDocument looks a document up by its external ID.
func (i *IndexInstance) GetDocument(id string) (model.Document, bool) {
	return i.DocumentStore.Get(id)
}
