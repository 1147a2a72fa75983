// Package engine manages the lifecycle of named TF-IDF indexes: creation,
// lookup, deletion, and persistence to a data directory. There is no ambient
// global index; every search goes through an explicit instance.
package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/docsift/docsift/config"
	internalErrors "github.com/docsift/docsift/internal/errors"
	"github.com/docsift/docsift/internal/persistence"
	"github.com/docsift/docsift/services"
)

const (
	dataDirPerm       = 0750
	settingsFile      = "settings.gob"
	documentStoreFile = "document_store.gob"
	tfidfIndexFile    = "tfidf_index.gob"
)

// Engine manages multiple independent indexes. It implements the
// services.IndexManager interface.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*IndexInstance
	dataDir string
}

// NewEngine creates an engine rooted at dataDir and loads any indexes
// persisted there.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		indexes: make(map[string]*IndexInstance),
		dataDir: dataDir,
	}
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: could not create data directory %s: %v. Persistence will fail for new indexes.", dataDir, err)
	}
	eng.loadIndexesFromDisk()
	return eng
}

func (e *Engine) loadIndexesFromDisk() {
	items, err := os.ReadDir(e.dataDir)
	if err != nil {
		log.Printf("Warning: failed to read data directory %s: %v. No indexes loaded.", e.dataDir, err)
		return
	}

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		indexName := item.Name()
		indexPath := filepath.Join(e.dataDir, indexName)

		var settings config.IndexSettings
		if err := persistence.LoadGob(filepath.Join(indexPath, settingsFile), &settings); err != nil {
			log.Printf("Warning: failed to load settings for index %s: %v. Skipping this index.", indexName, err)
			continue
		}
		if settings.Name != indexName {
			log.Printf("Warning: index name in settings ('%s') does not match directory name ('%s'). Skipping this index.", settings.Name, indexName)
			continue
		}

		instance, err := NewIndexInstance(settings)
		if err != nil {
			log.Printf("Warning: failed to recreate index %s: %v. Skipping this index.", indexName, err)
			continue
		}

		dsPath := filepath.Join(indexPath, documentStoreFile)
		if err := persistence.LoadGob(dsPath, instance.DocumentStore); err != nil && err != os.ErrNotExist {
			log.Printf("Warning: failed to load document store for index %s: %v. Starting with an empty corpus.", indexName, err)
		}

		iiPath := filepath.Join(indexPath, tfidfIndexFile)
		if err := persistence.LoadGob(iiPath, instance.TFIDFIndex); err != nil {
			if err != os.ErrNotExist {
				log.Printf("Warning: failed to load TF-IDF index for index %s: %v. Rebuilding from the corpus.", indexName, err)
			}
			instance.Rebuild()
		} else if len(instance.TFIDFIndex.Weights) != instance.DocumentStore.Len() {
			// A stale index file cannot be trusted; rebuild from the corpus.
			log.Printf("Warning: persisted index for %s covers %d documents but the corpus has %d. Rebuilding.",
				indexName, len(instance.TFIDFIndex.Weights), instance.DocumentStore.Len())
			instance.Rebuild()
		}

		e.indexes[indexName] = instance
		log.Printf("Loaded index '%s' with %d documents.", indexName, instance.DocumentCount())
	}
}

// CreateIndex creates a new index with the given settings and persists its
// initial (empty) state.
func (e *Engine) CreateIndex(settings config.IndexSettings) error {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return internalErrors.NewValidationError("settings", problems[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[settings.Name]; exists {
		return internalErrors.NewIndexAlreadyExistsError(settings.Name)
	}

	instance, err := NewIndexInstance(settings)
	if err != nil {
		return fmt.Errorf("failed to create index instance for '%s': %w", settings.Name, err)
	}

	indexPath := filepath.Join(e.dataDir, settings.Name)
	if err := persistence.SaveGob(filepath.Join(indexPath, settingsFile), settings); err != nil {
		return fmt.Errorf("failed to save settings for index %s: %w", settings.Name, err)
	}
	if err := persistence.SaveGob(filepath.Join(indexPath, documentStoreFile), instance.DocumentStore); err != nil {
		return fmt.Errorf("failed to save initial document store for %s: %w", settings.Name, err)
	}
	if err := persistence.SaveGob(filepath.Join(indexPath, tfidfIndexFile), instance.TFIDFIndex); err != nil {
		return fmt.Errorf("failed to save initial TF-IDF index for %s: %w", settings.Name, err)
	}

	e.indexes[settings.Name] = instance
	log.Printf("Index '%s' created and persisted.", settings.Name)
	return nil
}

// GetIndex retrieves an index by its name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, internalErrors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// GetIndexSettings retrieves the settings for a specific index.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return config.IndexSettings{}, internalErrors.NewIndexNotFoundError(name)
	}
	return instance.Settings(), nil
}

// DeleteIndex removes an index from memory and disk.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	indexPath := filepath.Join(e.dataDir, name)
	if _, exists := e.indexes[name]; !exists {
		if _, err := os.Stat(indexPath); os.IsNotExist(err) {
			return internalErrors.NewIndexNotFoundError(name)
		}
	} else {
		delete(e.indexes, name)
	}

	if err := os.RemoveAll(indexPath); err != nil {
		return fmt.Errorf("failed to delete index data directory %s: %w", indexPath, err)
	}
	log.Printf("Index '%s' deleted from memory and disk.", name)
	return nil
}

// ListIndexes returns the names of all loaded indexes, sorted for stable
// output.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PersistIndexData saves an index's corpus and TF-IDF index to disk. Callers
// invoke it after ingestion.
func (e *Engine) PersistIndexData(indexName string) error {
	e.mu.RLock()
	instance, exists := e.indexes[indexName]
	e.mu.RUnlock()

	if !exists {
		return internalErrors.NewIndexNotFoundError(indexName)
	}

	documentStore, tfidfIndex := instance.snapshot()
	indexPath := filepath.Join(e.dataDir, indexName)
	if err := persistence.SaveGob(filepath.Join(indexPath, documentStoreFile), documentStore); err != nil {
		return fmt.Errorf("failed to save document store for %s: %w", indexName, err)
	}
	if err := persistence.SaveGob(filepath.Join(indexPath, tfidfIndexFile), tfidfIndex); err != nil {
		return fmt.Errorf("failed to save TF-IDF index for %s: %w", indexName, err)
	}
	log.Printf("Data for index '%s' persisted.", indexName)
	return nil
}
