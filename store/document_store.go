package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/docsift/docsift/model"
)

// DocumentStore keeps the corpus in load order. A document's position in
// Docs is its internal ID, which keeps the store index-aligned with the
// TF-IDF index built from it. Documents are never mutated or removed within
// a session; the store only grows.
type DocumentStore struct {
	Mu      sync.RWMutex
	Docs    []model.Document
	IDToPos map[string]int // external document ID to corpus position
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs:    make([]model.Document, 0),
		IDToPos: make(map[string]int),
	}
}

// Add appends documents in order, assigning each its corpus position.
// Document IDs must be non-empty and unique within the store.
func (ds *DocumentStore) Add(docs []model.Document) error {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	for _, doc := range docs {
		if doc.ID == "" {
			return fmt.Errorf("document ID cannot be empty")
		}
		if _, exists := ds.IDToPos[doc.ID]; exists {
			return fmt.Errorf("document ID %q already exists", doc.ID)
		}
		ds.IDToPos[doc.ID] = len(ds.Docs)
		ds.Docs = append(ds.Docs, doc)
	}
	return nil
}

// All returns a copy of the corpus in load order.
func (ds *DocumentStore) All() []model.Document {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	docs := make([]model.Document, len(ds.Docs))
	copy(docs, ds.Docs)
	return docs
}

// Get looks a document up by its external ID.
func (ds *DocumentStore) Get(id string) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	pos, ok := ds.IDToPos[id]
	if !ok {
		return model.Document{}, false
	}
	return ds.Docs[pos], true
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}

// gobDocumentStoreData mirrors DocumentStore for gob encoding, excluding the
// mutex.
type gobDocumentStoreData struct {
	Docs    []model.Document
	IDToPos map[string]int
}

// GobEncode implements gob.GobEncoder for DocumentStore.
func (ds *DocumentStore) GobEncode() ([]byte, error) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	data := gobDocumentStoreData{
		Docs:    ds.Docs,
		IDToPos: ds.IDToPos,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to gob encode document store: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder for DocumentStore.
func (ds *DocumentStore) GobDecode(raw []byte) error {
	var data gobDocumentStoreData
	if err := gob.NewDecoder(bytes.NewBuffer(raw)).Decode(&data); err != nil {
		return fmt.Errorf("failed to gob decode document store: %w", err)
	}

	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	ds.Docs = data.Docs
	ds.IDToPos = data.IDToPos

	// A store persisted while empty decodes with nil containers.
	if ds.Docs == nil {
		ds.Docs = make([]model.Document, 0)
	}
	if ds.IDToPos == nil {
		ds.IDToPos = make(map[string]int)
	}
	return nil
}
