// Package testing provides shared fixtures for engine and API tests.
package testing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/config"
	"github.com/docsift/docsift/internal/engine"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/services"
)

// SampleTexts is a small corpus in the style of the record-collection
// documents the engine was built for.
var SampleTexts = []string{
	"The tallest dog ever measured was a Great Dane from Michigan.",
	"The largest collection of soda cans spans 87 countries.",
	"A dentist in Georgia owns over two thousand kinds of toothpaste.",
	"The oldest cat on record lived for 38 years in Texas.",
}

// CreateTestEngine creates an engine rooted in a per-test temp directory.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.NewEngine(t.TempDir())
}

// CreateTestIndex creates an index with default settings and returns its
// accessor.
func CreateTestIndex(t *testing.T, eng *engine.Engine, name string) services.IndexAccessor {
	t.Helper()
	require.NoError(t, eng.CreateIndex(config.IndexSettings{Name: name}))

	accessor, err := eng.GetIndex(name)
	require.NoError(t, err)
	return accessor
}

// AddSampleDocuments ingests texts into the index with generated IDs and
// returns the documents as ingested.
func AddSampleDocuments(t *testing.T, accessor services.IndexAccessor, texts []string) []model.Document {
	t.Helper()

	docs := make([]model.Document, len(texts))
	for i, text := range texts {
		docs[i] = model.Document{ID: fmt.Sprintf("doc-%d", i), Text: text}
	}
	require.NoError(t, accessor.AddDocuments(docs))
	return docs
}
