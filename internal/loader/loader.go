// Package loader feeds a folder of plain-text files into the engine as an
// ordered corpus. The scoring core never touches the filesystem; this is the
// boundary where documents come from.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/model"
)

// LoadTextCorpus reads every .txt file directly inside dir, ordered by file
// name, and returns one document per file with the file name as its ID.
// Subdirectories and files with other extensions are ignored.
func LoadTextCorpus(dir string) ([]model.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", dir, err)
	}

	docs := make([]model.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name())) // #nosec G304 -- path is scoped to dir
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus file %s: %w", entry.Name(), err)
		}
		docs = append(docs, model.Document{
			ID:   entry.Name(),
			Text: string(data),
		})
	}
	return docs, nil
}
