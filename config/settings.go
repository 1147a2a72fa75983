// Package config provides configuration structures for the retrieval engine:
// per-index settings and the server configuration loaded from YAML.
package config

import "strings"

// DefaultTopN is the number of ranked documents a search returns when the
// caller does not ask for a specific amount.
const DefaultTopN = 5

// IndexSettings contains the configuration for a single index. Settings are
// fixed at index creation time; the analyzer derived from Language is shared
// by document indexing and query processing, so it cannot change without a
// full rebuild.
type IndexSettings struct {
	// Name uniquely identifies the index. It doubles as the directory name
	// under the engine's data dir, so it must be a plain path segment.
	Name string `json:"name" yaml:"name"`

	// Language selects the linguistic resources (stopwords, stemmer, lemma
	// dictionary) used by the normalization pipeline.
	Language string `json:"language" yaml:"language"`

	// DefaultTopN is the result count used when a search omits top_n.
	DefaultTopN int `json:"default_top_n" yaml:"defaultTopN"`
}

// ApplyDefaults fills in zero-valued settings.
func (settings *IndexSettings) ApplyDefaults() {
	if settings.Language == "" {
		settings.Language = "english"
	}
	if settings.DefaultTopN == 0 {
		settings.DefaultTopN = DefaultTopN
	}
}

// Validate returns a list of problems with the settings; an empty list means
// the settings are usable.
func (settings *IndexSettings) Validate() []string {
	var problems []string

	name := strings.TrimSpace(settings.Name)
	if name == "" {
		problems = append(problems, "index name cannot be empty or whitespace-only")
	}
	if strings.ContainsAny(name, "/\\") {
		problems = append(problems, "index name cannot contain path separators")
	}
	if settings.DefaultTopN < 0 {
		problems = append(problems, "default_top_n cannot be negative")
	}
	return problems
}
