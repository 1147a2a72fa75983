// Package lang bundles the language-specific pieces of the normalization
// pipeline: stopword lists, stemming, and lemmatization. The tokenizer
// depends only on the Resources interface, so languages and algorithms can
// be swapped without touching pipeline logic.
package lang

import (
	"fmt"
	"strings"
)

// Resources supplies the pluggable linguistic capabilities the analyzer
// needs. Implementations must be safe for concurrent use: the analyzer is
// shared between index builds and query processing.
type Resources interface {
	// IsStopword reports whether an already-lowercased token carries no
	// search value and should be dropped.
	IsStopword(token string) bool

	// Stem reduces a token to its root form by suffix stripping.
	Stem(token string) string

	// Lemmatize maps a token to its dictionary canonical form. Tokens with
	// no known lemma are returned unchanged.
	Lemmatize(token string) string
}

// ForLanguage returns the Resources implementation for a configured language
// name. English is the only bundled language.
func ForLanguage(name string) (Resources, error) {
	switch strings.ToLower(name) {
	case "", "en", "english":
		return NewEnglish()
	default:
		return nil, fmt.Errorf("unsupported language %q", name)
	}
}
