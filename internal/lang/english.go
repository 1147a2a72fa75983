package lang

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	snowballeng "github.com/kljensen/snowball/english"
)

//go:embed stopwords_en.txt
var englishStopwordData []byte

// English implements Resources for English text: a fixed stopword list,
// Snowball (Porter-style) stemming, and dictionary-based lemmatization.
type English struct {
	stopwords  map[string]struct{}
	lemmatizer *golem.Lemmatizer
}

// NewEnglish loads the embedded stopword list and the English lemma
// dictionary. The dictionary load is the expensive part, so callers should
// build one English value and share it.
func NewEnglish() (*English, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
	}

	stopwords := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(englishStopwordData))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			stopwords[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embedded stopword list: %w", err)
	}

	return &English{
		stopwords:  stopwords,
		lemmatizer: lemmatizer,
	}, nil
}

// IsStopword matches the token against the embedded English stopword set.
// Tokens are expected to be lowercased already.
func (e *English) IsStopword(token string) bool {
	_, ok := e.stopwords[token]
	return ok
}

// Stem applies the Snowball English stemmer. Stopwords have been filtered
// before this point, so stopword-specific stemming is disabled.
func (e *English) Stem(token string) string {
	return snowballeng.Stem(token, false)
}

// Lemmatize looks the token up in the lemma dictionary, returning the token
// unchanged when no canonical form is known.
func (e *English) Lemmatize(token string) string {
	return e.lemmatizer.Lemma(token)
}
