package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/lang"
)

// stubResources gives the pipeline deterministic behavior independent of the
// real stemmer and lemma dictionary. Stemming strips a trailing "s" and
// lemmatization looks up the stemmed form, so the stem-before-lemmatize
// order is observable.
type stubResources struct {
	stopwords map[string]bool
	lemmas    map[string]string
}

func (s *stubResources) IsStopword(token string) bool { return s.stopwords[token] }

func (s *stubResources) Stem(token string) string {
	if len(token) > 1 && token[len(token)-1] == 's' {
		return token[:len(token)-1]
	}
	return token
}

func (s *stubResources) Lemmatize(token string) string {
	if lemma, ok := s.lemmas[token]; ok {
		return lemma
	}
	return token
}

func newStub() *stubResources {
	return &stubResources{
		stopwords: map[string]bool{"the": true, "is": true, "in": true, "a": true, "don": true, "t": true},
		// Keyed by stemmed forms: "better" is only reachable if "betters"
		// was stemmed first.
		lemmas: map[string]string{"better": "good", "ran": "run"},
	}
}

func TestAnalyze(t *testing.T) {
	analyzer := NewAnalyzer(newStub())

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"only whitespace", "   \t\n", []string{}},
		{"only punctuation", "!?...", []string{}},
		{"lowercasing", "HELLO World", []string{"hello", "world"}},
		{"stopword removal", "the dog is here", []string{"dog", "here"}},
		{"contraction splits then drops", "don't panic", []string{"panic"}},
		{"punctuation stripped per token", "hello, world!", []string{"hello", "world"}},
		{"duplicates preserved", "dog dog dog", []string{"dog", "dog", "dog"}},
		{"order preserved", "zebra apple mango", []string{"zebra", "apple", "mango"}},
		{"stemming strips plural", "dogs cats", []string{"dog", "cat"}},
		{"lemma applied after stem", "betters", []string{"good"}},
		{"lemma fallback keeps token", "ran quickly", []string{"run", "quickly"}},
		{"numbers survive", "route 66", []string{"route", "66"}},
		{"hyphenated words split", "state-of-the-art", []string{"state", "of", "art"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Analyze(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyzeEnglishQuery(t *testing.T) {
	resources, err := lang.NewEnglish()
	if err != nil {
		t.Fatalf("NewEnglish() error: %v", err)
	}
	analyzer := NewAnalyzer(resources)

	got := analyzer.Analyze("Who is the tallest DOG in the world?")
	if len(got) != 3 {
		t.Fatalf("Analyze() returned %d tokens (%v), want 3", len(got), got)
	}

	// Exact token forms depend on the stemmer and lemma dictionary, but
	// stopwords and uppercase must be gone.
	for _, token := range got {
		switch token {
		case "who", "is", "the", "in", "":
			t.Errorf("stopword or empty token %q survived normalization: %v", token, got)
		}
		if token != strings.ToLower(token) {
			t.Errorf("token %q is not lowercase", token)
		}
	}
}
