package tokenizer

import (
	"regexp"
	"strings"

	"github.com/docsift/docsift/internal/lang"
)

// wordPunctRegex splits text the way a word/punctuation tokenizer does: runs
// of word characters and runs of other non-space characters become separate
// tokens, so "don't" yields "don", "'", "t".
var wordPunctRegex = regexp.MustCompile(`\w+|[^\w\s]+`)

// punctuation covers the ASCII punctuation characters stripped from each
// token after splitting.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Analyzer turns raw text into normalized tokens. The pipeline order is
// fixed: lowercase, wordpunct split, punctuation stripping, stopword
// filtering, stemming, then lemmatization. Documents and queries must go
// through the same Analyzer, otherwise their tokens will not match at
// scoring time.
type Analyzer struct {
	resources lang.Resources
}

// NewAnalyzer creates an Analyzer over the given linguistic resources.
func NewAnalyzer(resources lang.Resources) *Analyzer {
	return &Analyzer{resources: resources}
}

// Analyze converts a string into its normalized token sequence. Order and
// duplicates are preserved; the result is empty (never nil) for text that
// normalizes away completely. Analyze is a pure function of its input and
// the fixed resources.
func (a *Analyzer) Analyze(text string) []string {
	lowered := strings.ToLower(text)
	split := wordPunctRegex.FindAllString(lowered, -1)

	tokens := make([]string, 0, len(split))
	for _, raw := range split {
		token := stripPunctuation(raw)
		if token == "" {
			continue
		}
		if a.resources.IsStopword(token) {
			continue
		}
		token = a.resources.Stem(token)
		token = a.resources.Lemmatize(token)
		tokens = append(tokens, token)
	}
	return tokens
}

// stripPunctuation removes punctuation characters anywhere in the token, not
// just at its edges.
func stripPunctuation(token string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, token)
}
