package index

import (
	"bytes"
	"encoding/gob"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TFIDFIndex holds the corpus-wide TF-IDF statistics: one sparse weight map
// per document plus the document-frequency table they were derived from.
// Build produces it in one shot; there is no incremental update path, a
// changed corpus requires a full rebuild. After Build returns the index is
// never mutated and is safe for unlimited concurrent reads.
type TFIDFIndex struct {
	Mu sync.RWMutex

	// Weights is index-aligned with the corpus the index was built from.
	Weights []DocumentWeights

	// DocFreq maps a token to the number of documents containing it at
	// least once (repetition within a document does not count).
	DocFreq map[string]int

	// DocCount is the total number of documents in the corpus.
	DocCount int
}

// Build computes the full index for an ordered corpus of token sequences.
// The corpus must be index-aligned with its documents. Empty token sequences
// are valid and produce empty weight maps. The per-document weight maps are
// computed in parallel; the result does not depend on the parallelism.
func Build(corpus [][]string) *TFIDFIndex {
	docFreq := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			docFreq[token]++
		}
	}

	idx := &TFIDFIndex{
		Weights:  make([]DocumentWeights, len(corpus)),
		DocFreq:  docFreq,
		DocCount: len(corpus),
	}

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, tokens := range corpus {
		group.Go(func() error {
			idx.Weights[i] = idx.documentWeights(tokens)
			return nil
		})
	}
	_ = group.Wait() // workers never return an error

	return idx
}

// documentWeights computes the sparse TF-IDF map over the document's
// distinct tokens. An empty document has no distinct tokens, so term
// frequency is never evaluated against a zero length.
func (idx *TFIDFIndex) documentWeights(tokens []string) DocumentWeights {
	weights := make(DocumentWeights)
	if len(tokens) == 0 {
		return weights
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	docLen := float64(len(tokens))
	for token, count := range counts {
		tf := float64(count) / docLen
		weights[token] = tf * idx.IDF(token)
	}
	return weights
}

// IDF returns log10(N/DF) for the token, or 0 when no document contains it.
// The DF == 0 branch never fires for tokens drawn from an indexed document,
// but IDF is also a public lookup for arbitrary tokens and must not divide
// by zero.
func (idx *TFIDFIndex) IDF(token string) float64 {
	df := idx.DocFreq[token]
	if df == 0 {
		return 0
	}
	return math.Log10(float64(idx.DocCount) / float64(df))
}

// DocumentFrequency returns the number of documents containing the token.
func (idx *TFIDFIndex) DocumentFrequency(token string) int {
	return idx.DocFreq[token]
}

// gobTFIDFIndexData mirrors TFIDFIndex for gob encoding, excluding the mutex.
type gobTFIDFIndexData struct {
	Weights  []DocumentWeights
	DocFreq  map[string]int
	DocCount int
}

// GobEncode implements gob.GobEncoder for TFIDFIndex.
func (idx *TFIDFIndex) GobEncode() ([]byte, error) {
	idx.Mu.RLock()
	defer idx.Mu.RUnlock()

	data := gobTFIDFIndexData{
		Weights:  idx.Weights,
		DocFreq:  idx.DocFreq,
		DocCount: idx.DocCount,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder for TFIDFIndex.
func (idx *TFIDFIndex) GobDecode(raw []byte) error {
	var data gobTFIDFIndexData
	if err := gob.NewDecoder(bytes.NewBuffer(raw)).Decode(&data); err != nil {
		return err
	}

	idx.Mu.Lock()
	defer idx.Mu.Unlock()

	idx.Weights = data.Weights
	idx.DocFreq = data.DocFreq
	idx.DocCount = data.DocCount

	// An index persisted from an empty corpus decodes with nil containers.
	if idx.Weights == nil {
		idx.Weights = make([]DocumentWeights, 0)
	}
	if idx.DocFreq == nil {
		idx.DocFreq = make(map[string]int)
	}
	return nil
}
