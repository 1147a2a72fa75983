package index

// DocumentWeights is the sparse TF-IDF vector for one document, keyed by the
// document's distinct normalized tokens. Tokens that occur in every document
// of the corpus keep their key with a weight of 0; tokens the document does
// not contain are never keys, so a plain map lookup with its zero default is
// the scoring contract.
type DocumentWeights map[string]float64
