package model

// Document is one entry of a corpus: a stable identifier plus the raw text it
// was loaded with. Documents are immutable once created; their position in the
// corpus is assigned by the document store and never changes within a session.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
