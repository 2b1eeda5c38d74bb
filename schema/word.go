package schema

// Word is a single token produced during analysis. Its span and index fields
// are assigned once at tokenization time and never rewritten; annotation
// stages only fill the optional fields (POS, Scansion, Embedding, Lemma).
type Word struct {
	// CharSpan locates the token within the owning document's raw text.
	CharSpan Span `json:"char_span"`
	// TokenIndex is the position of this token among all tokens in the doc.
	TokenIndex int `json:"token_index"`
	// SentenceIndex is the index of the sentence span holding this token.
	SentenceIndex int `json:"sentence_index"`

	// Surface is the materialized substring. Optional: filled lazily via
	// Surface(doc) or eagerly by the caller; span bookkeeping never depends
	// on it.
	Surface string `json:"surface,omitempty"`

	// Annotation fields, filled by downstream processes.
	POS       string    `json:"pos,omitempty"`
	Lemma     string    `json:"lemma,omitempty"`
	Scansion  string    `json:"scansion,omitempty"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// SurfaceIn materializes the word against its document's raw text. The cached
// Surface field is preferred when already set.
func (w *Word) SurfaceIn(doc *Doc) (string, error) {
	if w.Surface != "" {
		return w.Surface, nil
	}
	return w.CharSpan.Materialize(doc.Raw)
}
