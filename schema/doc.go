package schema

import (
	"fmt"

	"github.com/google/uuid"
)

// Doc is the result of one analysis run: the raw text plus everything the
// pipeline has derived from it. The raw text is owned exclusively by the Doc;
// spans index into it and are append-only once assigned. Annotation stages
// may fill Word annotation fields and append to Pipeline, nothing else.
type Doc struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	// Raw is the immutable source string all spans index into.
	Raw string `json:"raw"`

	// SentenceSpans and TokenSpans are each strictly increasing by start and
	// pairwise non-overlapping. Token spans nest within sentence spans but
	// need not touch a sentence boundary.
	SentenceSpans []Span `json:"sentence_spans"`
	TokenSpans    []Span `json:"token_spans"`

	Words []Word `json:"words"`

	// Pipeline records, in order, the identifiers of the stages that have
	// contributed to this Doc. Empty until a stage runs.
	Pipeline []string `json:"pipeline"`
}

// NewDoc creates an empty Doc for the given language and raw text.
func NewDoc(language, raw string) *Doc {
	return &Doc{
		ID:       uuid.New().String(),
		Language: language,
		Raw:      raw,
	}
}

// AppendStage records a stage identifier in the Doc's provenance.
func (d *Doc) AppendStage(name string) {
	d.Pipeline = append(d.Pipeline, name)
}

// Tokens materializes every token span against the raw text, in token order.
func (d *Doc) Tokens() ([]string, error) {
	tokens := make([]string, len(d.TokenSpans))
	for i, sp := range d.TokenSpans {
		tok, err := sp.Materialize(d.Raw)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Sentences materializes every sentence span against the raw text, in order.
func (d *Doc) Sentences() ([]string, error) {
	sents := make([]string, len(d.SentenceSpans))
	for i, sp := range d.SentenceSpans {
		s, err := sp.Materialize(d.Raw)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		sents[i] = s
	}
	return sents, nil
}

// Validate checks the Doc's span invariants: both span sequences strictly
// increasing, non-overlapping, and within the raw text.
func (d *Doc) Validate() error {
	if !ValidSpanSequence(d.SentenceSpans, len(d.Raw)) {
		return fmt.Errorf("sentence spans violate ordering invariant: %w", ErrSpanOutOfRange)
	}
	if !ValidSpanSequence(d.TokenSpans, len(d.Raw)) {
		return fmt.Errorf("token spans violate ordering invariant: %w", ErrSpanOutOfRange)
	}
	return nil
}
