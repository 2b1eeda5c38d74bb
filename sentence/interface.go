// Package sentence detects sentence boundaries. Two strategies exist: a
// trained Punkt model loaded from the local model store, and a regex splitter
// driven by a per-language terminator set. ForLanguage picks the strategy
// from a closed dispatch table.
package sentence

import "github.com/ancientnlp/glossa/schema"

// Tokenizer partitions text into an ordered, non-overlapping sequence of
// sentence spans over the input.
type Tokenizer interface {
	// Name identifies the detector variant, e.g. "punkt/lat" or "regex/grc".
	Name() string
	// Tokenize returns sentence spans in document order. Empty input yields
	// no spans; input with no detected boundary yields a single span.
	Tokenize(text string) []schema.Span
}
