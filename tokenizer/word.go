// Package tokenizer produces word-level token spans from raw text, plus a
// BPE subword counter for corpus accounting.
package tokenizer

import (
	"regexp"

	"github.com/ancientnlp/glossa/schema"
)

// DefaultWordClass matches one maximal run of word characters: letters,
// combining marks (Greek diacritics, Indic matras), digits, and the
// underscore connector.
const DefaultWordClass = `[\p{L}\p{M}\p{N}_]+`

// WordTokenizer detects word boundaries. The same rule set serves every
// language; only the word-character class is overridable per language.
type WordTokenizer struct {
	language string
	pattern  *regexp.Regexp
}

// WordOption configures a WordTokenizer.
type WordOption func(*WordTokenizer)

// WithLanguage tags the tokenizer with a language code. Informational only;
// the default word class already covers the registered scripts.
func WithLanguage(iso string) WordOption {
	return func(w *WordTokenizer) {
		w.language = iso
	}
}

// WithWordClass overrides the word-character class expression.
func WithWordClass(expr string) WordOption {
	return func(w *WordTokenizer) {
		w.pattern = regexp.MustCompile(expr)
	}
}

// NewWord creates a WordTokenizer with the default word class.
func NewWord(opts ...WordOption) *WordTokenizer {
	w := &WordTokenizer{
		pattern: regexp.MustCompile(DefaultWordClass),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Language returns the language tag, or "" for the shared default.
func (w *WordTokenizer) Language() string {
	return w.language
}

// Tokenize returns token spans over maximal word-character runs, strictly
// increasing and non-overlapping; whitespace and punctuation fall in the
// gaps. Empty input yields no spans.
func (w *WordTokenizer) Tokenize(text string) []schema.Span {
	if text == "" {
		return nil
	}
	matches := w.pattern.FindAllStringIndex(text, -1)
	spans := make([]schema.Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, schema.NewSpan(m[0], m[1]))
	}
	return spans
}
