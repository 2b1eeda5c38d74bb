// Package schema defines the data model exchanged between analysis stages:
// byte-offset spans, word tokens, and the analyzed document.
package schema

import (
	"errors"
	"fmt"
)

// ErrSpanOutOfRange reports a span whose offsets do not fit the text it is
// sliced from. It indicates a programming error (the span was computed
// against a different string), never bad user input.
var ErrSpanOutOfRange = errors.New("span out of range")

// Span is a half-open [Start, Stop) byte-offset range into a source text.
// A Span never owns text; it only indexes into it.
type Span struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// NewSpan creates a Span covering [start, stop).
func NewSpan(start, stop int) Span {
	return Span{Start: start, Stop: stop}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// Contains reports whether byte offset i falls inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.Stop
}

// Before reports whether s ends at or before other begins.
func (s Span) Before(other Span) bool {
	return s.Stop <= other.Start
}

// Overlaps reports whether the two spans share at least one offset.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.Stop && other.Start < s.Stop
}

// Materialize slices the span out of text. It fails with ErrSpanOutOfRange
// when the span does not fit within text.
func (s Span) Materialize(text string) (string, error) {
	if s.Start < 0 || s.Stop < s.Start || s.Stop > len(text) {
		return "", fmt.Errorf("%w: [%d, %d) against %d bytes", ErrSpanOutOfRange, s.Start, s.Stop, len(text))
	}
	return text[s.Start:s.Stop], nil
}

// ValidSpanSequence reports whether spans are strictly increasing by start,
// pairwise non-overlapping, and all within a text of n bytes.
func ValidSpanSequence(spans []Span, n int) bool {
	for i, sp := range spans {
		if sp.Start < 0 || sp.Stop < sp.Start || sp.Stop > n {
			return false
		}
		if i > 0 && (sp.Start <= spans[i-1].Start || sp.Start < spans[i-1].Stop) {
			return false
		}
	}
	return true
}
