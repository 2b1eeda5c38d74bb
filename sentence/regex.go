package sentence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ancientnlp/glossa/schema"
)

// ErrNoTerminators reports a regex detector constructed with an empty
// terminator set. The construction fails; there is no usable default to
// substitute silently.
var ErrNoTerminators = errors.New("no sentence terminator characters configured")

// Regex splits text after any terminator character that is followed by
// whitespace. Unlike a plain string split it recovers the byte offsets of
// each segment, since downstream slicing works on spans, not copies.
type Regex struct {
	language string
	vars     LanguageVars
	pattern  *regexp.Regexp
}

// NewRegex creates a regex sentence detector for the language. It fails with
// ErrNoTerminators when vars carries no terminator characters.
func NewRegex(language string, vars LanguageVars) (*Regex, error) {
	if len(vars.SentEndChars) == 0 {
		return nil, fmt.Errorf("%w (language %q)", ErrNoTerminators, language)
	}
	pattern, err := compileSplitPattern(vars)
	if err != nil {
		return nil, fmt.Errorf("compiling sentence split pattern for %q: %w", language, err)
	}
	return &Regex{language: language, vars: vars, pattern: pattern}, nil
}

// compileSplitPattern builds the terminator-then-whitespace pattern. The
// split point sits between the two, so the terminator stays with the left
// segment and the single whitespace byte is consumed.
func compileSplitPattern(vars LanguageVars) (*regexp.Regexp, error) {
	var class strings.Builder
	for _, ch := range vars.SentEndChars {
		for _, r := range ch {
			switch r {
			case '\\', ']', '^', '-':
				class.WriteRune('\\')
			}
			class.WriteRune(r)
		}
	}
	return regexp.Compile(`[` + class.String() + `]\s`)
}

// Name implements Tokenizer.
func (r *Regex) Name() string {
	return "regex/" + r.language
}

// Tokenize implements Tokenizer. Each detected boundary closes the current
// segment immediately after its terminator; a trailing terminator with no
// following text closes the final span rather than opening an empty one.
func (r *Regex) Tokenize(text string) []schema.Span {
	if text == "" {
		return nil
	}
	var spans []schema.Span
	start := 0
	for _, m := range r.pattern.FindAllStringIndex(text, -1) {
		// m covers the terminator rune plus one whitespace byte.
		spans = append(spans, schema.NewSpan(start, m[1]-1))
		start = m[1]
	}
	if start < len(text) {
		spans = append(spans, schema.NewSpan(start, len(text)))
	}
	return spans
}
