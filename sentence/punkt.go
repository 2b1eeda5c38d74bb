package sentence

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"

	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/schema"
)

// ModelFamily is the model-store family sentence models live under.
const ModelFamily = "tokenizers/sentence"

// Punkt is the trained-model sentence detector. It loads one Punkt training
// artifact per language from the model store; a missing artifact is a loud
// failure, never a silent downgrade to the regex variant, because silently
// changing tokenization semantics is worse than failing.
type Punkt struct {
	language  string
	vars      *LanguageVars
	tokenizer *sentences.DefaultSentenceTokenizer
}

// PunktOption configures a Punkt detector.
type PunktOption func(*Punkt)

// WithLanguageVars sets a default terminator override applied on every
// Tokenize call. Per-call overrides via TokenizeWithVars take precedence.
func WithLanguageVars(vars LanguageVars) PunktOption {
	return func(p *Punkt) {
		p.vars = &vars
	}
}

// NewPunkt loads the trained detector for a language from the store. The
// artifact is looked up under the ISO code first and then under the legacy
// long-form name, since data installed by older releases predates the
// ISO-code rename. Fails with modelstore.ErrModelNotFound when neither
// artifact is installed.
func NewPunkt(store *modelstore.Store, iso string, opts ...PunktOption) (*Punkt, error) {
	data, err := loadTrainingData(store, iso)
	if err != nil {
		return nil, err
	}

	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("parsing punkt training data for %q: %w", iso, err)
	}

	p := &Punkt{
		language:  iso,
		tokenizer: sentences.NewSentenceTokenizer(storage),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func loadTrainingData(store *modelstore.Store, iso string) ([]byte, error) {
	data, err := store.Load(iso, ModelFamily, iso+"_punkt.json")
	if err == nil {
		return data, nil
	}

	lang, lerr := languages.Get(iso)
	if lerr == nil && lang.LegacyName != "" {
		if legacy, lerr := store.Load(iso, ModelFamily, lang.LegacyName+"_punkt.json"); lerr == nil {
			return legacy, nil
		}
	}
	return nil, fmt.Errorf("punkt model for %q: %w", iso, err)
}

// NewDefaultPunkt returns the generic, language-agnostic detector: an
// untrained Punkt tokenizer with default parameters. It needs no installed
// artifact and serves registered languages without a dispatch entry.
func NewDefaultPunkt() *Punkt {
	return &Punkt{
		language:  "default",
		tokenizer: sentences.NewSentenceTokenizer(&sentences.Storage{}),
	}
}

// Name implements Tokenizer.
func (p *Punkt) Name() string {
	return "punkt/" + p.language
}

// Tokenize implements Tokenizer. The model returns sentence strings; their
// byte offsets are recovered with a forward cursor over the original text,
// so the spans re-slice cleanly no matter how the model trimmed whitespace.
func (p *Punkt) Tokenize(text string) []schema.Span {
	spans := p.modelSpans(text)
	if p.vars != nil {
		return p.resegment(text, spans, *p.vars)
	}
	return spans
}

// TokenizeWithVars tokenizes with an alternate terminator table for this call
// only. The loaded model is reused as-is; its output is re-segmented on the
// override's terminators.
func (p *Punkt) TokenizeWithVars(text string, vars LanguageVars) ([]schema.Span, error) {
	if len(vars.SentEndChars) == 0 {
		return nil, fmt.Errorf("%w (language %q)", ErrNoTerminators, p.language)
	}
	return p.resegment(text, p.modelSpans(text), vars), nil
}

func (p *Punkt) modelSpans(text string) []schema.Span {
	if text == "" {
		return nil
	}
	var spans []schema.Span
	cursor := 0
	for _, sent := range p.tokenizer.Tokenize(text) {
		seg := strings.TrimSpace(sent.Text)
		if seg == "" {
			continue
		}
		idx := strings.Index(text[cursor:], seg)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		spans = append(spans, schema.NewSpan(start, start+len(seg)))
		cursor = start + len(seg)
	}
	if len(spans) == 0 && strings.TrimSpace(text) != "" {
		spans = append(spans, schema.NewSpan(0, len(text)))
	}
	return spans
}

// resegment re-splits each model span on the override terminator set.
func (p *Punkt) resegment(text string, spans []schema.Span, vars LanguageVars) []schema.Span {
	splitter, err := NewRegex(p.language, vars)
	if err != nil {
		return spans
	}
	var out []schema.Span
	for _, sp := range spans {
		for _, sub := range splitter.Tokenize(text[sp.Start:sp.Stop]) {
			out = append(out, schema.NewSpan(sp.Start+sub.Start, sp.Start+sub.Stop))
		}
	}
	return out
}
