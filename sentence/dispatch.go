package sentence

import (
	"fmt"

	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
)

// Strategy names a detector variant in the dispatch table.
type Strategy string

const (
	// StrategyPunkt selects the trained-model variant.
	StrategyPunkt Strategy = "punkt"
	// StrategyRegex selects the terminator-regex variant.
	StrategyRegex Strategy = "regex"
)

type dispatchEntry struct {
	strategy Strategy
	vars     LanguageVars
}

// dispatch is the closed language-to-variant table. Keys are uniform ISO
// 639-3 codes; registered languages absent from the table get the generic
// default detector unless the caller opts out of the fallback.
var dispatch = map[string]dispatchEntry{
	"lat": {strategy: StrategyPunkt, vars: LatinVars(false)},
	"grc": {strategy: StrategyRegex, vars: GreekVars()},
	"san": {strategy: StrategyRegex, vars: IndicVars()},
	"ben": {strategy: StrategyRegex, vars: IndicVars()},
	"hin": {strategy: StrategyRegex, vars: IndicVars()},
	"mar": {strategy: StrategyRegex, vars: IndicVars()},
	"tel": {strategy: StrategyRegex, vars: IndicVars()},
}

type dispatchConfig struct {
	fallback bool
}

// DispatchOption configures ForLanguage.
type DispatchOption func(*dispatchConfig)

// WithoutFallback makes ForLanguage fail for registered languages that have
// no dispatch entry, instead of handing back the generic default detector.
func WithoutFallback() DispatchOption {
	return func(c *dispatchConfig) {
		c.fallback = false
	}
}

// Strategies returns the dispatch table as language → strategy, for
// inspection. The returned map is a copy.
func Strategies() map[string]Strategy {
	out := make(map[string]Strategy, len(dispatch))
	for iso, e := range dispatch {
		out[iso] = e.strategy
	}
	return out
}

// ForLanguage resolves the sentence detector for a language. Unregistered
// tags fail with languages.ErrUnknownLanguage; a missing trained model
// surfaces as modelstore.ErrModelNotFound and is never downgraded to the
// regex variant.
func ForLanguage(store *modelstore.Store, iso string, opts ...DispatchOption) (Tokenizer, error) {
	cfg := dispatchConfig{fallback: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	lang, err := languages.Get(iso)
	if err != nil {
		return nil, err
	}

	entry, ok := dispatch[lang.ISO]
	if !ok {
		if !cfg.fallback {
			return nil, fmt.Errorf("%w: %q has no sentence detector and fallback is disabled", languages.ErrUnknownLanguage, iso)
		}
		return NewDefaultPunkt(), nil
	}

	switch entry.strategy {
	case StrategyPunkt:
		return NewPunkt(store, lang.ISO, WithLanguageVars(entry.vars))
	case StrategyRegex:
		return NewRegex(lang.ISO, entry.vars)
	default:
		return nil, fmt.Errorf("unhandled sentence strategy %q for %q", entry.strategy, iso)
	}
}
