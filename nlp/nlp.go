// Package nlp is the analysis entry point. An NLP value is bound to one
// language at construction time; Analyze runs the language's boundary
// detectors over raw text and assembles the resulting Doc.
package nlp

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ancientnlp/glossa/callbacks"
	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/schema"
	"github.com/ancientnlp/glossa/sentence"
	"github.com/ancientnlp/glossa/settings"
	"github.com/ancientnlp/glossa/tokenizer"
)

// TokenizeStage is the provenance identifier Analyze records.
const TokenizeStage = "tokenize"

// NLP analyzes raw text in one language. Construction resolves the sentence
// and word detectors; after that an NLP value holds no mutable state and a
// single instance is safe to share across goroutines.
type NLP struct {
	language    languages.Language
	store       *modelstore.Store
	sentenceTok sentence.Tokenizer
	wordTok     *tokenizer.WordTokenizer
	processes   []schema.Process
	manager     *callbacks.CallbackManager
}

// Option configures an NLP instance.
type Option func(*config)

type config struct {
	store     *modelstore.Store
	cache     *DetectorCache
	wordTok   *tokenizer.WordTokenizer
	processes []schema.Process
	manager   *callbacks.CallbackManager
	fallback  bool
}

// WithStore sets the model store detectors load from. Default: the store
// rooted at settings.GetDataDir().
func WithStore(store *modelstore.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithCache makes detector resolution go through the given cache: populated
// on first use, reused afterwards, never invalidated within a process run.
func WithCache(cache *DetectorCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithWordTokenizer overrides the word boundary detector.
func WithWordTokenizer(w *tokenizer.WordTokenizer) Option {
	return func(c *config) {
		c.wordTok = w
	}
}

// WithProcesses sets the annotation processes Analyze runs after
// tokenization, replacing the language's default pipeline.
func WithProcesses(processes ...schema.Process) Option {
	return func(c *config) {
		c.processes = processes
	}
}

// WithCallbacks sets the callback manager analysis events are sent to.
func WithCallbacks(m *callbacks.CallbackManager) Option {
	return func(c *config) {
		c.manager = m
	}
}

// WithoutFallback makes construction fail for languages that have no sentence
// detector dispatch entry, instead of using the generic default detector.
func WithoutFallback() Option {
	return func(c *config) {
		c.fallback = false
	}
}

// New creates an NLP instance for a language. It fails with
// languages.ErrUnknownLanguage for unregistered tags and with
// modelstore.ErrModelNotFound when the language needs a trained sentence
// model that is not installed; the detector is never silently downgraded.
func New(iso string, opts ...Option) (*NLP, error) {
	cfg := config{fallback: settings.GetLanguageFallback()}
	for _, opt := range opts {
		opt(&cfg)
	}

	lang, err := languages.Get(iso)
	if err != nil {
		return nil, err
	}

	if cfg.store == nil {
		cfg.store = modelstore.New(settings.GetDataDir())
	}
	if cfg.wordTok == nil {
		cfg.wordTok = tokenizer.NewWord(tokenizer.WithLanguage(lang.ISO))
	}
	if cfg.manager == nil {
		cfg.manager = callbacks.NewCallbackManager()
	}
	if cfg.processes == nil {
		pipe, err := DefaultPipeline(lang.ISO)
		if err != nil {
			return nil, err
		}
		cfg.processes = pipe.Processes
	}

	sentenceTok, err := resolveSentenceTokenizer(&cfg, lang)
	if err != nil {
		return nil, err
	}

	return &NLP{
		language:    lang,
		store:       cfg.store,
		sentenceTok: sentenceTok,
		wordTok:     cfg.wordTok,
		processes:   cfg.processes,
		manager:     cfg.manager,
	}, nil
}

func resolveSentenceTokenizer(cfg *config, lang languages.Language) (sentence.Tokenizer, error) {
	if cfg.cache != nil {
		if tok, ok := cfg.cache.Get(lang.ISO, sentence.ModelFamily); ok {
			return tok, nil
		}
	}

	var dispatchOpts []sentence.DispatchOption
	if !cfg.fallback {
		dispatchOpts = append(dispatchOpts, sentence.WithoutFallback())
	}

	tok, err := sentence.ForLanguage(cfg.store, lang.ISO, dispatchOpts...)
	if err != nil {
		if errors.Is(err, modelstore.ErrModelNotFound) {
			return nil, fmt.Errorf("sentence model for %s is not installed under %s; install the %s tokenization models and retry: %w",
				lang.Name, cfg.store.Root(), lang.ISO, err)
		}
		return nil, err
	}

	if cfg.cache != nil {
		cfg.cache.Put(lang.ISO, sentence.ModelFamily, tok)
	}
	return tok, nil
}

// Language returns the language this instance analyzes.
func (n *NLP) Language() languages.Language {
	return n.language
}

// SentenceDetector returns the resolved sentence detector's name.
func (n *NLP) SentenceDetector() string {
	return n.sentenceTok.Name()
}

// Analyze runs sentence and word boundary detection over text and assembles
// the Doc, then runs the configured annotation processes in order. The two
// detectors make independent passes over the same text. Empty input yields a
// Doc with no spans and no words.
func (n *NLP) Analyze(ctx context.Context, text string) (*schema.Doc, error) {
	eventID := n.manager.OnEventStart(callbacks.CBEventTypeAnalyze, map[string]interface{}{
		string(callbacks.EventPayloadLanguage):  n.language.ISO,
		string(callbacks.EventPayloadTextBytes): len(text),
	}, "", "")

	doc := n.tokenize(text)

	var err error
	for _, proc := range n.processes {
		doc, err = proc.Run(ctx, doc)
		if err != nil {
			n.manager.OnEventEnd(callbacks.CBEventTypeAnalyze, map[string]interface{}{
				string(callbacks.EventPayloadException): err,
			}, eventID)
			return nil, fmt.Errorf("process %s: %w", proc.Name(), err)
		}
	}

	n.manager.OnEventEnd(callbacks.CBEventTypeAnalyze, map[string]interface{}{
		string(callbacks.EventPayloadSentences): len(doc.SentenceSpans),
		string(callbacks.EventPayloadTokens):    len(doc.TokenSpans),
	}, eventID)
	return doc, nil
}

func (n *NLP) tokenize(text string) *schema.Doc {
	doc := schema.NewDoc(n.language.ISO, text)

	n.manager.OnEventStart(callbacks.CBEventTypeSentenceSegment, map[string]interface{}{
		string(callbacks.EventPayloadDetector): n.sentenceTok.Name(),
	}, "", "")
	doc.SentenceSpans = n.sentenceTok.Tokenize(text)
	n.manager.OnEventEnd(callbacks.CBEventTypeSentenceSegment, map[string]interface{}{
		string(callbacks.EventPayloadSentences): len(doc.SentenceSpans),
	}, "")

	n.manager.OnEventStart(callbacks.CBEventTypeWordTokenize, nil, "", "")
	doc.TokenSpans = n.wordTok.Tokenize(text)
	n.manager.OnEventEnd(callbacks.CBEventTypeWordTokenize, map[string]interface{}{
		string(callbacks.EventPayloadTokens): len(doc.TokenSpans),
	}, "")

	doc.Words = assembleWords(doc)
	doc.AppendStage(TokenizeStage)
	return doc
}

// assembleWords builds one Word per token span, assigning each token the
// sentence whose span starts at or before the token start.
func assembleWords(doc *schema.Doc) []schema.Word {
	if len(doc.TokenSpans) == 0 {
		return nil
	}
	words := make([]schema.Word, len(doc.TokenSpans))
	for i, sp := range doc.TokenSpans {
		sentIdx := sort.Search(len(doc.SentenceSpans), func(j int) bool {
			return doc.SentenceSpans[j].Start > sp.Start
		}) - 1
		if sentIdx < 0 {
			sentIdx = 0
		}
		words[i] = schema.Word{
			CharSpan:      sp,
			TokenIndex:    i,
			SentenceIndex: sentIdx,
		}
	}
	return words
}

// Tokens materializes each of the Doc's token spans against its raw text,
// preserving token order.
func Tokens(doc *schema.Doc) ([]string, error) {
	return doc.Tokens()
}
