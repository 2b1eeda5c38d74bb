package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ancientnlp/glossa/callbacks"
	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/schema"
	"github.com/ancientnlp/glossa/sentence"
)

type NLPTestSuite struct {
	suite.Suite
	store *modelstore.Store
}

func TestNLPTestSuite(t *testing.T) {
	suite.Run(t, new(NLPTestSuite))
}

func (s *NLPTestSuite) SetupTest() {
	s.store = modelstore.New(s.T().TempDir())
	// Install minimal Latin training data so the trained variant loads.
	s.Require().NoError(s.store.Install("lat", sentence.ModelFamily, "lat_punkt.json", []byte(`{}`)))
}

func (s *NLPTestSuite) TestAnalyzeLatin() {
	n, err := New("lat", WithStore(s.store))
	s.Require().NoError(err)
	s.Equal("punkt/lat", n.SentenceDetector())

	text := "Preclarum sane atque humanitatis plenum eorum fuit institutum. Hinc ad memoriam posteritatis prodite imagines."
	doc, err := n.Analyze(context.Background(), text)
	s.Require().NoError(err)

	s.Equal("lat", doc.Language)
	s.Equal(text, doc.Raw)
	s.Require().NoError(doc.Validate())
	s.Len(doc.SentenceSpans, 2)
	s.NotEmpty(doc.TokenSpans)
	s.Len(doc.Words, len(doc.TokenSpans))
	s.Equal([]string{TokenizeStage}, doc.Pipeline)

	tokens, err := Tokens(doc)
	s.Require().NoError(err)
	s.Equal("Preclarum", tokens[0])
	s.Equal("sane", tokens[1])
	s.Equal("atque", tokens[2])
}

func (s *NLPTestSuite) TestAnalyzeGreekRegexPath() {
	n, err := New("grc", WithStore(s.store))
	s.Require().NoError(err)
	s.Equal("regex/grc", n.SentenceDetector())

	text := "Τοῦτο εἰπὼν ᾐνίξατο. Ἔστι δὲ πολὺ μείζων ἡ ἀγάπη."
	doc, err := n.Analyze(context.Background(), text)
	s.Require().NoError(err)

	s.Len(doc.SentenceSpans, 2)
	s.Require().NoError(doc.Validate())

	sents, err := doc.Sentences()
	s.Require().NoError(err)
	s.Equal("Τοῦτο εἰπὼν ᾐνίξατο.", sents[0])

	tokens, err := Tokens(doc)
	s.Require().NoError(err)
	s.Equal("Τοῦτο", tokens[0])
}

func (s *NLPTestSuite) TestSentenceIndexAssignment() {
	n, err := New("lat", WithStore(s.store))
	s.Require().NoError(err)

	doc, err := n.Analyze(context.Background(), "Veni. Vidi.")
	s.Require().NoError(err)

	s.Require().Len(doc.Words, 2)
	s.Equal(0, doc.Words[0].SentenceIndex)
	s.Equal(1, doc.Words[1].SentenceIndex)
	s.Equal(0, doc.Words[0].TokenIndex)
	s.Equal(1, doc.Words[1].TokenIndex)
}

func (s *NLPTestSuite) TestAnalyzeEmptyInput() {
	n, err := New("lat", WithStore(s.store))
	s.Require().NoError(err)

	doc, err := n.Analyze(context.Background(), "")
	s.Require().NoError(err)
	s.Empty(doc.SentenceSpans)
	s.Empty(doc.TokenSpans)
	s.Empty(doc.Words)
}

func (s *NLPTestSuite) TestAnalyzeIdempotent() {
	n, err := New("lat", WithStore(s.store))
	s.Require().NoError(err)

	text := "Gallia est omnis divisa in partes tres. Quarum unam incolunt Belgae."
	first, err := n.Analyze(context.Background(), text)
	s.Require().NoError(err)
	second, err := n.Analyze(context.Background(), text)
	s.Require().NoError(err)

	s.Equal(first.SentenceSpans, second.SentenceSpans)
	s.Equal(first.TokenSpans, second.TokenSpans)
}

func (s *NLPTestSuite) TestMissingModelRemediation() {
	empty := modelstore.New(s.T().TempDir())
	_, err := New("lat", WithStore(empty))
	s.Require().Error(err)
	s.ErrorIs(err, modelstore.ErrModelNotFound)
	s.Contains(err.Error(), "Latin")
	s.Contains(err.Error(), empty.Root())
}

func (s *NLPTestSuite) TestUnknownLanguage() {
	_, err := New("zz", WithStore(s.store))
	s.ErrorIs(err, languages.ErrUnknownLanguage)
}

func (s *NLPTestSuite) TestUnmappedLanguageFallsBack() {
	n, err := New("got", WithStore(s.store))
	s.Require().NoError(err)
	s.Equal("punkt/default", n.SentenceDetector())

	doc, err := n.Analyze(context.Background(), "atta unsar thu in himinam.")
	s.Require().NoError(err)
	s.NotEmpty(doc.SentenceSpans)
}

func (s *NLPTestSuite) TestWithoutFallback() {
	_, err := New("got", WithStore(s.store), WithoutFallback())
	s.Error(err)
}

func (s *NLPTestSuite) TestDetectorCacheReuse() {
	cache := NewDetectorCache()

	n1, err := New("grc", WithStore(s.store), WithCache(cache))
	s.Require().NoError(err)
	s.Equal(1, cache.Len())

	// Second construction resolves through the cache.
	n2, err := New("grc", WithStore(modelstore.New(s.T().TempDir())), WithCache(cache))
	s.Require().NoError(err)
	s.Equal(n1.SentenceDetector(), n2.SentenceDetector())
	s.Equal(1, cache.Len())
}

func (s *NLPTestSuite) TestCachedDetectorWins() {
	cache := NewDetectorCache()
	custom, err := sentence.NewRegex("lat", sentence.LanguageVars{SentEndChars: []string{"!"}})
	s.Require().NoError(err)
	cache.Put("lat", sentence.ModelFamily, custom)

	n, err := New("lat", WithStore(modelstore.New(s.T().TempDir())), WithCache(cache))
	s.Require().NoError(err)
	s.Equal("regex/lat", n.SentenceDetector())
}

// posStub fills a fixed POS tag on every word.
type posStub struct {
	err error
}

func (p *posStub) Name() string { return "pos-stub" }

func (p *posStub) Run(ctx context.Context, doc *schema.Doc) (*schema.Doc, error) {
	if p.err != nil {
		return nil, p.err
	}
	for i := range doc.Words {
		doc.Words[i].POS = "X"
	}
	doc.AppendStage(p.Name())
	return doc, nil
}

func (s *NLPTestSuite) TestProcessesRunInOrder() {
	n, err := New("lat", WithStore(s.store), WithProcesses(&posStub{}))
	s.Require().NoError(err)

	doc, err := n.Analyze(context.Background(), "Veni. Vidi.")
	s.Require().NoError(err)
	s.Equal([]string{TokenizeStage, "pos-stub"}, doc.Pipeline)
	for _, w := range doc.Words {
		s.Equal("X", w.POS)
	}
}

func (s *NLPTestSuite) TestProcessErrorPropagates() {
	boom := errors.New("boom")
	n, err := New("lat", WithStore(s.store), WithProcesses(&posStub{err: boom}))
	s.Require().NoError(err)

	_, err = n.Analyze(context.Background(), "Veni.")
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "pos-stub")
}

func (s *NLPTestSuite) TestCallbacksObserveAnalysis() {
	counter := callbacks.NewSpanCountingHandler()
	manager := callbacks.NewCallbackManager(callbacks.WithHandlers([]callbacks.CallbackHandler{counter}))

	n, err := New("lat", WithStore(s.store), WithCallbacks(manager))
	s.Require().NoError(err)

	_, err = n.Analyze(context.Background(), "Veni. Vidi. Vici.")
	s.Require().NoError(err)

	s.Equal(1, counter.AnalyzeCount())
	s.Equal(3, counter.TotalSentences())
	s.Equal(3, counter.TotalTokens())
}

func TestDefaultPipeline(t *testing.T) {
	pipe, err := DefaultPipeline("lat")
	if err != nil {
		t.Fatal(err)
	}
	if pipe.Description != "Pipeline for the Latin language" {
		t.Fatalf("unexpected description %q", pipe.Description)
	}
	if pipe.Language.ISO != "lat" {
		t.Fatalf("unexpected language %q", pipe.Language.ISO)
	}

	pipe, err = DefaultPipeline("got")
	if err != nil {
		t.Fatal(err)
	}
	if pipe.Description != "Pipeline for the Gothic language" {
		t.Fatalf("unexpected description %q", pipe.Description)
	}

	if _, err := DefaultPipeline("zz"); err == nil {
		t.Fatal("expected error for unregistered language")
	}
}
