package sentence

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/schema"
)

type RegexTokenizerTestSuite struct {
	suite.Suite
}

func TestRegexTokenizerTestSuite(t *testing.T) {
	suite.Run(t, new(RegexTokenizerTestSuite))
}

func (s *RegexTokenizerTestSuite) TestOffsetRecovery() {
	r, err := NewRegex("lat", LanguageVars{SentEndChars: []string{"."}})
	s.Require().NoError(err)

	spans := r.Tokenize("A. B.")
	s.Equal([]schema.Span{{Start: 0, Stop: 2}, {Start: 3, Stop: 5}}, spans)
}

func (s *RegexTokenizerTestSuite) TestSegmentsKeepTerminators() {
	r, err := NewRegex("grc", GreekVars())
	s.Require().NoError(err)

	text := "πρῶτον μέν· ἔπειτα δέ. τέλος;"
	spans := r.Tokenize(text)
	s.Require().Len(spans, 3)

	first, err := spans[0].Materialize(text)
	s.Require().NoError(err)
	s.Equal("πρῶτον μέν·", first)

	last, err := spans[2].Materialize(text)
	s.Require().NoError(err)
	s.Equal("τέλος;", last)
}

func (s *RegexTokenizerTestSuite) TestIndicDanda() {
	r, err := NewRegex("san", IndicVars())
	s.Require().NoError(err)

	text := "धर्मक्षेत्रे कुरुक्षेत्रे। मामकाः पाण्डवाश्चैव॥"
	spans := r.Tokenize(text)
	s.Require().Len(spans, 2)
	s.True(schema.ValidSpanSequence(spans, len(text)))

	first, err := spans[0].Materialize(text)
	s.Require().NoError(err)
	s.Equal("धर्मक्षेत्रे कुरुक्षेत्रे।", first)
}

func (s *RegexTokenizerTestSuite) TestEmptyInput() {
	r, err := NewRegex("lat", LatinVars(false))
	s.Require().NoError(err)
	s.Empty(r.Tokenize(""))
}

func (s *RegexTokenizerTestSuite) TestNoBoundary() {
	r, err := NewRegex("lat", LatinVars(false))
	s.Require().NoError(err)

	text := "sine fine"
	s.Equal([]schema.Span{{Start: 0, Stop: len(text)}}, r.Tokenize(text))
}

func (s *RegexTokenizerTestSuite) TestTrailingTerminator() {
	r, err := NewRegex("lat", LatinVars(false))
	s.Require().NoError(err)

	// The final boundary closes the last span; no empty trailing span.
	spans := r.Tokenize("Veni. Vidi. Vici.")
	s.Len(spans, 3)
	s.Equal(schema.Span{Start: 12, Stop: 17}, spans[2])

	spans = r.Tokenize("Veni. ")
	s.Equal([]schema.Span{{Start: 0, Stop: 5}}, spans)
}

func (s *RegexTokenizerTestSuite) TestTerminatorRun() {
	r, err := NewRegex("lat", LatinVars(false))
	s.Require().NoError(err)

	text := "Quid?! Nescio."
	spans := r.Tokenize(text)
	s.Require().Len(spans, 2)
	first, err := spans[0].Materialize(text)
	s.Require().NoError(err)
	s.Equal("Quid?!", first)
}

func (s *RegexTokenizerTestSuite) TestEmptyTerminatorListFails() {
	_, err := NewRegex("lat", LanguageVars{})
	s.ErrorIs(err, ErrNoTerminators)
}

func (s *RegexTokenizerTestSuite) TestName() {
	r, err := NewRegex("grc", GreekVars())
	s.Require().NoError(err)
	s.Equal("regex/grc", r.Name())
}

type PunktTokenizerTestSuite struct {
	suite.Suite
	store *modelstore.Store
}

func TestPunktTokenizerTestSuite(t *testing.T) {
	suite.Run(t, new(PunktTokenizerTestSuite))
}

func (s *PunktTokenizerTestSuite) SetupTest() {
	s.store = modelstore.New(s.T().TempDir())
}

// installEmptyModel installs minimal training data: an untrained model with
// default parameters, enough to exercise loading and span recovery.
func (s *PunktTokenizerTestSuite) installEmptyModel(filename string) {
	s.Require().NoError(s.store.Install("lat", ModelFamily, filename, []byte(`{}`)))
}

func (s *PunktTokenizerTestSuite) TestMissingModel() {
	_, err := NewPunkt(s.store, "lat")
	s.ErrorIs(err, modelstore.ErrModelNotFound)
}

func (s *PunktTokenizerTestSuite) TestLoadByISOCode() {
	s.installEmptyModel("lat_punkt.json")
	p, err := NewPunkt(s.store, "lat")
	s.Require().NoError(err)
	s.Equal("punkt/lat", p.Name())
}

func (s *PunktTokenizerTestSuite) TestLoadLegacyFilename() {
	// Data installed by older releases is keyed by the long language name.
	s.installEmptyModel("latin_punkt.json")
	_, err := NewPunkt(s.store, "lat")
	s.Require().NoError(err)
}

func (s *PunktTokenizerTestSuite) TestTokenizeSpansCoverText() {
	s.installEmptyModel("lat_punkt.json")
	p, err := NewPunkt(s.store, "lat")
	s.Require().NoError(err)

	text := "Gallia est omnis divisa. Caesar venit. Vicit."
	spans := p.Tokenize(text)
	s.Require().NotEmpty(spans)
	s.True(schema.ValidSpanSequence(spans, len(text)))

	// Every recovered span re-slices to a trimmed, non-empty segment.
	for _, sp := range spans {
		seg, err := sp.Materialize(text)
		s.Require().NoError(err)
		s.NotEmpty(seg)
	}
}

func (s *PunktTokenizerTestSuite) TestTokenizeEmpty() {
	p := NewDefaultPunkt()
	s.Empty(p.Tokenize(""))
}

func (s *PunktTokenizerTestSuite) TestDefaultDetectorNoBoundary() {
	p := NewDefaultPunkt()
	text := "sine ulla interpunctione"
	spans := p.Tokenize(text)
	s.Require().NotEmpty(spans)
	s.Equal(0, spans[0].Start)
	s.Equal("punkt/default", p.Name())
}

func (s *PunktTokenizerTestSuite) TestTokenizeWithVarsOverride() {
	p := NewDefaultPunkt()
	text := "primum; deinde; postremo"

	spans, err := p.TokenizeWithVars(text, LanguageVars{SentEndChars: []string{";"}})
	s.Require().NoError(err)
	s.Require().Len(spans, 3)

	first, err := spans[0].Materialize(text)
	s.Require().NoError(err)
	s.Equal("primum;", first)
}

func (s *PunktTokenizerTestSuite) TestTokenizeWithVarsEmptyFails() {
	p := NewDefaultPunkt()
	_, err := p.TokenizeWithVars("abc", LanguageVars{})
	s.ErrorIs(err, ErrNoTerminators)
}

func (s *PunktTokenizerTestSuite) TestIdempotent() {
	s.installEmptyModel("lat_punkt.json")
	p, err := NewPunkt(s.store, "lat")
	s.Require().NoError(err)

	text := "Veni. Vidi. Vici."
	s.Equal(p.Tokenize(text), p.Tokenize(text))
}

func TestForLanguageDispatch(t *testing.T) {
	store := modelstore.New(t.TempDir())

	t.Run("regex languages", func(t *testing.T) {
		for _, iso := range []string{"grc", "san", "ben", "hin", "mar", "tel"} {
			tok, err := ForLanguage(store, iso)
			if err != nil {
				t.Fatalf("ForLanguage(%q): %v", iso, err)
			}
			if _, ok := tok.(*Regex); !ok {
				t.Fatalf("ForLanguage(%q) = %T, want *Regex", iso, tok)
			}
		}
	})

	t.Run("trained language without model fails loudly", func(t *testing.T) {
		_, err := ForLanguage(store, "lat")
		if err == nil {
			t.Fatal("expected missing-model error for lat")
		}
	})

	t.Run("trained language with installed model", func(t *testing.T) {
		if err := store.Install("lat", ModelFamily, "lat_punkt.json", []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
		tok, err := ForLanguage(store, "lat")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := tok.(*Punkt); !ok {
			t.Fatalf("ForLanguage(lat) = %T, want *Punkt", tok)
		}
	})

	t.Run("registered language without entry falls back", func(t *testing.T) {
		tok, err := ForLanguage(store, "got")
		if err != nil {
			t.Fatal(err)
		}
		if tok.Name() != "punkt/default" {
			t.Fatalf("got detector %q, want punkt/default", tok.Name())
		}
	})

	t.Run("fallback disabled", func(t *testing.T) {
		_, err := ForLanguage(store, "got", WithoutFallback())
		if err == nil {
			t.Fatal("expected error with fallback disabled")
		}
	})

	t.Run("unregistered language", func(t *testing.T) {
		_, err := ForLanguage(store, "zz")
		if err == nil {
			t.Fatal("expected unknown-language error")
		}
	})
}

func TestStrategiesTableIsClosed(t *testing.T) {
	table := Strategies()
	if table["lat"] != StrategyPunkt {
		t.Fatalf("lat strategy = %q, want punkt", table["lat"])
	}
	for _, iso := range []string{"grc", "san", "ben", "hin", "mar", "tel"} {
		if table[iso] != StrategyRegex {
			t.Fatalf("%s strategy = %q, want regex", iso, table[iso])
		}
	}
	for iso := range table {
		if !languages.IsRegistered(iso) {
			t.Fatalf("dispatch key %q is not a registered language", iso)
		}
	}
}
