package nlp

import (
	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/schema"
)

// Pipeline names the ordered annotation processes run after tokenization for
// one language. Tokenization itself is not a Pipeline entry; it always runs
// first and is what produces the Doc the processes annotate.
type Pipeline struct {
	Description string
	Language    languages.Language
	Processes   []schema.Process
}

// pipelineBuilders holds the per-language default pipeline constructors.
var pipelineBuilders = map[string]func() Pipeline{
	"lat": LatinPipeline,
	"grc": GreekPipeline,
	"san": SanskritPipeline,
}

// LatinPipeline is the default pipeline for Latin.
func LatinPipeline() Pipeline {
	lang, _ := languages.Get("lat")
	return Pipeline{
		Description: "Pipeline for the Latin language",
		Language:    lang,
	}
}

// GreekPipeline is the default pipeline for Ancient Greek.
func GreekPipeline() Pipeline {
	lang, _ := languages.Get("grc")
	return Pipeline{
		Description: "Pipeline for the Greek language",
		Language:    lang,
	}
}

// SanskritPipeline is the default pipeline for Sanskrit.
func SanskritPipeline() Pipeline {
	lang, _ := languages.Get("san")
	return Pipeline{
		Description: "Pipeline for the Sanskrit language",
		Language:    lang,
	}
}

// DefaultPipeline returns the default pipeline for a language. Languages
// without a dedicated pipeline get a generic tokenization-only one.
func DefaultPipeline(iso string) (Pipeline, error) {
	lang, err := languages.Get(iso)
	if err != nil {
		return Pipeline{}, err
	}
	if build, ok := pipelineBuilders[lang.ISO]; ok {
		return build(), nil
	}
	return Pipeline{
		Description: "Pipeline for the " + lang.Name + " language",
		Language:    lang,
	}, nil
}
