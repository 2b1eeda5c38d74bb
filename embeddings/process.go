package embeddings

import (
	"context"
	"fmt"

	"github.com/ancientnlp/glossa/schema"
)

// ProcessName is the provenance label recorded by Process.
const ProcessName = "embeddings"

// Process annotates every word of a document with its vector. Lookups for the
// same surface form are cached within a single run, so repeated words cost one
// call to the provider.
type Process struct {
	embedder Embedder
}

// NewProcess wraps an embedder as a pipeline stage.
func NewProcess(embedder Embedder) *Process {
	return &Process{embedder: embedder}
}

func (p *Process) Name() string { return ProcessName }

func (p *Process) Run(ctx context.Context, doc *schema.Doc) (*schema.Doc, error) {
	seen := make(map[string][]float64)

	for i := range doc.Words {
		surface, err := doc.Words[i].SurfaceIn(doc)
		if err != nil {
			return nil, fmt.Errorf("materializing word %d: %w", i, err)
		}
		if surface == "" {
			continue
		}

		vector, ok := seen[surface]
		if !ok {
			vector, err = p.embedder.GetWordEmbedding(ctx, surface)
			if err != nil {
				return nil, fmt.Errorf("embedding word %q: %w", surface, err)
			}
			seen[surface] = vector
		}
		doc.Words[i].Embedding = vector
	}

	doc.AppendStage(ProcessName)
	return doc, nil
}
