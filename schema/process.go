package schema

import "context"

// Process is one annotation stage in an analysis pipeline. Implementations
// read the Doc's raw text, spans and words, fill annotation fields, append
// their Name to the Doc's provenance, and return the Doc. They must never
// rewrite the raw text or spans already assigned.
type Process interface {
	// Name returns the stage identifier recorded in Doc.Pipeline.
	Name() string
	// Run annotates the Doc.
	Run(ctx context.Context, doc *Doc) (*Doc, error)
}
