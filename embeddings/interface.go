// Package embeddings is the narrow surface through which word-vector
// collaborators plug into analysis. The core never computes vectors itself;
// it looks them up through these interfaces and attaches the result to the
// document's words.
package embeddings

import "context"

// Embedder resolves one word to its vector representation.
type Embedder interface {
	// GetWordEmbedding returns the vector for a single word.
	GetWordEmbedding(ctx context.Context, word string) ([]float64, error)
}

// ScoredWord is one nearest-neighbor result.
type ScoredWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// SimilaritySearcher finds the words nearest to a query word in embedding
// space.
type SimilaritySearcher interface {
	// GetSims returns up to topK nearest neighbors, best first.
	GetSims(ctx context.Context, word string, topK int) ([]ScoredWord, error)
}
