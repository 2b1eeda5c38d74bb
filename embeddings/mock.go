package embeddings

import "context"

// MockEmbedder is a test double for the Embedder interface. When Vectors has
// an entry for the word it wins, otherwise Embedding is returned.
type MockEmbedder struct {
	Embedding []float64
	Vectors   map[string][]float64
	Err       error
}

func (m *MockEmbedder) GetWordEmbedding(ctx context.Context, word string) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if v, ok := m.Vectors[word]; ok {
		return v, nil
	}
	return m.Embedding, nil
}
