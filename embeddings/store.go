package embeddings

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philippgille/chromem-go"
)

// WordVectorStore keeps word embeddings in a chromem-go collection so that
// nearest-neighbor lookups survive across runs when a persist path is set.
type WordVectorStore struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewWordVectorStore creates a store backed by the named collection.
// If persistPath is empty the store is in-memory only.
func NewWordVectorStore(persistPath string, collectionName string) (*WordVectorStore, error) {
	var db *chromem.DB
	if persistPath != "" {
		var err error
		db, err = chromem.NewPersistentDB(persistPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to create persistent chromem db: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	// Embeddings are computed externally and passed explicitly, so the
	// collection gets no embedding function.
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection: %w", err)
	}

	return &WordVectorStore{
		db:         db,
		collection: collection,
	}, nil
}

// Add stores one word vector per entry. The word itself is both the document
// ID and the content, so repeated adds of the same word overwrite.
func (s *WordVectorStore) Add(ctx context.Context, language string, words []string, vectors [][]float64) error {
	if len(words) != len(vectors) {
		return fmt.Errorf("got %d words but %d vectors", len(words), len(vectors))
	}

	docs := make([]chromem.Document, len(words))
	for i, word := range words {
		if len(vectors[i]) == 0 {
			return fmt.Errorf("word %q has no embedding", word)
		}

		embedding32 := make([]float32, len(vectors[i]))
		for j, v := range vectors[i] {
			embedding32[j] = float32(v)
		}

		docs[i] = chromem.Document{
			ID:        word,
			Content:   word,
			Metadata:  map[string]string{"language": language},
			Embedding: embedding32,
		}
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add word vectors: %w", err)
	}
	return nil
}

// Count returns the number of stored words.
func (s *WordVectorStore) Count() int {
	return s.collection.Count()
}

// GetSims implements SimilaritySearcher: the top-k stored words closest to
// the given word, by cosine similarity, best first. The query word itself is
// excluded from the results.
func (s *WordVectorStore) GetSims(ctx context.Context, word string, topK int) ([]ScoredWord, error) {
	doc, err := s.collection.GetByID(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("word %q is not in the store: %w", word, err)
	}

	// Ask for one extra so the query word can be dropped from its own
	// neighborhood.
	k := topK + 1
	if k > s.collection.Count() {
		k = s.collection.Count()
	}
	if k == 0 {
		return nil, nil
	}

	res, err := s.collection.QueryEmbedding(ctx, doc.Embedding, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query word vectors: %w", err)
	}

	scored := make([]ScoredWord, 0, topK)
	for _, r := range res {
		if r.ID == word {
			continue
		}
		if len(scored) == topK {
			break
		}
		scored = append(scored, ScoredWord{
			Word:  r.Content,
			Score: float64(r.Similarity),
		})
	}
	return scored, nil
}

// QueryVector returns the top-k stored words closest to an arbitrary query
// vector, for callers that embed out-of-vocabulary words externally.
func (s *WordVectorStore) QueryVector(ctx context.Context, vector []float64, topK int) ([]ScoredWord, error) {
	if topK > s.collection.Count() {
		topK = s.collection.Count()
	}
	if topK == 0 {
		return nil, nil
	}

	query32 := make([]float32, len(vector))
	for i, v := range vector {
		query32[i] = float32(v)
	}

	res, err := s.collection.QueryEmbedding(ctx, query32, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query word vectors: %w", err)
	}

	scored := make([]ScoredWord, len(res))
	for i, doc := range res {
		scored[i] = ScoredWord{
			Word:  doc.Content,
			Score: float64(doc.Similarity),
		}
	}
	return scored, nil
}
