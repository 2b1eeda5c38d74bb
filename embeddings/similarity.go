package embeddings

import (
	"fmt"
	"math"
)

// SimilarityType represents the type of similarity metric.
type SimilarityType string

const (
	// SimilarityTypeCosine uses cosine similarity (default for most use cases).
	SimilarityTypeCosine SimilarityType = "cosine"
	// SimilarityTypeEuclidean uses Euclidean distance (converted to similarity).
	SimilarityTypeEuclidean SimilarityType = "euclidean"
	// SimilarityTypeDotProduct uses dot product similarity.
	SimilarityTypeDotProduct SimilarityType = "dot_product"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
// For normalized vectors, this is equivalent to dot product.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vectors must not be empty")
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("vectors must not be zero vectors")
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// DotProduct calculates the dot product between two vectors.
// For normalized vectors, this equals cosine similarity.
func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vectors must not be empty")
	}

	var result float64
	for i := range a {
		result += a[i] * b[i]
	}
	return result, nil
}

// EuclideanDistance calculates the Euclidean distance between two vectors.
// Returns a non-negative value where 0 means identical vectors.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vectors must not be empty")
	}

	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum), nil
}

// EuclideanSimilarity converts Euclidean distance to a similarity score.
// Returns a value between 0 and 1, where 1 means identical vectors.
func EuclideanSimilarity(a, b []float64) (float64, error) {
	dist, err := EuclideanDistance(a, b)
	if err != nil {
		return 0, err
	}
	return 1.0 / (1.0 + dist), nil
}

// Similarity calculates similarity between two vectors using the specified metric.
func Similarity(a, b []float64, simType SimilarityType) (float64, error) {
	switch simType {
	case SimilarityTypeCosine:
		return CosineSimilarity(a, b)
	case SimilarityTypeDotProduct:
		return DotProduct(a, b)
	case SimilarityTypeEuclidean:
		return EuclideanSimilarity(a, b)
	default:
		return CosineSimilarity(a, b)
	}
}

// Normalize normalizes a vector to unit length (L2 norm = 1).
// Returns a new normalized vector without modifying the original.
func Normalize(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("vector must not be empty")
	}

	var norm float64
	for _, val := range v {
		norm += val * val
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil, fmt.Errorf("cannot normalize zero vector")
	}

	out := make([]float64, len(v))
	for i, val := range v {
		out[i] = val / norm
	}
	return out, nil
}
