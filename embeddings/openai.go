package embeddings

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbedder resolves word vectors through the OpenAI embeddings API.
// Historical-language coverage of general-purpose embedding models varies;
// this is the convenience option, not a substitute for language-specific
// pretrained vectors.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
	logger *slog.Logger
}

// NewOpenAIEmbedder creates an embedder. An empty apiKey falls back to
// OPENAI_API_KEY; an empty modelName selects text-embedding-3-small.
func NewOpenAIEmbedder(apiKey string, modelName string) *OpenAIEmbedder {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	var model openai.EmbeddingModel
	if modelName == "" {
		model = openai.SmallEmbedding3
	} else {
		model = openai.EmbeddingModel(modelName)
	}

	return &OpenAIEmbedder{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// NewOpenAIEmbedderWithClient creates an embedder with a preconfigured
// client, for proxies and tests.
func NewOpenAIEmbedderWithClient(client *openai.Client, modelName string) *OpenAIEmbedder {
	var model openai.EmbeddingModel
	if modelName == "" {
		model = openai.SmallEmbedding3
	} else {
		model = openai.EmbeddingModel(modelName)
	}

	return &OpenAIEmbedder{
		client: client,
		model:  model,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// GetWordEmbedding implements Embedder.
func (o *OpenAIEmbedder) GetWordEmbedding(ctx context.Context, word string) ([]float64, error) {
	resp, err := o.client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Input: []string{word},
			Model: o.model,
		},
	)
	if err != nil {
		o.logger.Error("word embedding failed", "word", word, "error", err)
		return nil, fmt.Errorf("openai embedding failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai returned no embeddings")
	}

	embedding32 := resp.Data[0].Embedding
	embedding64 := make([]float64, len(embedding32))
	for i, v := range embedding32 {
		embedding64[i] = float64(v)
	}
	return embedding64, nil
}
