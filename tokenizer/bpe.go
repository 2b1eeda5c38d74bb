package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultBPEModel selects the encoding used when none is named.
const DefaultBPEModel = "gpt-3.5-turbo"

// BPECounter counts subword tokens with a tiktoken BPE encoding. Classical
// text routinely gets handed to modern embedding or generation models, and
// their budgets are denominated in subwords, not in our word spans.
type BPECounter struct {
	encoding *tiktoken.Tiktoken
}

// NewBPECounter creates a counter for the named model. An empty model selects
// DefaultBPEModel.
func NewBPECounter(model string) (*BPECounter, error) {
	if model == "" {
		model = DefaultBPEModel
	}
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("loading BPE encoding for model %s: %w", model, err)
	}
	return &BPECounter{encoding: encoding}, nil
}

// Count returns the number of subword tokens in text.
func (c *BPECounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// Encode returns the subword token IDs for text.
func (c *BPECounter) Encode(text string) []int {
	return c.encoding.Encode(text, nil, nil)
}
