package reader

import (
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/ancientnlp/glossa/tokenizer"
)

// Stats summarizes a loaded corpus before analysis.
type Stats struct {
	Texts     int
	Bytes     int
	Runes     int
	Words     int
	BPETokens int
}

// CorpusStats computes summary statistics over loaded texts. Word counts use
// the word boundary detector; BPE token counts are included when a counter is
// supplied, since subword counts are what embedding providers bill by.
type CorpusStats struct {
	wordTok *tokenizer.WordTokenizer
	bpe     *tokenizer.BPECounter
	logger  *slog.Logger
}

// NewCorpusStats creates a stats collector. bpe may be nil.
func NewCorpusStats(bpe *tokenizer.BPECounter) *CorpusStats {
	return &CorpusStats{
		wordTok: tokenizer.NewWord(),
		bpe:     bpe,
		logger:  slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Collect computes statistics for a batch of texts.
func (c *CorpusStats) Collect(texts []Text) Stats {
	var stats Stats
	stats.Texts = len(texts)

	for _, t := range texts {
		stats.Bytes += len(t.Content)
		stats.Runes += utf8.RuneCountInString(t.Content)
		stats.Words += len(c.wordTok.Tokenize(t.Content))
		if c.bpe != nil {
			stats.BPETokens += c.bpe.Count(t.Content)
		}
	}

	c.logger.Info("corpus statistics",
		"texts", stats.Texts,
		"bytes", stats.Bytes,
		"words", stats.Words,
		"bpe_tokens", stats.BPETokens,
	)
	return stats
}
