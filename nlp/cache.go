package nlp

import (
	"sync"

	"github.com/ancientnlp/glossa/sentence"
)

// DetectorCache maps (language, model family) to a loaded sentence detector.
// Model artifacts are immutable once installed, so entries are populated on
// first use and never invalidated within a process run. The cache is safe
// for concurrent use; callers share one across many NLP instances to avoid
// re-reading model files.
type DetectorCache struct {
	mu        sync.RWMutex
	detectors map[string]sentence.Tokenizer
}

// NewDetectorCache creates an empty DetectorCache.
func NewDetectorCache() *DetectorCache {
	return &DetectorCache{
		detectors: make(map[string]sentence.Tokenizer),
	}
}

func cacheKey(iso, family string) string {
	return iso + "/" + family
}

// Get retrieves a cached detector.
func (c *DetectorCache) Get(iso, family string) (sentence.Tokenizer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tok, ok := c.detectors[cacheKey(iso, family)]
	return tok, ok
}

// Put stores a detector.
func (c *DetectorCache) Put(iso, family string, tok sentence.Tokenizer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detectors[cacheKey(iso, family)] = tok
}

// Len returns the number of cached detectors.
func (c *DetectorCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.detectors)
}

// Clear drops every cached detector.
func (c *DetectorCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detectors = make(map[string]sentence.Tokenizer)
}
