// Package settings holds process-wide defaults. Every value can be
// overridden per call site; these are only the fallbacks constructors reach
// for when given nothing.
package settings

import (
	"sync"

	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/tokenizer"
)

var (
	mu             sync.RWMutex
	globalDataDir  string
	globalFallback bool
	globalBPEModel string
)

func init() {
	globalDataDir = modelstore.DefaultRoot()
	globalFallback = true
	globalBPEModel = tokenizer.DefaultBPEModel
}

// SetDataDir sets the global model data directory.
func SetDataDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	globalDataDir = dir
}

// GetDataDir gets the global model data directory.
func GetDataDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalDataDir
}

// SetLanguageFallback sets whether languages without a dispatch entry fall
// back to the generic default sentence detector.
func SetLanguageFallback(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	globalFallback = enabled
}

// GetLanguageFallback gets the language fallback policy.
func GetLanguageFallback() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalFallback
}

// SetBPEModel sets the default model for subword counting.
func SetBPEModel(model string) {
	mu.Lock()
	defer mu.Unlock()
	globalBPEModel = model
}

// GetBPEModel gets the default model for subword counting.
func GetBPEModel() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalBPEModel
}
