package main

import (
	"os"
	"path/filepath"
)

// Default configuration values
const (
	DefaultLanguage = "lat"
	DefaultBPEModel = "gpt-3.5-turbo"
)

// Config keys for krait
const (
	KeyDataDir  = "data.dir"
	KeyLanguage = "language"
	KeyBPEModel = "stats.bpe-model"
	KeyVerbose  = "verbose"
	KeyJSON     = "json"
)

// DefaultDataDir returns the default model data directory, matching the
// library's resolution order.
func DefaultDataDir() string {
	if dir := os.Getenv("GLOSSA_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "glossa_data"
	}
	return filepath.Join(home, "glossa_data")
}
