// Package modelstore reads trained model artifacts from the local data
// directory. Artifacts are keyed by (language, family, filename) and are
// treated as immutable once installed; downloading and managing them is the
// job of external tooling, not this package.
package modelstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataDir overrides the default data directory when set.
const EnvDataDir = "GLOSSA_DATA"

// ErrModelNotFound reports that a required model artifact is absent from the
// local store. Loading is deterministic, so retrying without installing the
// artifact will fail the same way.
var ErrModelNotFound = errors.New("model not found")

// Store is a read-mostly view over the on-disk model directory. The zero
// value is not usable; construct with New.
type Store struct {
	root string
}

// DefaultRoot resolves the data directory: $GLOSSA_DATA if set, otherwise
// glossa_data under the user's home directory.
func DefaultRoot() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "glossa_data"
	}
	return filepath.Join(home, "glossa_data")
}

// New creates a Store rooted at dir. An empty dir selects DefaultRoot.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultRoot()
	}
	return &Store{root: dir}
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the on-disk location of an artifact. The layout mirrors the
// installed data tree: <root>/<iso>/model/<iso>_models/<family>/<filename>.
func (s *Store) Path(iso, family, filename string) string {
	return filepath.Join(s.root, iso, "model", iso+"_models", filepath.FromSlash(family), filename)
}

// Load reads one artifact. It fails with ErrModelNotFound when the file is
// absent and surfaces any other read error as-is.
func (s *Store) Load(iso, family, filename string) ([]byte, error) {
	path := s.Path(iso, family, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("reading model artifact %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether the artifact is installed.
func (s *Store) Exists(iso, family, filename string) bool {
	_, err := os.Stat(s.Path(iso, family, filename))
	return err == nil
}

// Install writes an artifact into the store, creating parent directories as
// needed. It exists for model-management tooling and tests; analysis code
// only ever reads.
func (s *Store) Install(iso, family, filename string, data []byte) error {
	path := s.Path(iso, family, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating model directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model artifact %s: %w", path, err)
	}
	return nil
}
