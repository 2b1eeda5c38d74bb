// Package reader loads source texts from disk so they can be fed to
// analysis. Classical corpora mostly arrive as plain-text files, with the
// occasional scanned edition distributed as PDF.
package reader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Text is one loaded source text, not yet analyzed.
type Text struct {
	// ID is the file path the text was loaded from.
	ID string
	// Language is the ISO code the caller expects the text to be in. The
	// reader does no language detection; this is carried through from the
	// reader's configuration.
	Language string
	Content  string
	Metadata map[string]string
}

// Reader loads texts from some source.
type Reader interface {
	Load() ([]Text, error)
}

// DirectoryReader walks a directory and loads every file whose extension
// matches. Defaults to .txt and .md.
type DirectoryReader struct {
	inputDir   string
	language   string
	extensions []string
}

// DirectoryReaderOption configures a DirectoryReader.
type DirectoryReaderOption func(*DirectoryReader)

// WithExtensions overrides the accepted file extensions (with leading dots).
func WithExtensions(exts ...string) DirectoryReaderOption {
	return func(r *DirectoryReader) {
		r.extensions = exts
	}
}

// NewDirectoryReader creates a reader over inputDir. The language ISO code is
// attached to every loaded text.
func NewDirectoryReader(inputDir, language string, opts ...DirectoryReaderOption) *DirectoryReader {
	r := &DirectoryReader{
		inputDir:   inputDir,
		language:   language,
		extensions: []string{".txt", ".md"},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load implements Reader.
func (r *DirectoryReader) Load() ([]Text, error) {
	var texts []Text

	err := filepath.WalkDir(r.inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		match := false
		for _, e := range r.extensions {
			if ext == e {
				match = true
				break
			}
		}
		if !match {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}

		texts = append(texts, Text{
			ID:       path,
			Language: r.language,
			Content:  string(content),
			Metadata: map[string]string{
				"filename": d.Name(),
				"ext":      ext,
			},
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", r.inputDir, err)
	}

	return texts, nil
}
