package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ancientnlp/glossa/languages"
	"github.com/ancientnlp/glossa/modelstore"
	"github.com/ancientnlp/glossa/nlp"
	"github.com/ancientnlp/glossa/reader"
	"github.com/ancientnlp/glossa/schema"
	"github.com/ancientnlp/glossa/sentence"
	"github.com/ancientnlp/glossa/tokenizer"
	"github.com/aqua777/krait"
)

// collectTexts resolves --files and --text into loadable texts.
func collectTexts(language string) ([]reader.Text, error) {
	var texts []reader.Text

	if inline := krait.GetString("text"); inline != "" {
		texts = append(texts, reader.Text{
			ID:       "(inline)",
			Language: language,
			Content:  inline,
		})
	}

	for _, pattern := range krait.GetStringSlice("files") {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", match, err)
			}

			var r reader.Reader
			switch {
			case info.IsDir():
				r = reader.NewDirectoryReader(match, language)
			case filepath.Ext(match) == ".pdf":
				r = reader.NewPDFReader(language, []string{match})
			default:
				r = reader.NewDirectoryReader(filepath.Dir(match), language,
					reader.WithExtensions(filepath.Ext(match)))
			}

			loaded, err := r.Load()
			if err != nil {
				return nil, err
			}
			texts = append(texts, loaded...)
		}
	}

	if len(texts) == 0 {
		return nil, fmt.Errorf("nothing to analyze: pass --text or --files")
	}
	return texts, nil
}

func runAnalyze(args []string) error {
	ctx := context.Background()
	language := krait.GetString(KeyLanguage)
	verbose := krait.GetBool(KeyVerbose)

	texts, err := collectTexts(language)
	if err != nil {
		return err
	}

	opts := []nlp.Option{
		nlp.WithStore(modelstore.New(krait.GetString(KeyDataDir))),
	}
	if krait.GetBool("no-fallback") {
		opts = append(opts, nlp.WithoutFallback())
	}

	analyzer, err := nlp.New(language, opts...)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "language=%s detector=%s texts=%d\n",
			language, analyzer.SentenceDetector(), len(texts))
	}

	var docs []*schema.Doc
	for _, text := range texts {
		doc, err := analyzer.Analyze(ctx, text.Content)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", text.ID, err)
		}
		docs = append(docs, doc)

		if krait.GetBool(KeyJSON) {
			continue
		}

		fmt.Printf("%s: %d sentences, %d tokens\n", text.ID, len(doc.SentenceSpans), len(doc.TokenSpans))
		if verbose {
			tokens, err := doc.Tokens()
			if err != nil {
				return err
			}
			for i, tok := range tokens {
				fmt.Printf("  %3d %s\n", i, tok)
			}
		}
	}

	if krait.GetBool(KeyJSON) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}
	return nil
}

func runStats(args []string) error {
	language := krait.GetString(KeyLanguage)

	texts, err := collectTexts(language)
	if err != nil {
		return err
	}

	var bpe *tokenizer.BPECounter
	if !krait.GetBool("no-bpe") {
		bpe, err = tokenizer.NewBPECounter(krait.GetString(KeyBPEModel))
		if err != nil {
			return fmt.Errorf("failed to initialize BPE counter: %w", err)
		}
	}

	stats := reader.NewCorpusStats(bpe).Collect(texts)

	if krait.GetBool(KeyJSON) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("texts:      %d\n", stats.Texts)
	fmt.Printf("bytes:      %d\n", stats.Bytes)
	fmt.Printf("runes:      %d\n", stats.Runes)
	fmt.Printf("words:      %d\n", stats.Words)
	fmt.Printf("bpe tokens: %d\n", stats.BPETokens)
	return nil
}

func runModels(args []string) error {
	store := modelstore.New(krait.GetString(KeyDataDir))

	type entry struct {
		ISO       string `json:"iso"`
		Name      string `json:"name"`
		Installed bool   `json:"installed"`
	}

	var entries []entry
	for _, iso := range languages.All() {
		lang, err := languages.Get(iso)
		if err != nil {
			return err
		}
		installed := store.Exists(lang.ISO, sentence.ModelFamily, lang.ISO+"_punkt.json") ||
			(lang.LegacyName != "" && store.Exists(lang.ISO, sentence.ModelFamily, lang.LegacyName+"_punkt.json"))
		entries = append(entries, entry{ISO: lang.ISO, Name: lang.Name, Installed: installed})
	}

	if krait.GetBool(KeyJSON) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("data directory: %s\n", store.Root())
	for _, e := range entries {
		mark := " "
		if e.Installed {
			mark = "*"
		}
		fmt.Printf("  [%s] %-4s %s\n", mark, e.ISO, e.Name)
	}
	return nil
}
