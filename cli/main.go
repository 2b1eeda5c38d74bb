package main

import (
	"fmt"
	"os"

	"github.com/aqua777/krait"
)

func main() {
	analyzeCmd := krait.New("analyze", "Analyze texts", "Run sentence and word boundary detection over texts and print the result").
		WithStringSliceP("files", "Files or directories to analyze", "files", "f", "GLOSSA_FILES", nil).
		WithStringP("text", "Inline text to analyze", "text", "t", "GLOSSA_TEXT", "").
		WithBool("no-fallback", "Fail instead of using the generic sentence detector", "no-fallback", "GLOSSA_NO_FALLBACK", false).
		WithRun(runAnalyze)

	statsCmd := krait.New("stats", "Corpus statistics", "Count texts, words and subword tokens in a corpus").
		WithStringSliceP("files", "Files or directories to count", "files", "f", "GLOSSA_FILES", nil).
		WithStringP(KeyBPEModel, "Model whose BPE vocabulary sizes the token count", "bpe-model", "", "GLOSSA_BPE_MODEL", DefaultBPEModel).
		WithBool("no-bpe", "Skip subword token counting", "no-bpe", "GLOSSA_NO_BPE", false).
		WithRun(runStats)

	modelsCmd := krait.New("models", "Inspect installed models", "Show which sentence models are installed in the data directory").
		WithRun(runModels)

	app := krait.App("glossa", "Classical language analysis", "Tokenization and analysis for historical languages").
		WithConfig("", "config", "", "GLOSSA_CONFIG").
		WithStringP(KeyDataDir, "Model data directory", "data-dir", "", "GLOSSA_DATA", DefaultDataDir()).
		WithStringP(KeyLanguage, "ISO language code", "language", "l", "GLOSSA_LANGUAGE", DefaultLanguage).
		WithBoolP(KeyJSON, "Emit JSON output", "json", "j", "GLOSSA_JSON", false).
		WithBoolP(KeyVerbose, "Enable verbose output", "verbose", "v", "GLOSSA_VERBOSE", false).
		WithCommand(analyzeCmd).
		WithCommand(statsCmd).
		WithCommand(modelsCmd).
		WithRun(func(args []string) error {
			fmt.Println("glossa - use 'glossa analyze --help' to get started")
			return nil
		})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
