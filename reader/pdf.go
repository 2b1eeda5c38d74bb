package reader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader extracts text from PDF editions. Page text is concatenated in
// order, pages that fail extraction are skipped.
type PDFReader struct {
	inputFiles  []string
	language    string
	splitByPage bool
}

// PDFReaderOption configures a PDFReader.
type PDFReaderOption func(*PDFReader)

// WithSplitByPage makes each page its own Text instead of one Text per file.
func WithSplitByPage() PDFReaderOption {
	return func(r *PDFReader) {
		r.splitByPage = true
	}
}

// NewPDFReader creates a reader over the given PDF files.
func NewPDFReader(language string, inputFiles []string, opts ...PDFReaderOption) *PDFReader {
	r := &PDFReader{
		inputFiles: inputFiles,
		language:   language,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load implements Reader.
func (r *PDFReader) Load() ([]Text, error) {
	var texts []Text
	for _, file := range r.inputFiles {
		fileTexts, err := r.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load PDF %s: %w", file, err)
		}
		texts = append(texts, fileTexts...)
	}
	return texts, nil
}

func (r *PDFReader) loadFile(filePath string) ([]Text, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	numPages := pdfReader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	baseMeta := func() map[string]string {
		return map[string]string{
			"filename":    filepath.Base(filePath),
			"ext":         ".pdf",
			"total_pages": strconv.Itoa(numPages),
		}
	}

	var texts []Text
	var builder strings.Builder

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if r.splitByPage {
			meta := baseMeta()
			meta["page"] = strconv.Itoa(pageNum)
			texts = append(texts, Text{
				ID:       fmt.Sprintf("%s#page=%d", filePath, pageNum),
				Language: r.language,
				Content:  text,
				Metadata: meta,
			})
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}

	if !r.splitByPage {
		full := strings.TrimSpace(builder.String())
		if full == "" {
			return nil, fmt.Errorf("no text content found in PDF")
		}
		texts = append(texts, Text{
			ID:       filePath,
			Language: r.language,
			Content:  full,
			Metadata: baseMeta(),
		})
	}

	if len(texts) == 0 {
		return nil, fmt.Errorf("no text content found in PDF")
	}
	return texts, nil
}

// PageCount returns the number of pages in a PDF file.
func PageCount(filePath string) (int, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return pdfReader.NumPage(), nil
}
