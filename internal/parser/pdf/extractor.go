// Package pdf extracts plain text from tender source PDFs. The container is
// validated with pdfcpu before extraction so corrupt files fail fast with a
// useful error instead of a half-empty text.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/tenderdoc/internal/model"
)

// Extractor reads PDF files and returns their text page by page
type Extractor struct{}

// NewExtractor creates a new PDF text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// PageCount validates the PDF container and returns its page count
func (e *Extractor) PageCount(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, model.NewIOError("open", path, err)
	}
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, model.NewExtractionError("pdfcpu", "invalid PDF container", err)
	}
	return count, nil
}

// ExtractFile returns the PDF's full text with "--- PAGE n ---" separators
// between pages, matching the layout the extraction prompts expect
func (e *Extractor) ExtractFile(path string) (string, error) {
	if _, err := e.PageCount(path); err != nil {
		return "", err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", model.NewExtractionError("pdf", "opening PDF", err)
	}
	defer f.Close()

	var sb strings.Builder
	gotText := false
	totalPages := r.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			gotText = true
		}
		fmt.Fprintf(&sb, "\n--- PAGE %d ---\n", pageNum)
		sb.WriteString(text)
	}

	if !gotText {
		return "", model.NewExtractionError("pdf", "no extractable text (scanned document?)", nil)
	}
	return sb.String(), nil
}
