// Package inspect produces read-only reports about a document: which
// placeholders it still carries, its block counts, and a short text preview.
// It reads through an independent OOXML library so a report double-checks
// what the splice engine wrote.
package inspect

import (
	"regexp"
	"strings"

	"baliance.com/gooxml/document"

	"github.com/rezonia/tenderdoc/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Report summarizes one document
type Report struct {
	Path         string   `json:"path"`
	Paragraphs   int      `json:"paragraphs"`
	Tables       int      `json:"tables"`
	TableRows    int      `json:"table_rows"`
	Placeholders []string `json:"placeholders"`
	Preview      string   `json:"preview,omitempty"`
}

const previewLimit = 400

// File opens a document and builds its report
func File(path string) (*Report, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, model.NewFormatError(path, "not a readable document", err)
	}

	report := &Report{Path: path}
	var preview strings.Builder
	seen := map[string]bool{}

	note := func(text string) {
		for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if name != "" && !seen[name] {
				seen[name] = true
				report.Placeholders = append(report.Placeholders, name)
			}
		}
		trimmed := strings.TrimSpace(text)
		if trimmed != "" && preview.Len() < previewLimit {
			if preview.Len() > 0 {
				preview.WriteString("\n")
			}
			preview.WriteString(trimmed)
		}
	}

	for _, para := range doc.Paragraphs() {
		report.Paragraphs++
		note(paragraphText(para))
	}
	for _, tbl := range doc.Tables() {
		report.Tables++
		for _, row := range tbl.Rows() {
			report.TableRows++
			for _, cell := range row.Cells() {
				for _, para := range cell.Paragraphs() {
					note(paragraphText(para))
				}
			}
		}
	}

	report.Preview = clip(preview.String(), previewLimit)
	return report, nil
}

// Placeholders returns just the placeholder names a document still carries,
// in first-appearance order
func Placeholders(path string) ([]string, error) {
	report, err := File(path)
	if err != nil {
		return nil, err
	}
	return report.Placeholders, nil
}

func paragraphText(para document.Paragraph) string {
	var sb strings.Builder
	for _, run := range para.Runs() {
		sb.WriteString(run.Text())
	}
	return sb.String()
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Cut on a rune boundary
	for limit > 0 && s[limit]&0xC0 == 0x80 {
		limit--
	}
	return s[:limit] + "…"
}
