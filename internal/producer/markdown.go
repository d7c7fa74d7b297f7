package producer

import (
	"context"
	"strings"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/llm"
)

const (
	fontName = "Times New Roman"
	fontSize = 14

	firstLineIndent = 720 // 0.5"
	spaceAfter      = 120 // 6pt
	lineSpacing     = 276 // 1.15 lines
)

// MarkdownProducer extracts a source PDF's text, has the LLM reformat it
// into constrained markdown, and renders that into a document: **...**
// lines become bold paragraphs, everything else becomes justified body text.
type MarkdownProducer struct {
	PDF    TextExtractor
	LLM    MarkdownFormatter
	Source string
	Style  llm.MarkdownStyle
}

// Produce builds the formatted narrative document
func (p *MarkdownProducer) Produce(ctx context.Context) (*Content, error) {
	text, err := p.PDF.ExtractFile(p.Source)
	if err != nil {
		return nil, err
	}

	md, err := p.LLM.FormatMarkdown(ctx, text, p.Style)
	if err != nil {
		return nil, err
	}

	return &Content{Doc: BuildMarkdownDoc(md)}, nil
}

// BuildMarkdownDoc renders constrained markdown (bold lines, "- " bullets,
// plain paragraphs) into a new document
func BuildMarkdownDoc(md string) *docx.Document {
	doc := docx.New()
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		bold := false
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
			bold = true
			line = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**"))
		}

		para := doc.AddParagraph()
		para.SetAlignment("both")
		para.SetFirstLineIndent(firstLineIndent)
		para.SetSpacing(0, spaceAfter, lineSpacing, "auto")

		run := para.AddRun(line)
		run.SetFont(fontName, fontSize)
		run.SetBold(bold)
	}
	return doc
}
