// Package producer builds the per-placeholder content that gets spliced into
// the template: a short text field, or a whole generated document. Every
// producer owns its collaborators (PDF extractor, LLM extractor) explicitly;
// nothing here reaches for shared process state.
package producer

import (
	"context"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/llm"
)

// Content is what a producer yields for one placeholder: inline text for
// short field markers, or a document whose body is normalized and spliced
// in as blocks. Exactly one of the two is set.
type Content struct {
	Text string
	Doc  *docx.Document
}

// Producer yields the content for one named placeholder
type Producer interface {
	Produce(ctx context.Context) (*Content, error)
}

// TextExtractor reads a PDF's full text
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// TenderInfoExtractor pulls the short TBMT fields
type TenderInfoExtractor interface {
	ExtractTenderInfo(ctx context.Context, text string) (*llm.TenderInfo, error)
}

// MarkdownFormatter reformats narrative text into constrained markdown
type MarkdownFormatter interface {
	FormatMarkdown(ctx context.Context, text string, style llm.MarkdownStyle) (string, error)
}

// ScopeTableExtractor pulls the scope-of-supply table rows
type ScopeTableExtractor interface {
	ExtractScopeTable(ctx context.Context, text string) ([][]string, error)
}

// StepSectionExtractor pulls the step section paragraphs and work table
type StepSectionExtractor interface {
	ExtractStepSection(ctx context.Context, text string) (*llm.StepSection, error)
}
