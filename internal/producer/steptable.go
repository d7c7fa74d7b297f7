package producer

import (
	"context"
	"fmt"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/llm"
)

// Two-column work table: narrow "Số TT" column, wide content column
const (
	stepNumWidth     = 1440 // 1.0"
	stepContentWidth = 7920 // 5.5"
)

// StepTableProducer extracts the "Các bước thực hiện" section from CHUONG_V:
// the intro paragraphs and the full step table. Sub-step italics and row
// heights are applied later by the normalizer's override, so the built
// document carries structure and header styling only.
type StepTableProducer struct {
	PDF    TextExtractor
	LLM    StepSectionExtractor
	Source string
}

// Produce builds the step section document
func (p *StepTableProducer) Produce(ctx context.Context) (*Content, error) {
	text, err := p.PDF.ExtractFile(p.Source)
	if err != nil {
		return nil, err
	}

	section, err := p.LLM.ExtractStepSection(ctx, text)
	if err != nil {
		return nil, err
	}

	doc, err := BuildStepDoc(section)
	if err != nil {
		return nil, err
	}
	return &Content{Doc: doc}, nil
}

// BuildStepDoc renders a step section into a new document: intro paragraphs
// followed by the two-column work table
func BuildStepDoc(section *llm.StepSection) (*docx.Document, error) {
	if section == nil || len(section.Rows) == 0 {
		return nil, fmt.Errorf("step section has no table rows")
	}

	doc := docx.New()
	for _, intro := range section.Intro {
		if intro == "" {
			continue
		}
		para := doc.AddParagraph()
		para.SetAlignment("both")
		para.SetFirstLineIndent(firstLineIndent)
		para.SetSpacing(0, spaceAfter, lineSpacing, "auto")
		para.AddRun(intro).SetFont(fontName, fontSize)
	}

	tbl := doc.AddTable(stepNumWidth, stepContentWidth)
	for i, rowData := range section.Rows {
		num, content := "", ""
		if len(rowData) > 0 {
			num = rowData[0]
		}
		if len(rowData) > 1 {
			content = rowData[1]
		}

		row := tbl.AddRow()

		_, numPara := row.AddCell(stepNumWidth)
		numPara.SetAlignment("center")
		numRun := numPara.AddRun(num)
		numRun.SetFont(fontName, fontSize)

		_, contentPara := row.AddCell(stepContentWidth)
		if i == 0 {
			contentPara.SetAlignment("center")
		}
		contentRun := contentPara.AddRun(content)
		contentRun.SetFont(fontName, fontSize)

		if i == 0 {
			numRun.SetBold(true)
			contentRun.SetBold(true)
		}
	}
	return doc, nil
}
