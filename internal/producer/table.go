package producer

import (
	"context"
	"fmt"

	"github.com/rezonia/tenderdoc/internal/docx"
)

const tableWidth = 9360 // 6.5" between default margins

// TableProducer extracts the scope-of-supply table from a source PDF and
// renders it as a bordered document table with a bold header row
type TableProducer struct {
	PDF    TextExtractor
	LLM    ScopeTableExtractor
	Source string
}

// Produce builds the scope table document
func (p *TableProducer) Produce(ctx context.Context) (*Content, error) {
	text, err := p.PDF.ExtractFile(p.Source)
	if err != nil {
		return nil, err
	}

	rows, err := p.LLM.ExtractScopeTable(ctx, text)
	if err != nil {
		return nil, err
	}

	doc, err := BuildTableDoc(rows)
	if err != nil {
		return nil, err
	}
	return &Content{Doc: doc}, nil
}

// BuildTableDoc renders rows into a new document holding one bordered table.
// The first row is the header: bold, centered. Column count follows the
// header; short rows are padded with empty cells.
func BuildTableDoc(rows [][]string) (*docx.Document, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to build a table from")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("header row has no columns")
	}

	colWidth := tableWidth / cols
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = colWidth
	}

	doc := docx.New()
	tbl := doc.AddTable(widths...)
	for i, rowData := range rows {
		row := tbl.AddRow()
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(rowData) {
				text = rowData[c]
			}
			_, para := row.AddCell(colWidth)
			if i == 0 {
				para.SetAlignment("center")
			}
			run := para.AddRun(text)
			run.SetFont(fontName, fontSize)
			run.SetBold(i == 0)
		}
	}
	return doc, nil
}
