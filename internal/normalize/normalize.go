// Package normalize converts a source document's body into an
// insertion-ready block sequence: deep-copied, filtered of empty paragraphs,
// with declarative formatting overrides applied. Overrides replace any
// pre-existing property rather than stacking on top of it, so normalizing
// twice yields the same result as normalizing once.
package normalize

import (
	"strings"

	"github.com/rezonia/tenderdoc/internal/docx"
)

// Override is the formatting policy applied during normalization. Spacing
// and height values are in twentieths of a point. A zero LineRule skips the
// paragraph spacing override, a zero RowMinHeight skips the row height
// override, and a nil ItalicPredicate skips the two-column italic rule.
type Override struct {
	SpacingBefore int
	SpacingAfter  int
	Line          int
	LineRule      string
	RowMinHeight  int

	// ItalicPredicate is evaluated against the first cell's text of each
	// two-column table row; when true, both cells' runs become italic.
	// Row 0 is always exempt and forced to bold, non-italic header styling.
	ItalicPredicate func(cellText string) bool
}

// Default returns the override the generated procurement sections use:
// 6pt before/after, 1.5-line spacing, 30pt minimum row height.
func Default() Override {
	return Override{
		SpacingBefore: 120,
		SpacingAfter:  120,
		Line:          360,
		LineRule:      "auto",
		RowMinHeight:  600,
	}
}

// Blocks produces the canonical block sequence from the source document:
// whitespace-only paragraphs are dropped, tables are kept whole, order is
// preserved, and every block is a deep copy so the source and any target it
// is inserted into stay independently serializable.
func Blocks(src *docx.Document, ov Override) []docx.Block {
	var out []docx.Block
	for _, blk := range src.Blocks() {
		switch {
		case blk.IsParagraph():
			if strings.TrimSpace(blk.Paragraph().Text()) == "" {
				continue
			}
			cp := blk.Clone()
			ov.applyParagraph(cp.Paragraph())
			out = append(out, cp)
		case blk.IsTable():
			cp := blk.Clone()
			ov.applyTable(cp.Table())
			out = append(out, cp)
		}
	}
	return out
}

func (ov Override) applyParagraph(p docx.Paragraph) {
	if ov.LineRule == "" {
		return
	}
	p.SetSpacing(ov.SpacingBefore, ov.SpacingAfter, ov.Line, ov.LineRule)
}

func (ov Override) applyTable(t docx.Table) {
	for i, row := range t.Rows() {
		if ov.RowMinHeight > 0 {
			row.SetMinHeight(ov.RowMinHeight)
		}
		if ov.ItalicPredicate == nil {
			continue
		}

		cells := row.Cells()
		if len(cells) != 2 {
			continue
		}
		if i == 0 {
			// Stable visual header regardless of predicate outcome
			for _, c := range cells {
				for _, r := range c.Runs() {
					r.SetBold(true)
					r.SetItalic(false)
				}
			}
			continue
		}
		if ov.ItalicPredicate(strings.TrimSpace(cells[0].Text())) {
			for _, c := range cells {
				for _, r := range c.Runs() {
					r.SetItalic(true)
				}
			}
		}
	}
}
