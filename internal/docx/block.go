package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// BlockKind tags the block variants this system manipulates
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
)

func (k BlockKind) String() string {
	if k == BlockTable {
		return "table"
	}
	return "paragraph"
}

// Block is one body-level element: a paragraph or a table
type Block struct {
	el   *etree.Element
	kind BlockKind
}

// Kind returns the block variant
func (b Block) Kind() BlockKind {
	return b.kind
}

// IsParagraph reports whether the block is a paragraph
func (b Block) IsParagraph() bool {
	return b.kind == BlockParagraph
}

// IsTable reports whether the block is a table
func (b Block) IsTable() bool {
	return b.kind == BlockTable
}

// Clone returns a detached deep copy of the block. Mutating the copy never
// aliases the source document's state.
func (b Block) Clone() Block {
	return Block{el: b.el.Copy(), kind: b.kind}
}

// Text returns the block's visible text: for paragraphs the run text
// concatenation, for tables all cell text joined row by row
func (b Block) Text() string {
	var sb strings.Builder
	for _, t := range descendantsByTag(b.el, "t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// Paragraph views the block as a paragraph
func (b Block) Paragraph() Paragraph {
	return Paragraph{el: b.el}
}

// Table views the block as a table
func (b Block) Table() Table {
	return Table{el: b.el}
}

// Paragraph is a w:p element
type Paragraph struct {
	el *etree.Element
}

// Block returns the paragraph as a block
func (p Paragraph) Block() Block {
	return Block{el: p.el, kind: BlockParagraph}
}

// Text returns the concatenation of the paragraph's run texts
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, t := range descendantsByTag(p.el, "t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// Runs returns the paragraph's runs in order
func (p Paragraph) Runs() []Run {
	var runs []Run
	for _, r := range p.el.ChildElements() {
		if r.Tag == "r" {
			runs = append(runs, Run{el: r})
		}
	}
	return runs
}

// AddRun appends a run with the given text
func (p Paragraph) AddRun(text string) Run {
	r := Run{el: p.el.CreateElement("w:r")}
	r.SetText(text)
	return r
}

// props returns the paragraph properties element, creating it as the
// paragraph's first child when absent
func (p Paragraph) props() *etree.Element {
	if pPr := childByTag(p.el, "pPr"); pPr != nil {
		return pPr
	}
	pPr := etree.NewElement("w:pPr")
	p.el.InsertChildAt(0, pPr)
	return pPr
}

// SetSpacing replaces the paragraph's spacing properties. Values are in
// twentieths of a point; line uses the given line rule ("auto" scales line
// by 240ths). Re-applying with the same values is a no-op.
func (p Paragraph) SetSpacing(before, after, line int, lineRule string) {
	pPr := p.props()
	if old := childByTag(pPr, "spacing"); old != nil {
		pPr.RemoveChild(old)
	}
	sp := pPr.CreateElement("w:spacing")
	sp.CreateAttr("w:before", itoa(before))
	sp.CreateAttr("w:after", itoa(after))
	sp.CreateAttr("w:line", itoa(line))
	sp.CreateAttr("w:lineRule", lineRule)
}

// SetAlignment sets paragraph justification ("center", "both", "left", ...)
func (p Paragraph) SetAlignment(val string) {
	pPr := p.props()
	if old := childByTag(pPr, "jc"); old != nil {
		pPr.RemoveChild(old)
	}
	pPr.CreateElement("w:jc").CreateAttr("w:val", val)
}

// SetFirstLineIndent sets the first-line indent in twentieths of a point
func (p Paragraph) SetFirstLineIndent(twips int) {
	pPr := p.props()
	if old := childByTag(pPr, "ind"); old != nil {
		pPr.RemoveChild(old)
	}
	pPr.CreateElement("w:ind").CreateAttr("w:firstLine", itoa(twips))
}

// Run is a w:r element: a contiguous stretch of text with one formatting
type Run struct {
	el *etree.Element
}

// Text returns the run's visible text
func (r Run) Text() string {
	var sb strings.Builder
	for _, t := range descendantsByTag(r.el, "t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// SetText replaces the run's text with a single text node
func (r Run) SetText(text string) {
	for _, t := range descendantsByTag(r.el, "t") {
		t.Parent().RemoveChild(t)
	}
	t := r.el.CreateElement("w:t")
	t.SetText(text)
	if text != strings.TrimSpace(text) || text == "" {
		t.CreateAttr("xml:space", "preserve")
	}
}

// props returns the run properties element, creating it first when absent
func (r Run) props() *etree.Element {
	if rPr := childByTag(r.el, "rPr"); rPr != nil {
		return rPr
	}
	rPr := etree.NewElement("w:rPr")
	r.el.InsertChildAt(0, rPr)
	return rPr
}

// Bold reports whether the run is bold
func (r Run) Bold() bool {
	return flagSet(r.el, "b")
}

// Italic reports whether the run is italic
func (r Run) Italic() bool {
	return flagSet(r.el, "i")
}

// SetBold toggles the run's bold property
func (r Run) SetBold(on bool) {
	r.setFlag("b", on)
}

// SetItalic toggles the run's italic property
func (r Run) SetItalic(on bool) {
	r.setFlag("i", on)
}

// SetFont sets the run font name and size in points
func (r Run) SetFont(name string, sizePt int) {
	rPr := r.props()
	if old := childByTag(rPr, "rFonts"); old != nil {
		rPr.RemoveChild(old)
	}
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", name)
	fonts.CreateAttr("w:hAnsi", name)
	fonts.CreateAttr("w:cs", name)

	if old := childByTag(rPr, "sz"); old != nil {
		rPr.RemoveChild(old)
	}
	// w:sz counts half-points
	rPr.CreateElement("w:sz").CreateAttr("w:val", itoa(sizePt*2))
	if old := childByTag(rPr, "szCs"); old != nil {
		rPr.RemoveChild(old)
	}
	rPr.CreateElement("w:szCs").CreateAttr("w:val", itoa(sizePt*2))
}

func (r Run) setFlag(tag string, on bool) {
	rPr := r.props()
	if old := childByTag(rPr, tag); old != nil {
		rPr.RemoveChild(old)
	}
	if on {
		rPr.CreateElement("w:" + tag)
	}
}

// flagSet reports whether the w:b / w:i style toggle is on for a run element
func flagSet(runEl *etree.Element, tag string) bool {
	rPr := childByTag(runEl, "rPr")
	if rPr == nil {
		return false
	}
	f := childByTag(rPr, tag)
	if f == nil {
		return false
	}
	switch f.SelectAttrValue("w:val", "true") {
	case "false", "0", "off":
		return false
	}
	return true
}

// Table is a w:tbl element
type Table struct {
	el *etree.Element
}

// Block returns the table as a block
func (t Table) Block() Block {
	return Block{el: t.el, kind: BlockTable}
}

// Rows returns the table's rows in order
func (t Table) Rows() []Row {
	var rows []Row
	for _, tr := range t.el.ChildElements() {
		if tr.Tag == "tr" {
			rows = append(rows, Row{el: tr})
		}
	}
	return rows
}

// Row is a w:tr element
type Row struct {
	el *etree.Element
}

// Cells returns the row's cells in order
func (r Row) Cells() []Cell {
	var cells []Cell
	for _, tc := range r.el.ChildElements() {
		if tc.Tag == "tc" {
			cells = append(cells, Cell{el: tc})
		}
	}
	return cells
}

// props returns the row properties element, creating it first when absent
func (r Row) props() *etree.Element {
	if trPr := childByTag(r.el, "trPr"); trPr != nil {
		return trPr
	}
	trPr := etree.NewElement("w:trPr")
	r.el.InsertChildAt(0, trPr)
	return trPr
}

// SetMinHeight replaces the row's height property with an at-least rule.
// The value is in twentieths of a point. Idempotent.
func (r Row) SetMinHeight(twips int) {
	trPr := r.props()
	if old := childByTag(trPr, "trHeight"); old != nil {
		trPr.RemoveChild(old)
	}
	h := trPr.CreateElement("w:trHeight")
	h.CreateAttr("w:val", itoa(twips))
	h.CreateAttr("w:hRule", "atLeast")
}

// MinHeight returns the row's configured height in twips, or 0 when unset
func (r Row) MinHeight() int {
	trPr := childByTag(r.el, "trPr")
	if trPr == nil {
		return 0
	}
	h := childByTag(trPr, "trHeight")
	if h == nil {
		return 0
	}
	return atoi(h.SelectAttrValue("w:val", "0"))
}

// Cell is a w:tc element
type Cell struct {
	el *etree.Element
}

// Text returns the cell's visible text
func (c Cell) Text() string {
	var sb strings.Builder
	for _, t := range descendantsByTag(c.el, "t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// Paragraphs returns the cell's paragraphs in order
func (c Cell) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, p := range c.el.ChildElements() {
		if p.Tag == "p" {
			out = append(out, Paragraph{el: p})
		}
	}
	return out
}

// Runs returns every run nested in the cell
func (c Cell) Runs() []Run {
	var out []Run
	for _, r := range descendantsByTag(c.el, "r") {
		out = append(out, Run{el: r})
	}
	return out
}
