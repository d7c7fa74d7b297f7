package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// Minimal parts for a document built from scratch. Produced files open in
// Word, LibreOffice and gooxml; everything beyond the Normal style is set
// directly on paragraphs, runs and tables.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

	stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr></w:rPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`

	emptyDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1701"/></w:sectPr></w:body></w:document>`
)

// New creates an empty in-memory document with an A4 section and a Normal
// style defaulting to Times New Roman 14pt, matching the generated-content
// documents this pipeline feeds into templates.
func New() *Document {
	xmlDoc := etree.NewDocument()
	// the literal is well-formed; a parse failure here is a programming error
	if err := xmlDoc.ReadFromString(emptyDocumentXML); err != nil {
		panic("docx: invalid built-in document template: " + err.Error())
	}

	return &Document{
		parts: []part{
			{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
			{name: "_rels/.rels", data: []byte(rootRelsXML)},
			{name: "word/_rels/document.xml.rels", data: []byte(documentRelsXML)},
			{name: "word/styles.xml", data: []byte(stylesXML)},
			{name: documentPart, data: nil},
		},
		xml:  xmlDoc,
		body: childByTag(xmlDoc.Root(), "body"),
	}
}

// AddParagraph appends an empty paragraph to the body
func (d *Document) AddParagraph() Paragraph {
	p := Paragraph{el: etree.NewElement("w:p")}
	d.Append(p.Block())
	return p
}

// AddText appends a paragraph holding a single run with the given text
func (d *Document) AddText(text string) Paragraph {
	p := d.AddParagraph()
	p.AddRun(text)
	return p
}

// AddTable appends a table with single-line borders on every edge and the
// given column widths in twentieths of a point
func (d *Document) AddTable(colWidths ...int) Table {
	tbl := etree.NewElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	w := tblPr.CreateElement("w:tblW")
	w.CreateAttr("w:w", "0")
	w.CreateAttr("w:type", "auto")
	tblPr.CreateElement("w:jc").CreateAttr("w:val", "center")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b := borders.CreateElement("w:" + edge)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:color", "auto")
	}

	grid := tbl.CreateElement("w:tblGrid")
	for _, cw := range colWidths {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", itoa(cw))
	}

	t := Table{el: tbl}
	d.Append(t.Block())
	return t
}

// AddRow appends a row to the table
func (t Table) AddRow() Row {
	return Row{el: t.el.CreateElement("w:tr")}
}

// AddCell appends a cell holding one empty paragraph and returns it along
// with the paragraph, ready for runs
func (r Row) AddCell(widthTwips int) (Cell, Paragraph) {
	tc := r.el.CreateElement("w:tc")
	tcPr := tc.CreateElement("w:tcPr")
	if widthTwips > 0 {
		cw := tcPr.CreateElement("w:tcW")
		cw.CreateAttr("w:w", itoa(widthTwips))
		cw.CreateAttr("w:type", "dxa")
	}
	tcPr.CreateElement("w:vAlign").CreateAttr("w:val", "center")
	p := Paragraph{el: tc.CreateElement("w:p")}
	return Cell{el: tc}, p
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
