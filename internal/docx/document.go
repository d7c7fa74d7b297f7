// Package docx wraps a WordprocessingML container (a DOCX file) and exposes
// its body as an ordered sequence of block-level elements with positional
// mutation. The zip parts other than word/document.xml are carried through
// untouched, so a save after zero mutations reproduces the original content.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/rezonia/tenderdoc/internal/model"
)

const documentPart = "word/document.xml"

// part is one zip entry of the container, kept as raw bytes
type part struct {
	name string
	data []byte
}

// Document is an in-memory DOCX. All mutations happen on the parsed
// word/document.xml tree; nothing touches disk until Save/WriteTo.
type Document struct {
	path  string
	parts []part
	xml   *etree.Document
	body  *etree.Element
}

// Open loads a DOCX from disk
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewIOError("open", path, err)
	}

	doc, err := OpenBytes(data)
	if err != nil {
		if fe, ok := err.(*model.FormatError); ok {
			fe.Path = path
		}
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// OpenBytes loads a DOCX from an in-memory byte slice
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, model.NewFormatError("", "not a valid container", err)
	}

	doc := &Document{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, model.NewFormatError("", "unreadable part "+f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, model.NewFormatError("", "unreadable part "+f.Name, err)
		}
		doc.parts = append(doc.parts, part{name: f.Name, data: content})
	}

	main := doc.part(documentPart)
	if main == nil {
		return nil, model.NewFormatError("", "missing "+documentPart, nil)
	}

	xmlDoc := etree.NewDocument()
	if err := xmlDoc.ReadFromBytes(main.data); err != nil {
		return nil, model.NewFormatError("", "unreadable document XML", err)
	}

	root := xmlDoc.Root()
	if root == nil {
		return nil, model.NewFormatError("", "empty document XML", nil)
	}
	body := childByTag(root, "body")
	if body == nil {
		return nil, model.NewFormatError("", "document has no body", nil)
	}

	doc.xml = xmlDoc
	doc.body = body
	return doc, nil
}

// Path returns the path the document was opened from, if any
func (d *Document) Path() string {
	return d.path
}

func (d *Document) part(name string) *part {
	for i := range d.parts {
		if d.parts[i].name == name {
			return &d.parts[i]
		}
	}
	return nil
}

// Blocks returns the body's block-level elements in document order.
// Only paragraphs and tables count as blocks; section properties and
// other body children are skipped.
func (d *Document) Blocks() []Block {
	var blocks []Block
	for _, el := range d.body.ChildElements() {
		switch el.Tag {
		case "p":
			blocks = append(blocks, Block{el: el, kind: BlockParagraph})
		case "tbl":
			blocks = append(blocks, Block{el: el, kind: BlockTable})
		}
	}
	return blocks
}

// InsertBefore inserts blk immediately before anchor, shifting subsequent
// positions. The anchor must still be attached to this document's body.
func (d *Document) InsertBefore(anchor, blk Block) error {
	if anchor.el == nil || anchor.el.Parent() != d.body {
		return model.NewFormatError(d.path, "insert anchor is detached", nil)
	}
	d.body.InsertChildAt(anchor.el.Index(), blk.el)
	return nil
}

// Append adds blk at the end of the body, before any trailing section
// properties so the block stays inside the visible flow.
func (d *Document) Append(blk Block) {
	if sect := childByTag(d.body, "sectPr"); sect != nil {
		d.body.InsertChildAt(sect.Index(), blk.el)
		return
	}
	d.body.AddChild(blk.el)
}

// Remove detaches blk from the body without otherwise altering sibling order
func (d *Document) Remove(blk Block) error {
	if blk.el == nil || blk.el.Parent() != d.body {
		return model.NewFormatError(d.path, "cannot remove a detached block", nil)
	}
	d.body.RemoveChild(blk.el)
	return nil
}

// Bytes serializes the container to DOCX bytes
func (d *Document) Bytes() ([]byte, error) {
	xmlBytes, err := d.xml.WriteToBytes()
	if err != nil {
		return nil, model.NewFormatError(d.path, "serializing document XML", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range d.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, model.NewIOError("write", p.name, err)
		}
		content := p.data
		if p.name == documentPart {
			content = xmlBytes
		}
		if _, err := w.Write(content); err != nil {
			return nil, model.NewIOError("write", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, model.NewIOError("write", d.path, err)
	}
	return buf.Bytes(), nil
}

// WriteTo serializes the container to w
func (d *Document) WriteTo(w io.Writer) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return model.NewIOError("write", d.path, err)
	}
	return nil
}

// Save serializes the container to path
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.NewIOError("write", path, err)
	}
	return nil
}

// childByTag returns the first child element with the given local tag,
// regardless of namespace prefix
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// descendantsByTag collects descendant elements with the given local tag
// in document order
func descendantsByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
		out = append(out, descendantsByTag(c, tag)...)
	}
	return out
}
