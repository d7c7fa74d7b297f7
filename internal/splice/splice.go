// Package splice locates {{name}} placeholder markers in a document body and
// replaces them: a marker paragraph can be swapped for a sequence of prepared
// blocks, or a short marker substring can be replaced with plain text inside
// its paragraph. Both follow the first-occurrence-only policy: the first
// paragraph in document order containing the literal marker is substituted,
// later occurrences are left untouched.
package splice

import (
	"github.com/rezonia/tenderdoc/internal/docx"
)

// Result reports the outcome of one splice operation
type Result struct {
	Found          bool `json:"found"`
	BlocksInserted int  `json:"blocks_inserted"`
}

// Locate returns the first paragraph block whose concatenated run text
// contains the literal placeholder. Tables are not scanned for block markers.
func Locate(doc *docx.Document, placeholder string) (docx.Block, bool) {
	for _, blk := range doc.Blocks() {
		if !blk.IsParagraph() {
			continue
		}
		if containsMarker(blk.Paragraph().Text(), placeholder) {
			return blk, true
		}
	}
	return docx.Block{}, false
}

// Splice replaces the marker paragraph with the given blocks, preserving
// their relative order at the marker's structural position. When the marker
// is not found the target is left untouched and Found is false; that is a
// reported condition, not an error, so the caller decides whether a missing
// placeholder is fatal.
func Splice(target *docx.Document, placeholder string, blocks []docx.Block) (Result, error) {
	anchor, ok := Locate(target, placeholder)
	if !ok {
		return Result{}, nil
	}

	// Each insert lands immediately before the still-attached marker, so
	// forward order is preserved without index arithmetic. The marker is
	// removed only after every block is in place.
	for _, blk := range blocks {
		if err := target.InsertBefore(anchor, blk); err != nil {
			return Result{Found: true}, err
		}
	}
	if err := target.Remove(anchor); err != nil {
		return Result{Found: true}, err
	}

	return Result{Found: true, BlocksInserted: len(blocks)}, nil
}

func containsMarker(text, placeholder string) bool {
	return placeholder != "" && indexOf(text, placeholder) >= 0
}
