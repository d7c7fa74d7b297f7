package splice

import (
	"strings"

	"github.com/rezonia/tenderdoc/internal/docx"
)

// ReplaceInline substitutes a short placeholder with plain text inside the
// first paragraph containing it, keeping the surrounding run formatting. The
// marker may span multiple runs; the replacement lands in the run where the
// marker starts and the spanned remainder is cleared. Table cells are scanned
// after body paragraphs. Only the first occurrence is replaced.
func ReplaceInline(target *docx.Document, placeholder, text string) bool {
	if placeholder == "" {
		return false
	}

	for _, blk := range target.Blocks() {
		switch {
		case blk.IsParagraph():
			if replaceInParagraph(blk.Paragraph(), placeholder, text) {
				return true
			}
		case blk.IsTable():
			for _, row := range blk.Table().Rows() {
				for _, cell := range row.Cells() {
					for _, p := range cell.Paragraphs() {
						if replaceInParagraph(p, placeholder, text) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}

func replaceInParagraph(p docx.Paragraph, placeholder, text string) bool {
	full := p.Text()
	start := indexOf(full, placeholder)
	if start < 0 {
		return false
	}
	end := start + len(placeholder)

	runs := p.Runs()

	// Map the marker's byte range onto the run sequence
	offset := 0
	firstRun, lastRun := -1, -1
	firstOff := 0
	for i, r := range runs {
		t := r.Text()
		if firstRun == -1 && start < offset+len(t) {
			firstRun = i
			firstOff = start - offset
		}
		if firstRun != -1 && end <= offset+len(t) {
			lastRun = i
			break
		}
		offset += len(t)
	}
	if firstRun == -1 || lastRun == -1 {
		return false
	}

	if firstRun == lastRun {
		t := runs[firstRun].Text()
		runs[firstRun].SetText(strings.Replace(t, placeholder, text, 1))
		return true
	}

	// Marker spans runs: the first run keeps its prefix plus the replacement,
	// the last keeps its suffix, everything between is cleared
	consumed := 0
	for i := firstRun; i <= lastRun; i++ {
		t := runs[i].Text()
		switch i {
		case firstRun:
			runs[i].SetText(t[:firstOff] + text)
			consumed += len(t) - firstOff
		case lastRun:
			runs[i].SetText(t[len(placeholder)-consumed:])
		default:
			runs[i].SetText("")
			consumed += len(t)
		}
	}
	return true
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
