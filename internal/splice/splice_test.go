package splice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/splice"
)

func newTemplate(lines ...string) *docx.Document {
	doc := docx.New()
	for _, line := range lines {
		doc.AddText(line)
	}
	return doc
}

func texts(doc *docx.Document) []string {
	var out []string
	for _, blk := range doc.Blocks() {
		out = append(out, blk.Text())
	}
	return out
}

func TestLocate(t *testing.T) {
	doc := newTemplate("intro", "xem {{pham_vi_cung_cap}} tại đây", "outro")

	blk, found := splice.Locate(doc, "{{pham_vi_cung_cap}}")
	require.True(t, found)
	assert.Contains(t, blk.Text(), "{{pham_vi_cung_cap}}")

	_, found = splice.Locate(doc, "{{khong_ton_tai}}")
	assert.False(t, found)
}

func TestLocate_EmptyMarker(t *testing.T) {
	doc := newTemplate("anything")
	_, found := splice.Locate(doc, "")
	assert.False(t, found)
}

func TestSplice_ReplacesMarkerParagraph(t *testing.T) {
	target := newTemplate("before", "{{pham_vi_cung_cap}}", "after")

	source := docx.New()
	source.AddText("nội dung một")
	source.AddText("nội dung hai")
	var blocks []docx.Block
	for _, blk := range source.Blocks() {
		blocks = append(blocks, blk.Clone())
	}

	result, err := splice.Splice(target, "{{pham_vi_cung_cap}}", blocks)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 2, result.BlocksInserted)

	assert.Equal(t, []string{"before", "nội dung một", "nội dung hai", "after"}, texts(target))
}

func TestSplice_TableBlock(t *testing.T) {
	target := newTemplate("{{pham_vi_cung_cap}}")

	source := docx.New()
	tbl := source.AddTable(4680, 4680)
	row := tbl.AddRow()
	_, p := row.AddCell(4680)
	p.AddRun("STT")
	_, p = row.AddCell(4680)
	p.AddRun("Danh mục")

	var blocks []docx.Block
	for _, blk := range source.Blocks() {
		blocks = append(blocks, blk.Clone())
	}

	result, err := splice.Splice(target, "{{pham_vi_cung_cap}}", blocks)
	require.NoError(t, err)
	assert.True(t, result.Found)

	got := target.Blocks()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsTable())
}

func TestSplice_NotFoundLeavesTargetUntouched(t *testing.T) {
	target := newTemplate("nothing to see")
	before, err := target.Bytes()
	require.NoError(t, err)

	source := docx.New()
	source.AddText("unused")

	result, err := splice.Splice(target, "{{missing}}", []docx.Block{source.Blocks()[0].Clone()})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Zero(t, result.BlocksInserted)

	after, err := target.Bytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSplice_FirstOccurrenceOnly(t *testing.T) {
	target := newTemplate("{{dup}}", "middle", "{{dup}}")

	source := docx.New()
	source.AddText("replacement")

	result, err := splice.Splice(target, "{{dup}}", []docx.Block{source.Blocks()[0].Clone()})
	require.NoError(t, err)
	assert.True(t, result.Found)

	assert.Equal(t, []string{"replacement", "middle", "{{dup}}"}, texts(target))
}

func TestSplice_EmptyBlocksRemovesMarker(t *testing.T) {
	target := newTemplate("keep", "{{gone}}")

	result, err := splice.Splice(target, "{{gone}}", nil)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Zero(t, result.BlocksInserted)

	assert.Equal(t, []string{"keep"}, texts(target))
}

func TestSplice_MarkerInsideTableNotMatched(t *testing.T) {
	target := docx.New()
	tbl := target.AddTable(9360)
	row := tbl.AddRow()
	_, p := row.AddCell(9360)
	p.AddRun("{{in_cell}}")

	result, err := splice.Splice(target, "{{in_cell}}", nil)
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestReplaceInline_SingleRun(t *testing.T) {
	doc := newTemplate("Gói thầu: {{ten_goi_thau}} (đợt 1)")

	ok := splice.ReplaceInline(doc, "{{ten_goi_thau}}", "Mua sắm thiết bị y tế")
	require.True(t, ok)
	assert.Equal(t, "Gói thầu: Mua sắm thiết bị y tế (đợt 1)", doc.Blocks()[0].Text())
}

func TestReplaceInline_MarkerSpansRuns(t *testing.T) {
	doc := docx.New()
	p := doc.AddParagraph()
	p.AddRun("Tên: {{ten_")
	p.AddRun("goi_")
	p.AddRun("thau}} hết")

	ok := splice.ReplaceInline(doc, "{{ten_goi_thau}}", "ABC")
	require.True(t, ok)
	assert.Equal(t, "Tên: ABC hết", doc.Blocks()[0].Text())

	// Run boundaries and formatting carriers survive
	assert.Len(t, doc.Blocks()[0].Paragraph().Runs(), 3)
}

func TestReplaceInline_TableCell(t *testing.T) {
	doc := docx.New()
	tbl := doc.AddTable(9360)
	row := tbl.AddRow()
	_, p := row.AddCell(9360)
	p.AddRun("Giá: {{gia_goi_thau}}")

	ok := splice.ReplaceInline(doc, "{{gia_goi_thau}}", "1.500.000.000 VNĐ")
	require.True(t, ok)

	cells := doc.Blocks()[0].Table().Rows()[0].Cells()
	assert.Equal(t, "Giá: 1.500.000.000 VNĐ", cells[0].Text())
}

func TestReplaceInline_NotFound(t *testing.T) {
	doc := newTemplate("no markers here")
	assert.False(t, splice.ReplaceInline(doc, "{{absent}}", "x"))
	assert.False(t, splice.ReplaceInline(doc, "", "x"))
}

func TestReplaceInline_FirstOccurrenceOnly(t *testing.T) {
	doc := newTemplate("{{x}} first", "{{x}} second")

	require.True(t, splice.ReplaceInline(doc, "{{x}}", "A"))
	assert.Equal(t, []string{"A first", "{{x}} second"}, texts(doc))
}
