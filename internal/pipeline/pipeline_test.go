package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/model"
	"github.com/rezonia/tenderdoc/internal/normalize"
	"github.com/rezonia/tenderdoc/internal/pipeline"
	"github.com/rezonia/tenderdoc/internal/producer"
)

type fakeProducer struct {
	text  string
	doc   func() *docx.Document
	errs  []error // one per call, nil-padded
	calls int
}

func (f *fakeProducer) Produce(ctx context.Context) (*producer.Content, error) {
	call := f.calls
	f.calls++
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if f.doc != nil {
		return &producer.Content{Doc: f.doc()}, nil
	}
	return &producer.Content{Text: f.text}, nil
}

func writeTemplate(t *testing.T, lines ...string) string {
	t.Helper()
	doc := docx.New()
	for _, line := range lines {
		doc.AddText(line)
	}
	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, doc.Save(path))
	return path
}

func contentDoc(texts ...string) func() *docx.Document {
	return func() *docx.Document {
		doc := docx.New()
		for _, s := range texts {
			doc.AddText(s)
		}
		return doc
	}
}

func docTexts(t *testing.T, path string) []string {
	t.Helper()
	doc, err := docx.Open(path)
	require.NoError(t, err)
	var out []string
	for _, blk := range doc.Blocks() {
		out = append(out, blk.Text())
	}
	return out
}

func TestRun_InlineAndBlockSteps(t *testing.T) {
	template := writeTemplate(t,
		"Gói thầu: {{ten_goi_thau}}",
		"{{pham_vi_cung_cap}}",
		"kết thúc")
	output := filepath.Join(t.TempDir(), "final.docx")

	p := pipeline.New(
		pipeline.Step{
			Name:     "ten_goi_thau",
			Producer: &fakeProducer{text: "Mua sắm thiết bị"},
		},
		pipeline.Step{
			Name:     "pham_vi_cung_cap",
			Producer: &fakeProducer{doc: contentDoc("hàng hóa một", "hàng hóa hai")},
			Override: normalize.Default(),
		},
	)

	report, err := p.Run(context.Background(), template, output)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, output, report.Output)
	assert.False(t, report.Provisional)
	require.Len(t, report.Steps, 2)

	assert.True(t, report.Steps[0].Inline)
	assert.True(t, report.Steps[0].Found)
	assert.False(t, report.Steps[1].Inline)
	assert.Equal(t, 2, report.Steps[1].BlocksInserted)

	assert.Equal(t,
		[]string{"Gói thầu: Mua sắm thiết bị", "hàng hóa một", "hàng hóa hai", "kết thúc"},
		docTexts(t, output))

	// No stray temp file
	_, err = os.Stat(output + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingRequiredPlaceholder(t *testing.T) {
	template := writeTemplate(t, "{{ten_goi_thau}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	p := pipeline.New(
		pipeline.Step{Name: "ten_goi_thau", Producer: &fakeProducer{text: "ABC"}},
		pipeline.Step{Name: "khong_co", Producer: &fakeProducer{text: "x"}},
	)

	report, err := p.Run(context.Background(), template, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{khong_co}}")

	// Canonical path untouched, partial result saved provisionally
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))

	require.NotNil(t, report)
	assert.True(t, report.Provisional)
	assert.Equal(t, pipeline.ProvisionalPath(output), report.Output)

	// The successful first step is present in the provisional document
	assert.Equal(t, []string{"ABC"}, docTexts(t, report.Output))
}

func TestRun_OptionalPlaceholderSkipped(t *testing.T) {
	template := writeTemplate(t, "{{ten_goi_thau}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	p := pipeline.New(
		pipeline.Step{Name: "ten_goi_thau", Producer: &fakeProducer{text: "ABC"}},
		pipeline.Step{Name: "tuy_chon", Producer: &fakeProducer{text: "x"}, Optional: true},
	)

	report, err := p.Run(context.Background(), template, output)
	require.NoError(t, err)

	require.Len(t, report.Steps, 2)
	assert.True(t, report.Steps[1].Skipped)
	assert.NotEmpty(t, report.Warnings)
	assert.Equal(t, []string{"ABC"}, docTexts(t, output))
}

func TestRun_ProducerFailureWrapped(t *testing.T) {
	template := writeTemplate(t, "{{bi_loi}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	p := pipeline.New(pipeline.Step{
		Name:     "bi_loi",
		Producer: &fakeProducer{errs: []error{fmt.Errorf("upstream down")}},
	})

	_, err := p.Run(context.Background(), template, output)
	require.Error(t, err)

	var upErr *model.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "bi_loi", upErr.Placeholder)
}

func TestRun_RetriesProducer(t *testing.T) {
	template := writeTemplate(t, "{{chap_chon}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	flaky := &fakeProducer{
		text: "ổn định",
		errs: []error{fmt.Errorf("transient"), fmt.Errorf("transient"), nil},
	}
	p := pipeline.New(pipeline.Step{Name: "chap_chon", Producer: flaky, Retries: 2})

	report, err := p.Run(context.Background(), template, output)
	require.NoError(t, err)
	assert.Equal(t, 3, flaky.calls)
	assert.Equal(t, []string{"ổn định"}, docTexts(t, report.Output))
}

func TestRun_RetriesExhausted(t *testing.T) {
	template := writeTemplate(t, "{{chap_chon}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	flaky := &fakeProducer{
		errs: []error{fmt.Errorf("down"), fmt.Errorf("down")},
	}
	p := pipeline.New(pipeline.Step{Name: "chap_chon", Producer: flaky, Retries: 1})

	_, err := p.Run(context.Background(), template, output)
	require.Error(t, err)
	assert.Equal(t, 2, flaky.calls)
}

func TestRun_MissingTemplate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "final.docx")
	p := pipeline.New()

	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope.docx"), output)
	require.Error(t, err)

	var ioErr *model.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestRun_NoSteps(t *testing.T) {
	template := writeTemplate(t, "chỉ sao chép")
	output := filepath.Join(t.TempDir(), "final.docx")

	report, err := pipeline.New().Run(context.Background(), template, output)
	require.NoError(t, err)
	assert.Equal(t, []string{"chỉ sao chép"}, docTexts(t, report.Output))
}

func TestRun_CancelledContext(t *testing.T) {
	template := writeTemplate(t, "{{x}}")
	output := filepath.Join(t.TempDir(), "final.docx")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.New(pipeline.Step{Name: "x", Producer: &fakeProducer{text: "y"}}).
		Run(ctx, template, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStepMarker(t *testing.T) {
	s := pipeline.Step{Name: "ten_goi_thau"}
	assert.Equal(t, "{{ten_goi_thau}}", s.Marker())
}

func TestProvisionalPath(t *testing.T) {
	assert.Equal(t, "out/final.provisional.docx", pipeline.ProvisionalPath("out/final.docx"))
	assert.Equal(t, "plain.provisional", pipeline.ProvisionalPath("plain"))
}
