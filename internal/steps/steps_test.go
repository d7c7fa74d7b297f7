package steps_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/tenderdoc/internal/steps"
)

func TestIsSubStep(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"1", false},
		{"2", false},
		{"21", false},
		{"  3  ", false},
		{"a)", true},
		{"aa)", true},
		{"b", true},
		{"b)", true},
		{"3a", true},
		{"-", true},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, steps.IsSubStep(tt.label))
		})
	}
}

type fakeText struct {
	text string
	err  error
	got  string
}

func (f *fakeText) ExtractFile(path string) (string, error) {
	f.got = path
	return f.text, f.err
}

type fakeCounter struct {
	count int
	err   error
	got   string
}

func (f *fakeCounter) DetectStepCount(ctx context.Context, text string) (int, error) {
	f.got = text
	return f.count, f.err
}

func TestDetector_Detect(t *testing.T) {
	pdf := &fakeText{text: "quy trình 21 bước"}
	llm := &fakeCounter{count: 21}

	count, err := steps.NewDetector(pdf, llm).Detect(context.Background(), "CHUONG_V.pdf")
	require.NoError(t, err)
	assert.Equal(t, 21, count)
	assert.Equal(t, "CHUONG_V.pdf", pdf.got)
	assert.Equal(t, "quy trình 21 bước", llm.got)
}

func TestDetector_ExtractionFailure(t *testing.T) {
	pdf := &fakeText{err: fmt.Errorf("unreadable")}
	llm := &fakeCounter{count: 23}

	_, err := steps.NewDetector(pdf, llm).Detect(context.Background(), "x.pdf")
	require.Error(t, err)
	assert.Empty(t, llm.got)
}

func TestDetector_ClassifierFailure(t *testing.T) {
	pdf := &fakeText{text: "nội dung"}
	llm := &fakeCounter{err: fmt.Errorf("ambiguous")}

	_, err := steps.NewDetector(pdf, llm).Detect(context.Background(), "x.pdf")
	require.Error(t, err)
}
