package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/tenderdoc/internal/model"
)

func TestIOError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := model.NewIOError("open", "/tmp/x.docx", cause)

	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "/tmp/x.docx")
	assert.Equal(t, cause, errors.Unwrap(err))

	var target *model.IOError
	assert.True(t, errors.As(error(err), &target))
}

func TestIOError_NoCause(t *testing.T) {
	err := model.NewIOError("rename", "out.docx", nil)
	assert.Contains(t, err.Error(), "rename")
	assert.Nil(t, errors.Unwrap(err))
}

func TestFormatError(t *testing.T) {
	err := model.NewFormatError("bad.docx", "missing word/document.xml", nil)
	assert.Contains(t, err.Error(), "bad.docx")
	assert.Contains(t, err.Error(), "missing word/document.xml")

	withCause := model.NewFormatError("", "unreadable document XML", fmt.Errorf("EOF"))
	assert.Contains(t, withCause.Error(), "EOF")
	assert.NotContains(t, withCause.Error(), "[]")
}

func TestExtractionError(t *testing.T) {
	cause := fmt.Errorf("corrupt xref")
	err := model.NewExtractionError("pdfcpu", "invalid PDF container", cause)

	assert.Contains(t, err.Error(), "pdfcpu")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestUpstreamError(t *testing.T) {
	cause := model.NewExtractionError("pdf", "no extractable text (scanned document?)", nil)
	err := model.NewUpstreamError("pham_vi_cung_cap", "produce", "content producer failed", cause)

	assert.Contains(t, err.Error(), "pham_vi_cung_cap")
	assert.Contains(t, err.Error(), "produce")

	// Chain stays inspectable through the wrapper
	var extErr *model.ExtractionError
	require.True(t, errors.As(error(err), &extErr))
	assert.Equal(t, "pdf", extErr.Method)
}
