package steps

import (
	"context"
)

// TextExtractor reads a PDF's full text
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// StepCounter classifies extracted text as a 21-step or 23-step process
type StepCounter interface {
	DetectStepCount(ctx context.Context, text string) (int, error)
}

// Detector combines PDF extraction with LLM step-count classification
type Detector struct {
	pdf TextExtractor
	llm StepCounter
}

// NewDetector creates a step detector from its two collaborators
func NewDetector(pdf TextExtractor, llm StepCounter) *Detector {
	return &Detector{pdf: pdf, llm: llm}
}

// Detect extracts the PDF at path and returns the detected step count
// (21 or 23). Ambiguous answers surface as an UpstreamError from the
// classifier.
func (d *Detector) Detect(ctx context.Context, path string) (int, error) {
	text, err := d.pdf.ExtractFile(path)
	if err != nil {
		return 0, err
	}
	return d.llm.DetectStepCount(ctx, text)
}
