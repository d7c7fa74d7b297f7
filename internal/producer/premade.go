package producer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rezonia/tenderdoc/internal/docx"
)

// PremadeProducer loads an already-formatted content document from disk.
// No extraction or LLM step is involved.
type PremadeProducer struct {
	Path string
}

// Produce opens the pre-built document
func (p *PremadeProducer) Produce(ctx context.Context) (*Content, error) {
	doc, err := docx.Open(p.Path)
	if err != nil {
		return nil, err
	}
	return &Content{Doc: doc}, nil
}

// StepDetector classifies a process PDF as 21 or 23 steps
type StepDetector interface {
	Detect(ctx context.Context, path string) (int, error)
}

// StepPremadeProducer picks between the pre-built 21-step and 23-step
// content documents based on what the source PDF describes
type StepPremadeProducer struct {
	Detector StepDetector
	Source   string // CHUONG_V PDF path
	Dir      string // directory holding 21_BUOC.docx / 23_BUOC.docx
}

// Produce detects the step count and opens the matching document
func (p *StepPremadeProducer) Produce(ctx context.Context) (*Content, error) {
	count, err := p.Detector.Detect(ctx, p.Source)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(p.Dir, fmt.Sprintf("%d_BUOC.docx", count))
	doc, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return &Content{Doc: doc}, nil
}
