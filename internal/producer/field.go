package producer

import (
	"context"
	"fmt"

	vnd "github.com/rezonia/tenderdoc/internal/decimal"
)

// Field names extractable from the tender notice
const (
	FieldTenderName   = "ten_goi_thau"
	FieldPackagePrice = "gia_goi_thau"
)

// FieldProducer extracts one short text field from a source PDF via the LLM.
// The result is spliced inline, preserving the marker's run formatting.
type FieldProducer struct {
	PDF    TextExtractor
	LLM    TenderInfoExtractor
	Source string // PDF path (TBMT)
	Field  string // FieldTenderName or FieldPackagePrice
}

// Produce extracts the configured field
func (p *FieldProducer) Produce(ctx context.Context) (*Content, error) {
	text, err := p.PDF.ExtractFile(p.Source)
	if err != nil {
		return nil, err
	}

	info, err := p.LLM.ExtractTenderInfo(ctx, text)
	if err != nil {
		return nil, err
	}

	switch p.Field {
	case FieldTenderName:
		return &Content{Text: info.Name}, nil
	case FieldPackagePrice:
		if info.RawPrice == "" {
			return nil, fmt.Errorf("package price not found in TBMT content")
		}
		// Normalize the formatting; fall back to the raw answer when the
		// amount does not parse as a number
		if d, err := vnd.ParseVND(info.RawPrice); err == nil {
			return &Content{Text: vnd.FormatVND(d)}, nil
		}
		return &Content{Text: info.RawPrice}, nil
	default:
		return nil, fmt.Errorf("unknown field %q", p.Field)
	}
}
