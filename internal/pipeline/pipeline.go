// Package pipeline sequences the per-placeholder splice operations against
// one accumulating output document. Steps run in configured order; each
// step's result document is the next step's input. The canonical output path
// only ever receives a fully successful document: work happens against a
// temporary file that is renamed on success, and a failure after earlier
// successful steps saves the partial result to a clearly provisional path.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/model"
	"github.com/rezonia/tenderdoc/internal/normalize"
	"github.com/rezonia/tenderdoc/internal/producer"
	"github.com/rezonia/tenderdoc/internal/splice"
)

// Step is one placeholder substitution: a named marker, the producer that
// yields its content, and the formatting override applied during
// normalization (ignored for inline text content)
type Step struct {
	Name     string
	Producer producer.Producer
	Override normalize.Override
	Optional bool
	Retries  int
}

// Marker returns the literal placeholder substring for the step
func (s Step) Marker() string {
	return "{{" + s.Name + "}}"
}

// StepStatus reports one executed step
type StepStatus struct {
	Placeholder    string `json:"placeholder"`
	Found          bool   `json:"found"`
	Inline         bool   `json:"inline"`
	BlocksInserted int    `json:"blocks_inserted"`
	Skipped        bool   `json:"skipped,omitempty"`
}

// Report is the outcome of a full pipeline run
type Report struct {
	Output      string       `json:"output"`
	Provisional bool         `json:"provisional"`
	Steps       []StepStatus `json:"steps"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// Pipeline runs an ordered list of steps
type Pipeline struct {
	steps []Step
}

// New creates a pipeline from its ordered steps
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes every step against the template and writes the result to
// outputPath. On any failure the error names the first failing placeholder,
// the partial document is saved next to the output under a provisional name,
// and the canonical path is left untouched.
func (p *Pipeline) Run(ctx context.Context, templatePath, outputPath string) (*Report, error) {
	doc, err := docx.Open(templatePath)
	if err != nil {
		return nil, err
	}

	report := &Report{Output: outputPath}
	tmpPath := outputPath + ".tmp"

	fail := func(step Step, cause error) (*Report, error) {
		os.Remove(tmpPath)
		report.Provisional = true
		report.Output = ProvisionalPath(outputPath)
		if saveErr := doc.Save(report.Output); saveErr != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("could not save provisional document: %v", saveErr))
		}
		return report, cause
	}

	for _, step := range p.steps {
		content, err := produceWithRetry(ctx, step)
		if err != nil {
			return fail(step, model.NewUpstreamError(step.Name, "produce", "content producer failed", err))
		}

		status := StepStatus{Placeholder: step.Name}

		if content.Doc == nil {
			status.Inline = true
			status.Found = splice.ReplaceInline(doc, step.Marker(), content.Text)
		} else {
			blocks := normalize.Blocks(content.Doc, step.Override)
			res, err := splice.Splice(doc, step.Marker(), blocks)
			if err != nil {
				return fail(step, err)
			}
			status.Found = res.Found
			status.BlocksInserted = res.BlocksInserted
		}

		if !status.Found {
			if !step.Optional {
				return fail(step, fmt.Errorf("placeholder %s not found in document", step.Marker()))
			}
			status.Skipped = true
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("optional placeholder %s not found, skipped", step.Marker()))
		}
		report.Steps = append(report.Steps, status)

		// Persist the accumulated document after every step; the canonical
		// path stays untouched until the full run succeeds
		if err := doc.Save(tmpPath); err != nil {
			return fail(step, err)
		}
	}

	if len(p.steps) == 0 {
		if err := doc.Save(tmpPath); err != nil {
			return nil, err
		}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return report, model.NewIOError("rename", outputPath, err)
	}
	return report, nil
}

func produceWithRetry(ctx context.Context, step Step) (*producer.Content, error) {
	attempts := step.Retries + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := step.Producer.Produce(ctx)
		if err == nil {
			if content == nil || (content.Doc == nil && content.Text == "") {
				return nil, fmt.Errorf("producer returned empty content")
			}
			return content, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// ProvisionalPath derives the fallback output path used when a run cannot
// complete: "out/final.docx" becomes "out/final.provisional.docx"
func ProvisionalPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".provisional" + ext
}
