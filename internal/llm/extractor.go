package llm

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// Extractor runs the procurement-specific extraction calls on top of a Client
type Extractor struct {
	client *Client
	model  string
}

// ExtractorOption configures the extractor
type ExtractorOption func(*Extractor)

// WithModel sets the model used for extraction calls
func WithModel(model string) ExtractorOption {
	return func(e *Extractor) {
		e.model = model
	}
}

// NewExtractor creates an extractor bound to the given client
func NewExtractor(client *Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{client: client}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TenderInfo holds the short fields extracted from the tender notice (TBMT)
type TenderInfo struct {
	Name     string `json:"ten_goi_thau"`
	RawPrice string `json:"gia_goi_thau"`
}

// ExtractTenderInfo pulls the tender package name and price from TBMT text
func (e *Extractor) ExtractTenderInfo(ctx context.Context, text string) (*TenderInfo, error) {
	resp, err := e.client.ChatText(ctx, e.model, systemPromptTenderInfo, fmt.Sprintf(promptTenderInfo, text))
	if err != nil {
		return nil, err
	}

	var info TenderInfo
	if err := json.Unmarshal([]byte(ExtractJSON(resp)), &info); err != nil {
		return nil, fmt.Errorf("unparseable tender info answer: %w", err)
	}
	info.Name = strings.Trim(strings.TrimSpace(info.Name), `"`)
	info.RawPrice = strings.TrimSpace(info.RawPrice)
	if info.Name == "" {
		return nil, fmt.Errorf("tender name not found in TBMT content")
	}
	return &info, nil
}

// DetectStepCount classifies CHUONG_V text as a 21-step or 23-step process.
// Any answer other than the two expected values is an error for the caller
// to treat as an unavailable upstream.
func (e *Extractor) DetectStepCount(ctx context.Context, text string) (int, error) {
	resp, err := e.client.ChatText(ctx, e.model, systemPromptStepCount, fmt.Sprintf(promptStepCount, text))
	if err != nil {
		return 0, err
	}

	switch answer := strings.TrimSpace(resp); answer {
	case "21":
		return 21, nil
	case "23":
		return 23, nil
	case "UNKNOWN":
		return 0, fmt.Errorf("step count could not be determined")
	default:
		return 0, fmt.Errorf("unexpected step count answer %q", answer)
	}
}

// MarkdownStyle selects the formatting rules for narrative sections
type MarkdownStyle string

const (
	MarkdownLegal   MarkdownStyle = "legal"   // căn cứ pháp lý
	MarkdownPurpose MarkdownStyle = "purpose" // mục đích công việc
)

// FormatMarkdown reformats extracted PDF text into constrained markdown
// (bold subheadings, "- " bullets) without adding content
func (e *Extractor) FormatMarkdown(ctx context.Context, text string, style MarkdownStyle) (string, error) {
	system := systemPromptMarkdownLegal
	if style == MarkdownPurpose {
		system = systemPromptMarkdownPurpose
	}
	resp, err := e.client.ChatText(ctx, e.model, system, text)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(resp)
	if out == "" {
		return "", fmt.Errorf("empty formatting answer")
	}
	return out, nil
}

// ExtractScopeTable pulls the "Phạm vi cung cấp" table rows from BMMT text
func (e *Extractor) ExtractScopeTable(ctx context.Context, text string) ([][]string, error) {
	resp, err := e.client.ChatText(ctx, e.model, systemPromptScopeTable, fmt.Sprintf(promptScopeTable, text))
	if err != nil {
		return nil, err
	}
	rows, err := ParseTableBlock(resp)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no table rows in answer")
	}
	return rows, nil
}

// StepSection is the extracted "Các bước thực hiện" content: the intro
// paragraphs preceding the work table, then the table rows including the
// header row
type StepSection struct {
	Intro []string
	Rows  [][]string
}

// ExtractStepSection pulls the step section (paragraphs plus full work
// table) from CHUONG_V text
func (e *Extractor) ExtractStepSection(ctx context.Context, text string) (*StepSection, error) {
	resp, err := e.client.ChatText(ctx, e.model, systemPromptStepSection, fmt.Sprintf(promptStepSection, text))
	if err != nil {
		return nil, err
	}

	section := &StepSection{}
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "PARAGRAPH1:"):
			section.Intro = append(section.Intro, strings.TrimSpace(strings.TrimPrefix(line, "PARAGRAPH1:")))
		case strings.HasPrefix(line, "PARAGRAPH2:"):
			section.Intro = append(section.Intro, strings.TrimSpace(strings.TrimPrefix(line, "PARAGRAPH2:")))
		}
	}

	rows, err := ParseTableBlock(resp)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no table rows in answer")
	}
	section.Rows = rows
	return section, nil
}

// ParseTableBlock reads the CSV lines between TABLE_START and TABLE_END
// markers. Quoted cells may contain commas; lines without a separator are
// skipped the way stray prose between rows is.
func ParseTableBlock(response string) ([][]string, error) {
	var rows [][]string
	inTable := false
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "TABLE_START":
			inTable = true
		case line == "TABLE_END":
			return rows, nil
		case inTable && strings.Contains(line, ","):
			r := csv.NewReader(strings.NewReader(line))
			r.FieldsPerRecord = -1
			record, err := r.Read()
			if err != nil {
				continue
			}
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
			rows = append(rows, record)
		}
	}
	if inTable {
		return nil, fmt.Errorf("unterminated table block")
	}
	return rows, nil
}
