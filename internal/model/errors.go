package model

import "fmt"

// IOError represents file-level failures: missing, unreadable or unwritable paths
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError creates a new I/O error
func NewIOError(op, path string, cause error) *IOError {
	return &IOError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// FormatError represents a structurally invalid document container,
// unreadable XML, or a mutation that targets a detached node
type FormatError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	msg := "invalid document"
	if e.Path != "" {
		msg = fmt.Sprintf("invalid document [%s]", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", msg, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", msg, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a new format error
func NewFormatError(path, message string, cause error) *FormatError {
	return &FormatError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// ExtractionError represents extraction failures
type ExtractionError struct {
	Method  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed [%s]: %s (%v)", e.Method, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed [%s]: %s", e.Method, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates a new extraction error
func NewExtractionError(method, message string, cause error) *ExtractionError {
	return &ExtractionError{
		Method:  method,
		Message: message,
		Cause:   cause,
	}
}

// UpstreamError represents a content-producer failure: the PDF read or the
// LLM call errored, or the model returned an unusable/ambiguous answer
type UpstreamError struct {
	Placeholder string
	Stage       string
	Message     string
	Cause       error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("producer failed [%s/%s]: %s (%v)", e.Placeholder, e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("producer failed [%s/%s]: %s", e.Placeholder, e.Stage, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(placeholder, stage, message string, cause error) *UpstreamError {
	return &UpstreamError{
		Placeholder: placeholder,
		Stage:       stage,
		Message:     message,
		Cause:       cause,
	}
}
