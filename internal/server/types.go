package server

import (
	"github.com/rezonia/tenderdoc/internal/pipeline"
)

// GenerateResponse is the response for the generate endpoint
type GenerateResponse struct {
	Report *pipeline.Report `json:"report"`
	Error  string           `json:"error,omitempty"`
}

// DetectResponse is the response for the step detect endpoint
type DetectResponse struct {
	Steps int `json:"steps"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
