package api

import (
	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/core/slogan"
)

// =============================================================================
// Request Types
// =============================================================================

// GenerateRequest is the request body of POST /api/v1/generate.
type GenerateRequest struct {
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Keywords    []string `json:"keywords"`
	Tone        string   `json:"tone,omitempty"`
	Length      string   `json:"length,omitempty"`
}

// ExportRequest is the request body of POST /api/v1/slogans/{id}/export.
// Logo is a base64-encoded image.
type ExportRequest struct {
	Style export.StyleConfig `json:"style"`
	Logo  string             `json:"logo,omitempty"`
}

// =============================================================================
// Response Types
// =============================================================================

// GenerateResponse is the response of POST /api/v1/generate.
type GenerateResponse struct {
	Request slogan.Request   `json:"request"`
	Slogans []SloganResponse `json:"slogans"`
	Total   int              `json:"total"`
}

// SloganResponse is one slogan of a stateless generation.
type SloganResponse struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Length string `json:"length"`
}
