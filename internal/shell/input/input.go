// Package input cleans untrusted form, JSON and flag values before they reach
// the slogan generator.
package input

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/core/validation"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Text strips every HTML tag from raw and collapses runs of whitespace.
// Entities are decoded again because the output is escaped when rendered.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := html.UnescapeString(textSanitizer().Sanitize(trimmed))
	return strings.Join(strings.Fields(cleaned), " ")
}

// Keywords cleans each keyword and drops the empty ones.
func Keywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		if k = Text(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// KeywordList parses a comma-separated keyword field.
func KeywordList(raw string) []string {
	return Keywords(slogan.ParseKeywords(raw))
}

// =============================================================================
// Request Building
// =============================================================================

// FieldError reports which request field was rejected.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// BuildRequest sanitizes and validates the generator inputs.
// The returned error is always a *FieldError.
func BuildRequest(company, industry string, keywords []string, tone string) (slogan.Request, error) {
	req := slogan.Request{
		CompanyName: Text(company),
		Industry:    Text(industry),
		Keywords:    Keywords(keywords),
	}

	if field, msg := validation.ValidateSloganRequest(req.CompanyName, req.Industry, req.Keywords); msg != "" {
		return slogan.Request{}, &FieldError{Field: field, Message: msg}
	}

	t, err := slogan.ParseTone(tone)
	if err != nil {
		return slogan.Request{}, &FieldError{Field: "tone", Message: "tone must be one of professional, creative, friendly or bold"}
	}
	req.Tone = t

	return req, nil
}
