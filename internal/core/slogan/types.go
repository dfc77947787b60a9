package slogan

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// Errors
// =============================================================================

var (
	ErrUnknownTone   = errors.New("unknown tone")
	ErrUnknownLength = errors.New("unknown length")
)

// =============================================================================
// Tone
// =============================================================================

// Tone selects which primary template bank is used.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCreative     Tone = "creative"
	ToneFriendly     Tone = "friendly"
	ToneBold         Tone = "bold"
)

// DefaultTone is preselected in the generator form.
const DefaultTone = ToneProfessional

// Tones lists every tone in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCreative, ToneFriendly, ToneBold}
}

// IsValid checks if the tone is one of the known tones.
func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneCreative, ToneFriendly, ToneBold:
		return true
	default:
		return false
	}
}

// ParseTone parses a tone name. The empty string maps to DefaultTone.
func ParseTone(s string) (Tone, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTone, nil
	}
	t := Tone(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, s)
	}
	return t, nil
}

// =============================================================================
// Request and Slogan
// =============================================================================

// Request is the input of Generate.
type Request struct {
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Keywords    []string `json:"keywords"`
	Tone        Tone     `json:"tone"`
}

// Slogan is one generated line. Rating is 0 until the user rates it.
type Slogan struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating,omitempty"`
}

// Rated reports whether the slogan has been given a rating.
func (s Slogan) Rated() bool {
	return s.Rating > 0
}
