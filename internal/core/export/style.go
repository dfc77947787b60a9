package export

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// =============================================================================
// Enumerations
// =============================================================================

// Font names a font family offered in the customization form.
type Font string

const (
	FontPoppins Font = "poppins"
	FontInter   Font = "inter"
	FontGeorgia Font = "georgia"
	FontArial   Font = "arial"
	FontVerdana Font = "verdana"
)

// Fonts lists the offered fonts in display order.
func Fonts() []Font {
	return []Font{FontPoppins, FontInter, FontGeorgia, FontArial, FontVerdana}
}

// Label returns the display name of the font.
func (f Font) Label() string {
	switch f {
	case FontPoppins:
		return "Poppins"
	case FontInter:
		return "Inter"
	case FontGeorgia:
		return "Georgia"
	case FontArial:
		return "Arial"
	case FontVerdana:
		return "Verdana"
	}
	return string(f)
}

// Serif reports whether the font is a serif family.
func (f Font) Serif() bool {
	return f == FontGeorgia
}

// Format is the page orientation.
type Format string

const (
	FormatPortrait  Format = "portrait"
	FormatLandscape Format = "landscape"
)

// Alignment is the horizontal text alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Alignments lists the alignments in display order.
func Alignments() []Alignment {
	return []Alignment{AlignLeft, AlignCenter, AlignRight}
}

// LogoPosition places the logo relative to the slogan text.
type LogoPosition string

const (
	LogoTop    LogoPosition = "top"
	LogoBottom LogoPosition = "bottom"
	LogoLeft   LogoPosition = "left"
	LogoRight  LogoPosition = "right"
)

// LogoPositions lists the positions in display order.
func LogoPositions() []LogoPosition {
	return []LogoPosition{LogoTop, LogoBottom, LogoLeft, LogoRight}
}

// =============================================================================
// Limits
// =============================================================================

const (
	MinSize     = 16
	MaxSize     = 96
	SizeStep    = 2
	MinLogoSize = 30
	MaxLogoSize = 200
)

// =============================================================================
// StyleConfig
// =============================================================================

// StyleConfig describes how a slogan is drawn. Sizes are in CSS pixels.
type StyleConfig struct {
	Font            Font         `json:"font"`
	Color           string       `json:"color"`
	Size            int          `json:"size"`
	Format          Format       `json:"format"`
	BackgroundColor string       `json:"background_color"`
	Alignment       Alignment    `json:"alignment"`
	LogoPosition    LogoPosition `json:"logo_position"`
	LogoSize        int          `json:"logo_size"`
}

// DefaultStyle returns the style preselected in the customization form.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Font:            FontPoppins,
		Color:           "#2A5CAA",
		Size:            48,
		Format:          FormatPortrait,
		BackgroundColor: "#FFFFFF",
		Alignment:       AlignCenter,
		LogoPosition:    LogoTop,
		LogoSize:        80,
	}
}

// Normalize fills zero values from DefaultStyle, lowercases enum values and
// rounds an odd Size up to the next even number. It does not clamp out-of-range
// values; Validate reports those.
func (s StyleConfig) Normalize() StyleConfig {
	d := DefaultStyle()
	s.Font = Font(strings.ToLower(strings.TrimSpace(string(s.Font))))
	s.Format = Format(strings.ToLower(strings.TrimSpace(string(s.Format))))
	s.Alignment = Alignment(strings.ToLower(strings.TrimSpace(string(s.Alignment))))
	s.LogoPosition = LogoPosition(strings.ToLower(strings.TrimSpace(string(s.LogoPosition))))
	s.Color = strings.TrimSpace(s.Color)
	s.BackgroundColor = strings.TrimSpace(s.BackgroundColor)

	if s.Font == "" {
		s.Font = d.Font
	}
	if s.Color == "" {
		s.Color = d.Color
	}
	if s.Size == 0 {
		s.Size = d.Size
	}
	if s.Format == "" {
		s.Format = d.Format
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = d.BackgroundColor
	}
	if s.Alignment == "" {
		s.Alignment = d.Alignment
	}
	if s.LogoPosition == "" {
		s.LogoPosition = d.LogoPosition
	}
	if s.LogoSize == 0 {
		s.LogoSize = d.LogoSize
	}
	if s.Size%SizeStep != 0 {
		s.Size++
	}
	return s
}

// =============================================================================
// Validation
// =============================================================================

// ValidationResult represents the outcome of a style validation check.
type ValidationResult struct {
	// Valid indicates whether every rule passed
	Valid bool

	// Field names the first failing field (empty if Valid is true)
	Field string

	// Reason explains why the style was rejected (empty if Valid is true)
	Reason string
}

func invalid(field, format string, args ...any) ValidationResult {
	return ValidationResult{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the style against the offered options and limits.
// Call Normalize first so that empty fields take their defaults.
func (s StyleConfig) Validate() ValidationResult {
	if !contains(Fonts(), s.Font) {
		return invalid("font", "unknown font %q", s.Font)
	}
	if _, err := ParseHexColor(s.Color); err != nil {
		return invalid("color", "color must be a hex color such as #2A5CAA")
	}
	if s.Size < MinSize || s.Size > MaxSize {
		return invalid("size", "size must be between %d and %d", MinSize, MaxSize)
	}
	if s.Size%SizeStep != 0 {
		return invalid("size", "size must be a multiple of %d", SizeStep)
	}
	if s.Format != FormatPortrait && s.Format != FormatLandscape {
		return invalid("format", "format must be portrait or landscape")
	}
	if _, err := ParseHexColor(s.BackgroundColor); err != nil {
		return invalid("background_color", "background_color must be a hex color such as #FFFFFF")
	}
	if !contains(Alignments(), s.Alignment) {
		return invalid("alignment", "alignment must be left, center or right")
	}
	if !contains(LogoPositions(), s.LogoPosition) {
		return invalid("logo_position", "logo_position must be top, bottom, left or right")
	}
	if s.LogoSize < MinLogoSize || s.LogoSize > MaxLogoSize {
		return invalid("logo_size", "logo_size must be between %d and %d", MinLogoSize, MaxLogoSize)
	}
	return ValidationResult{Valid: true}
}

// Ok returns true if the validation passed.
func (r ValidationResult) Ok() bool {
	return r.Valid
}

// Error returns "field: reason" as an error if validation failed, nil otherwise.
func (r ValidationResult) Error() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%s: %s", r.Field, r.Reason)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// =============================================================================
// Colors
// =============================================================================

// ErrInvalidColor is returned by ParseHexColor.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque color.
//
//	ParseHexColor("#2A5CAA") // returns color.RGBA{0x2a, 0x5c, 0xaa, 0xff}
//	ParseHexColor("#fff")    // returns color.RGBA{0xff, 0xff, 0xff, 0xff}
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
