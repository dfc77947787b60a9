// Package render turns a slogan and its style into a downloadable artifact.
package render

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/artpar/sloganforge/internal/core/export"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrUnsupportedKind is returned for an export kind with no renderer.
	ErrUnsupportedKind = errors.New("unsupported export kind")

	// ErrInvalidLogo is returned when the logo is too large or not an image.
	ErrInvalidLogo = errors.New("invalid logo")

	// ErrInvalidStyle is returned when the style fails validation.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrEmptyText is returned when there is no slogan to draw.
	ErrEmptyText = errors.New("slogan text is empty")
)

// =============================================================================
// Types
// =============================================================================

// Input is what gets rendered. Logo holds the raw bytes of an uploaded image
// and may be empty.
type Input struct {
	Text  string
	Style export.StyleConfig
	Logo  []byte
}

// Artifact is a rendered download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte

	// ETag is the quoted hex BLAKE2b-256 digest of Body.
	ETag string
}

// Config holds renderer limits.
type Config struct {
	MaxLogoBytes int64
}

// DefaultConfig returns the default renderer limits.
func DefaultConfig() Config {
	return Config{
		MaxLogoBytes: 2 << 20,
	}
}

// Renderer produces PNG, PDF and plain-text artifacts.
type Renderer struct {
	config Config
	logger *slog.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(config Config, logger *slog.Logger) *Renderer {
	if config.MaxLogoBytes <= 0 {
		config.MaxLogoBytes = DefaultConfig().MaxLogoBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		config: config,
		logger: logger.With("component", "renderer"),
	}
}

// =============================================================================
// Render
// =============================================================================

// Render draws in as kind. The style is normalized before validation.
func (r *Renderer) Render(ctx context.Context, kind export.Kind, in Input) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	style := in.Style.Normalize()
	if err := style.Validate().Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}

	start := time.Now()
	var (
		body []byte
		err  error
	)
	switch kind {
	case export.KindText:
		body = []byte(export.PlainText(text))
	case export.KindPNG:
		body, err = r.renderPNG(text, style, in.Logo)
	case export.KindPDF:
		body, err = r.renderPDF(text, style, in.Logo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("rendered artifact",
		"kind", kind,
		"bytes", len(body),
		"has_logo", len(in.Logo) > 0,
		"duration", time.Since(start),
	)

	return &Artifact{
		Filename:    export.Filename(text, kind),
		ContentType: kind.ContentType(),
		Body:        body,
		ETag:        ETag(body),
	}, nil
}

// ETag returns the quoted hex BLAKE2b-256 digest of body.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
