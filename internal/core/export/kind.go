package export

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/artpar/sloganforge/internal/core/domain"
)

// Kind is the artifact format of an export.
type Kind string

const (
	KindPNG  Kind = "png"
	KindPDF  Kind = "pdf"
	KindText Kind = "txt"
)

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("unknown export kind")

// Kinds lists the supported export formats.
func Kinds() []Kind {
	return []Kind{KindPNG, KindPDF, KindText}
}

// ParseKind parses an export format. The empty string means PDF.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindPDF, nil
	case KindPNG, KindPDF, KindText:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ContentType returns the MIME type of the artifact.
func (k Kind) ContentType() string {
	switch k {
	case KindPNG:
		return "image/png"
	case KindPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// maxSlugLength bounds the slogan part of download filenames.
const maxSlugLength = 48

// Filename returns the download name for a slogan artifact.
//
//	Filename("Acme: Bold Ideas!", KindPNG) // returns "slogan-acme-bold-ideas.png"
//	Filename("!!!", KindPDF)               // returns "slogan.pdf"
func Filename(text string, kind Kind) string {
	slug := domain.Slugify(text)
	if utf8.RuneCountInString(slug) > maxSlugLength {
		slug = strings.TrimRight(string([]rune(slug)[:maxSlugLength]), "-")
	}
	if slug == "" {
		return "slogan." + string(kind)
	}
	return "slogan-" + slug + "." + string(kind)
}

// PlainText returns the body of the plain-text artifact.
func PlainText(text string) string {
	return fmt.Sprintf("Your Slogan: %s\n\nGenerated by SloganForge AI", text)
}
