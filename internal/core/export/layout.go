package export

import (
	"math"
	"strings"
)

// =============================================================================
// Geometry Types
// =============================================================================

// Size is a width and height in page units.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Media describes a render target: its portrait page size and how many page
// units one CSS pixel of StyleConfig occupies.
type Media struct {
	Portrait Size
	Scale    float64
}

var (
	// ImageMedia is a 1080x1350 pixel canvas drawn at 2x.
	ImageMedia = Media{Portrait: Size{W: 1080, H: 1350}, Scale: 2}

	// A4Media is an A4 page in millimetres, one CSS pixel being 1/96 inch.
	A4Media = Media{Portrait: Size{W: 210, H: 297}, Scale: 25.4 / 96}
)

// Page returns the page size for the given orientation.
func (m Media) Page(f Format) Size {
	if f == FormatLandscape {
		return Size{W: m.Portrait.H, H: m.Portrait.W}
	}
	return m.Portrait
}

// =============================================================================
// Layout
// =============================================================================

const (
	marginRatio = 0.08
	lineSpacing = 1.25
	shrinkStep  = 0.9
)

// Layout is the resolved placement of the logo and text on a page.
type Layout struct {
	Page       Size
	Content    Rect
	Text       Rect
	Logo       Rect
	HasLogo    bool
	Alignment  Alignment
	FontSize   float64
	LineHeight float64
}

// PlanLayout places the logo and the text box on the page for the style.
// The logo never takes more than half of the shorter content side.
func PlanLayout(m Media, s StyleConfig, hasLogo bool) Layout {
	page := m.Page(s.Format)
	margin := marginRatio * math.Min(page.W, page.H)
	gap := margin / 2
	content := Rect{X: margin, Y: margin, W: page.W - 2*margin, H: page.H - 2*margin}
	fontSize := float64(s.Size) * m.Scale

	l := Layout{
		Page:       page,
		Content:    content,
		Text:       content,
		Alignment:  s.Alignment,
		FontSize:   fontSize,
		LineHeight: fontSize * lineSpacing,
	}
	if !hasLogo {
		return l
	}

	side := math.Min(float64(s.LogoSize)*m.Scale, math.Min(content.W, content.H)/2)
	l.HasLogo = true

	switch s.LogoPosition {
	case LogoBottom:
		l.Logo = Rect{X: alignX(content, side, s.Alignment), Y: content.Y + content.H - side, W: side, H: side}
		l.Text = Rect{X: content.X, Y: content.Y, W: content.W, H: content.H - side - gap}
	case LogoLeft:
		l.Logo = Rect{X: content.X, Y: content.Y + (content.H-side)/2, W: side, H: side}
		l.Text = Rect{X: content.X + side + gap, Y: content.Y, W: content.W - side - gap, H: content.H}
	case LogoRight:
		l.Logo = Rect{X: content.X + content.W - side, Y: content.Y + (content.H-side)/2, W: side, H: side}
		l.Text = Rect{X: content.X, Y: content.Y, W: content.W - side - gap, H: content.H}
	default:
		l.Logo = Rect{X: alignX(content, side, s.Alignment), Y: content.Y, W: side, H: side}
		l.Text = Rect{X: content.X, Y: content.Y + side + gap, W: content.W, H: content.H - side - gap}
	}
	return l
}

func alignX(box Rect, width float64, a Alignment) float64 {
	switch a {
	case AlignLeft:
		return box.X
	case AlignRight:
		return box.X + box.W - width
	default:
		return box.X + (box.W-width)/2
	}
}

// FitInside scales a w x h image to fit box, preserving its aspect ratio,
// and centres it.
func FitInside(w, h float64, box Rect) Rect {
	if w <= 0 || h <= 0 {
		return box
	}
	scale := math.Min(box.W/w, box.H/h)
	fw, fh := w*scale, h*scale
	return Rect{X: box.X + (box.W-fw)/2, Y: box.Y + (box.H-fh)/2, W: fw, H: fh}
}

// LineX returns the left edge of a line of the given width.
func (l Layout) LineX(width float64) float64 {
	return alignX(l.Text, width, l.Alignment)
}

// LineTops returns the top edge of each of n lines, centred vertically in the
// text box. Text that overflows starts at the top of the box.
func (l Layout) LineTops(n int) []float64 {
	start := l.Text.Y + (l.Text.H-float64(n)*l.LineHeight)/2
	if start < l.Text.Y {
		start = l.Text.Y
	}
	tops := make([]float64, n)
	for i := range tops {
		tops[i] = start + float64(i)*l.LineHeight
	}
	return tops
}

// Fit wraps text into the text box, shrinking the font until the lines fit
// vertically or the font reaches a quarter of its requested size.
// measure returns the width of s at the given font size in page units.
func (l Layout) Fit(text string, measure func(s string, fontSize float64) float64) (Layout, []string) {
	minSize := l.FontSize / 4
	for {
		size := l.FontSize
		lines := WrapText(text, l.Text.W, func(s string) float64 { return measure(s, size) })
		if float64(len(lines))*l.LineHeight <= l.Text.H || size*shrinkStep < minSize {
			return l, lines
		}
		l.FontSize = size * shrinkStep
		l.LineHeight = l.FontSize * lineSpacing
	}
}

// =============================================================================
// Text Wrapping
// =============================================================================

// WrapText breaks text into lines no wider than maxWidth, splitting on
// whitespace. A word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
