package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/artpar/sloganforge/internal/core/export"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestRenderer() *Renderer {
	return NewRenderer(DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, body []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	return img
}

func sameRGB(a color.Color, b color.RGBA) bool {
	r, g, bl, _ := a.RGBA()
	return uint8(r>>8) == b.R && uint8(g>>8) == b.G && uint8(bl>>8) == b.B
}

const testSlogan = "Acme: Disrupting Tech Forever, No Apologies"

// =============================================================================
// PNG Tests
// =============================================================================

func TestRender_PNGPortrait(t *testing.T) {
	r := newTestRenderer()

	art, err := r.Render(context.Background(), export.KindPNG, Input{Text: testSlogan, Style: export.DefaultStyle()})
	require.NoError(t, err)

	assert.Equal(t, "image/png", art.ContentType)
	assert.Equal(t, "slogan-acme-disrupting-tech-forever-no-apologies.png", art.Filename)

	img := decodePNG(t, art.Body)
	assert.Equal(t, 1080, img.Bounds().Dx())
	assert.Equal(t, 1350, img.Bounds().Dy())

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	assert.True(t, sameRGB(img.At(0, 0), white), "background fill")

	inked := 0
	for y := 0; y < img.Bounds().Dy(); y += 2 {
		for x := 0; x < img.Bounds().Dx(); x += 2 {
			if !sameRGB(img.At(x, y), white) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "text is drawn")
}

func TestRender_PNGLandscape(t *testing.T) {
	r := newTestRenderer()
	style := export.DefaultStyle()
	style.Format = export.FormatLandscape
	style.BackgroundColor = "#000"

	art, err := r.Render(context.Background(), export.KindPNG, Input{Text: testSlogan, Style: style})
	require.NoError(t, err)

	img := decodePNG(t, art.Body)
	assert.Equal(t, 1350, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
	assert.True(t, sameRGB(img.At(5, 5), color.RGBA{A: 0xff}))
}

func TestRender_PNGWithLogo(t *testing.T) {
	r := newTestRenderer()
	style := export.DefaultStyle()
	red := color.RGBA{R: 0xff, A: 0xff}

	art, err := r.Render(context.Background(), export.KindPNG, Input{
		Text:  testSlogan,
		Style: style,
		Logo:  solidPNG(t, 20, 20, red),
	})
	require.NoError(t, err)

	layout := export.PlanLayout(export.ImageMedia, style, true)
	cx := int(layout.Logo.X + layout.Logo.W/2)
	cy := int(layout.Logo.Y + layout.Logo.H/2)
	r8, g8, b8, _ := decodePNG(t, art.Body).At(cx, cy).RGBA()
	assert.Greater(t, r8>>8, uint32(0xf0), "logo drawn in its box")
	assert.Less(t, g8>>8, uint32(0x10))
	assert.Less(t, b8>>8, uint32(0x10))
}

// =============================================================================
// PDF and Text Tests
// =============================================================================

func TestRender_PDF(t *testing.T) {
	r := newTestRenderer()

	art, err := r.Render(context.Background(), export.KindPDF, Input{
		Text:  "Créatif et audacieux",
		Style: export.DefaultStyle(),
		Logo:  solidPNG(t, 40, 20, color.RGBA{B: 0xff, A: 0xff}),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", art.ContentType)
	assert.Equal(t, "slogan-creatif-et-audacieux.pdf", art.Filename)
	assert.True(t, bytes.HasPrefix(art.Body, []byte("%PDF")))
}

func TestRender_PDFLandscape(t *testing.T) {
	r := newTestRenderer()
	style := export.DefaultStyle()
	style.Format = export.FormatLandscape
	style.Alignment = export.AlignLeft

	art, err := r.Render(context.Background(), export.KindPDF, Input{Text: testSlogan, Style: style})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(art.Body, []byte("%PDF")))
	assert.Equal(t, ETag(art.Body), art.ETag)
}

func TestRender_Text(t *testing.T) {
	r := newTestRenderer()

	art, err := r.Render(context.Background(), export.KindText, Input{Text: "  Hello  "})
	require.NoError(t, err)

	assert.Equal(t, "Your Slogan: Hello\n\nGenerated by SloganForge AI", string(art.Body))
	assert.Equal(t, "text/plain; charset=utf-8", art.ContentType)
	assert.Equal(t, "slogan-hello.txt", art.Filename)
	assert.Equal(t, ETag(art.Body), art.ETag)
}

// =============================================================================
// Error Tests
// =============================================================================

func TestRender_Errors(t *testing.T) {
	r := NewRenderer(Config{MaxLogoBytes: 64}, nil)
	ctx := context.Background()

	_, err := r.Render(ctx, export.KindPNG, Input{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = r.Render(ctx, "gif", Input{Text: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = r.Render(ctx, export.KindPNG, Input{Text: "x", Style: export.StyleConfig{Size: 200}})
	assert.ErrorIs(t, err, ErrInvalidStyle)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid style: size: "), err.Error())

	_, err = r.Render(ctx, export.KindPNG, Input{Text: "x", Logo: []byte("not an image")})
	assert.ErrorIs(t, err, ErrInvalidLogo)

	_, err = r.Render(ctx, export.KindPDF, Input{Text: "x", Logo: bytes.Repeat([]byte{0}, 65)})
	assert.ErrorIs(t, err, ErrInvalidLogo)
}

func TestRender_CanceledContext(t *testing.T) {
	r := newTestRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, export.KindPNG, Input{Text: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFontFile(t *testing.T) {
	for _, f := range export.Fonts() {
		assert.Equal(t, f.Serif(), bytes.Equal(fontFile(f), goitalic.TTF), "font %s", f)

		parsed, err := parsedFont(f)
		require.NoError(t, err)
		assert.NotNil(t, parsed)
	}
	assert.Equal(t, goregular.TTF, fontFile("unknown"))
}

func TestETag(t *testing.T) {
	tag := ETag([]byte("abc"))
	assert.True(t, strings.HasPrefix(tag, `"`) && strings.HasSuffix(tag, `"`))
	assert.Len(t, tag, 64+2)
	assert.NotEqual(t, tag, ETag([]byte("abd")))
}
