package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/artpar/sloganforge/internal/core/export"
)

func (r *Renderer) renderPNG(text string, style export.StyleConfig, logoData []byte) ([]byte, error) {
	logo, err := decodeLogo(logoData, r.config.MaxLogoBytes)
	if err != nil {
		return nil, err
	}

	bg, err := export.ParseHexColor(style.BackgroundColor)
	if err != nil {
		return nil, err
	}
	fg, err := export.ParseHexColor(style.Color)
	if err != nil {
		return nil, err
	}

	layout := export.PlanLayout(export.ImageMedia, style, logo != nil)
	canvas := image.NewRGBA(image.Rect(0, 0, int(layout.Page.W), int(layout.Page.H)))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if logo != nil {
		b := logo.Bounds()
		box := export.FitInside(float64(b.Dx()), float64(b.Dy()), layout.Logo)
		draw.CatmullRom.Scale(canvas, toRectangle(box), logo, b, draw.Over, nil)
	}

	parsed, err := parsedFont(style.Font)
	if err != nil {
		return nil, err
	}
	faces := newFaceCache(parsed)
	defer faces.close()

	var measureErr error
	measure := func(s string, size float64) float64 {
		face, err := faces.get(size)
		if err != nil {
			measureErr = err
			return 0
		}
		return fixedToFloat(font.MeasureString(face, s))
	}

	fitted, lines := layout.Fit(text, measure)
	if measureErr != nil {
		return nil, measureErr
	}

	face, err := faces.get(fitted.FontSize)
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	ascent, descent := fixedToFloat(metrics.Ascent), fixedToFloat(metrics.Descent)

	drawer := &font.Drawer{Dst: canvas, Src: image.NewUniform(fg), Face: face}
	for i, top := range fitted.LineTops(len(lines)) {
		x := fitted.LineX(measure(lines[i], fitted.FontSize))
		baseline := top + (fitted.LineHeight-ascent-descent)/2 + ascent
		drawer.Dot = fixed.P(int(math.Round(x)), int(math.Round(baseline)))
		drawer.DrawString(lines[i])
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func toRectangle(r export.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
