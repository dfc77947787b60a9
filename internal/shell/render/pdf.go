package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/artpar/sloganforge/internal/core/export"
)

const (
	pointsPerMM = 72 / 25.4

	// baselineRatio places the baseline within a line box, as a fraction of
	// the font size below the box's vertical centre.
	baselineRatio = 0.35

	logoImageName = "logo"
)

// creationDate is fixed so that identical inputs give identical bytes.
var creationDate = time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)

func (r *Renderer) renderPDF(text string, style export.StyleConfig, logoData []byte) ([]byte, error) {
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

	orientation := "P"
	if style.Format == export.FormatLandscape {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(creationDate)
	pdf.SetModificationDate(creationDate)
	pdf.SetCreator("SloganForge", true)
	pdf.SetTitle(text, true)

	family := "go-" + string(style.Font)
	pdf.AddUTF8FontFromBytes(family, "", fontFile(style.Font))
	pdf.AddPage()

	layout := export.PlanLayout(export.A4Media, style, logo != nil)

	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.Rect(0, 0, layout.Page.W, layout.Page.H, "F")

	if logo != nil {
		data, err := encodePNG(logo)
		if err != nil {
			return nil, err
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(logoImageName, opts, bytes.NewReader(data))

		b := logo.Bounds()
		box := export.FitInside(float64(b.Dx()), float64(b.Dy()), layout.Logo)
		pdf.ImageOptions(logoImageName, box.X, box.Y, box.W, box.H, false, opts, 0, "")
	}

	measure := func(s string, size float64) float64 {
		pdf.SetFont(family, "", size*pointsPerMM)
		return pdf.GetStringWidth(s)
	}
	fitted, lines := layout.Fit(text, measure)

	pdf.SetFont(family, "", fitted.FontSize*pointsPerMM)
	pdf.SetTextColor(int(fg.R), int(fg.G), int(fg.B))
	for i, top := range fitted.LineTops(len(lines)) {
		x := fitted.LineX(pdf.GetStringWidth(lines[i]))
		baseline := top + fitted.LineHeight/2 + fitted.FontSize*baselineRatio
		pdf.Text(x, baseline, lines[i])
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
