package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/artpar/sloganforge/internal/core/export"
)

// fontFile picks the closest Go font face for an offered font. The web
// families are not bundled, so every artifact uses the Go fonts. Serif
// families get the italic face.
func fontFile(f export.Font) []byte {
	switch {
	case f.Serif():
		return goitalic.TTF
	case f == export.FontPoppins:
		return gobold.TTF
	case f == export.FontInter, f == export.FontVerdana:
		return gomedium.TTF
	}
	return goregular.TTF
}

var (
	parseOnce   sync.Once
	parsedFonts map[export.Font]*opentype.Font
	parseErr    error
)

// parsedFont returns the parsed face for f. Parsing happens once per process.
func parsedFont(f export.Font) (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsedFonts = make(map[export.Font]*opentype.Font, len(export.Fonts()))
		for _, name := range export.Fonts() {
			parsed, err := opentype.Parse(fontFile(name))
			if err != nil {
				parseErr = fmt.Errorf("failed to parse font %s: %w", name, err)
				return
			}
			parsedFonts[name] = parsed
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if parsed, ok := parsedFonts[f]; ok {
		return parsed, nil
	}
	return parsedFonts[export.FontArial], nil
}

// faceCache holds one face per size for a single render.
type faceCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func newFaceCache(f *opentype.Font) *faceCache {
	return &faceCache{font: f, faces: make(map[float64]font.Face)}
}

func (c *faceCache) get(size float64) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %.1f: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

func (c *faceCache) close() {
	for _, face := range c.faces {
		face.Close()
	}
}
