package export

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// DefaultStyle / Normalize Tests
// =============================================================================

func TestDefaultStyle_IsValid(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, FontPoppins, s.Font)
	assert.Equal(t, "#2A5CAA", s.Color)
	assert.Equal(t, 48, s.Size)
	assert.Equal(t, FormatPortrait, s.Format)
	assert.True(t, s.Validate().Ok())
}

func TestNormalize_FillsDefaults(t *testing.T) {
	s := StyleConfig{Size: 33, Font: " Georgia "}.Normalize()

	assert.Equal(t, FontGeorgia, s.Font)
	assert.Equal(t, 34, s.Size)
	assert.Equal(t, "#2A5CAA", s.Color)
	assert.Equal(t, "#FFFFFF", s.BackgroundColor)
	assert.Equal(t, AlignCenter, s.Alignment)
	assert.Equal(t, LogoTop, s.LogoPosition)
	assert.Equal(t, 80, s.LogoSize)
	assert.True(t, s.Validate().Ok())
}

func TestNormalize_RoundsOddSizeUp(t *testing.T) {
	for in, want := range map[int]int{16: 16, 17: 18, 47: 48, 95: 96, 96: 96} {
		assert.Equal(t, want, StyleConfig{Size: in}.Normalize().Size, "size %d", in)
	}
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StyleConfig)
		field  string
	}{
		{"unknown font", func(s *StyleConfig) { s.Font = "comic-sans" }, "font"},
		{"bad color", func(s *StyleConfig) { s.Color = "blue" }, "color"},
		{"size too small", func(s *StyleConfig) { s.Size = 14 }, "size"},
		{"size too large", func(s *StyleConfig) { s.Size = 98 }, "size"},
		{"odd size", func(s *StyleConfig) { s.Size = 47 }, "size"},
		{"bad format", func(s *StyleConfig) { s.Format = "square" }, "format"},
		{"bad background", func(s *StyleConfig) { s.BackgroundColor = "#12" }, "background_color"},
		{"bad alignment", func(s *StyleConfig) { s.Alignment = "justify" }, "alignment"},
		{"bad logo position", func(s *StyleConfig) { s.LogoPosition = "center" }, "logo_position"},
		{"logo too small", func(s *StyleConfig) { s.LogoSize = 29 }, "logo_size"},
		{"logo too large", func(s *StyleConfig) { s.LogoSize = 201 }, "logo_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			result := s.Validate()
			assert.False(t, result.Ok())
			assert.Equal(t, tt.field, result.Field)
			require.Error(t, result.Error())
			assert.Equal(t, tt.field+": "+result.Reason, result.Error().Error())
		})
	}
}

func TestFont_Serif(t *testing.T) {
	for _, f := range Fonts() {
		assert.Equal(t, f == FontGeorgia, f.Serif(), "font %s", f)
	}
}

func TestValidate_Boundaries(t *testing.T) {
	s := DefaultStyle()
	s.Size, s.LogoSize = MinSize, MinLogoSize
	assert.True(t, s.Validate().Ok())

	s.Size, s.LogoSize = MaxSize, MaxLogoSize
	assert.True(t, s.Validate().Ok())
	assert.NoError(t, s.Validate().Error())
}

// =============================================================================
// ParseHexColor Tests
// =============================================================================

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#2A5CAA")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x2a, G: 0x5c, B: 0xaa, A: 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	for _, bad := range []string{"", "2A5CAA", "#2A5CA", "#GGGGGG", "#12345678"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}
