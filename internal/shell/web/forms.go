package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/artpar/sloganforge/internal/core/export"
)

// Form field names shared by the customization form, the preview URL and
// the export handler.
const (
	fieldFont         = "font"
	fieldColor        = "color"
	fieldSize         = "size"
	fieldFormat       = "format"
	fieldBackground   = "background_color"
	fieldAlignment    = "alignment"
	fieldLogoPosition = "logo_position"
	fieldLogoSize     = "logo_size"
	fieldLogo         = "logo"
	fieldKind         = "kind"
)

// styleFromForm reads the style fields of values on top of DefaultStyle.
// Missing fields keep their defaults; the result is normalized but not
// validated.
func styleFromForm(values url.Values) (export.StyleConfig, error) {
	s := export.DefaultStyle()
	if v := values.Get(fieldFont); v != "" {
		s.Font = export.Font(v)
	}
	if v := values.Get(fieldColor); v != "" {
		s.Color = v
	}
	if v := values.Get(fieldFormat); v != "" {
		s.Format = export.Format(v)
	}
	if v := values.Get(fieldBackground); v != "" {
		s.BackgroundColor = v
	}
	if v := values.Get(fieldAlignment); v != "" {
		s.Alignment = export.Alignment(v)
	}
	if v := values.Get(fieldLogoPosition); v != "" {
		s.LogoPosition = export.LogoPosition(v)
	}

	var err error
	if s.Size, err = intField(values, fieldSize, s.Size); err != nil {
		return s, err
	}
	if s.LogoSize, err = intField(values, fieldLogoSize, s.LogoSize); err != nil {
		return s, err
	}
	return s.Normalize(), nil
}

func intField(values url.Values, name string, def int) (int, error) {
	v := strings.TrimSpace(values.Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s must be a number", name)
	}
	return n, nil
}

// styleQuery encodes s as the query string of a preview URL.
func styleQuery(s export.StyleConfig) url.Values {
	return url.Values{
		fieldFont:         {string(s.Font)},
		fieldColor:        {s.Color},
		fieldSize:         {strconv.Itoa(s.Size)},
		fieldFormat:       {string(s.Format)},
		fieldBackground:   {s.BackgroundColor},
		fieldAlignment:    {string(s.Alignment)},
		fieldLogoPosition: {string(s.LogoPosition)},
		fieldLogoSize:     {strconv.Itoa(s.LogoSize)},
	}
}
