package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/core/slogan"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// =============================================================================
// Templates
// =============================================================================

// Page names a content template under templates/.
type Page string

const (
	PageIndex     Page = "index"
	PageCustomize Page = "customize"
	PageLegal     Page = "legal"
	PageError     Page = "error"
)

var pages = map[Page]*template.Template{
	PageIndex:     mustParsePage(PageIndex),
	PageCustomize: mustParsePage(PageCustomize),
	PageLegal:     mustParsePage(PageLegal),
	PageError:     mustParsePage(PageError),
}

// mustParsePage pairs the layout with one content template. Every page gets
// its own set because all of them define "content".
func mustParsePage(p Page) *template.Template {
	return template.Must(template.New("layout.html").
		Option("missingkey=error").
		ParseFS(templateFS, "templates/layout.html", "templates/"+string(p)+".html"))
}

// component executes a page template as a templ component.
func component(p Page, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages[p].ExecuteTemplate(w, "layout", data)
	})
}

// =============================================================================
// View Models
// =============================================================================

// Layout is embedded by every page view.
type Layout struct {
	T         i18n.Messages
	Lang      i18n.Language
	Title     string
	Languages []LanguageLink
	Year      int
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Code   i18n.Language
	Label  string
	Active bool
}

// Option is one <option> of a select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Tab is one length filter link.
type Tab struct {
	Value  slogan.Length
	Label  string
	Active bool
}

// Feature is one card of the features section.
type Feature struct {
	Title       string
	Description string
}

// SloganView is a slogan as listed on the landing page.
type SloganView struct {
	ID     string
	Key    string
	Text   string
	Rating int
}

// FormView holds the generator form values and its validation message.
type FormView struct {
	Company  string
	Industry string
	Keywords string
	Tone     string
	Field    string
	Error    string
}

// IndexView is the landing page.
type IndexView struct {
	Layout
	Form     FormView
	Tones    []Option
	HasBatch bool
	Lengths  []Tab
	Slogans  []SloganView
	Stars    []int
	Features []Feature
}

// CustomizeView is the customization page.
type CustomizeView struct {
	Layout
	Slogan      SloganView
	Style       export.StyleConfig
	Error       string
	PreviewURL  string
	Fonts       []Option
	Formats     []Option
	Alignments  []Option
	Positions   []Option
	MinSize     int
	MaxSize     int
	SizeStep    int
	MinLogoSize int
	MaxLogoSize int
}

// LegalView is the privacy policy or the terms of service.
type LegalView struct {
	Layout
	Page i18n.LegalPage
}

// ErrorView replaces the page content with a message.
type ErrorView struct {
	Layout
	Status  int
	Message string
}

// =============================================================================
// Builders
// =============================================================================

func newLayout(m i18n.Messages, title string, now time.Time) Layout {
	langs := make([]LanguageLink, 0, len(i18n.Languages()))
	for _, l := range i18n.Languages() {
		langs = append(langs, LanguageLink{Code: l, Label: l.Label(), Active: l == m.Lang})
	}
	return Layout{
		T:         m,
		Lang:      m.Lang,
		Title:     title,
		Languages: langs,
		Year:      now.Year(),
	}
}

func toneOptions(m i18n.Messages, selected string) []Option {
	labels := map[slogan.Tone]string{
		slogan.ToneProfessional: m.Form.ToneProfessional,
		slogan.ToneCreative:     m.Form.ToneCreative,
		slogan.ToneFriendly:     m.Form.ToneFriendly,
		slogan.ToneBold:         m.Form.ToneBold,
	}
	if selected == "" {
		selected = string(slogan.DefaultTone)
	}
	opts := make([]Option, 0, len(labels))
	for _, t := range slogan.Tones() {
		opts = append(opts, Option{Value: string(t), Label: labels[t], Selected: string(t) == selected})
	}
	return opts
}

func lengthTabs(m i18n.Messages, active slogan.Length) []Tab {
	labels := map[slogan.Length]string{
		slogan.LengthAll:    m.Results.LengthAll,
		slogan.LengthShort:  m.Results.LengthShort,
		slogan.LengthMedium: m.Results.LengthMedium,
		slogan.LengthLong:   m.Results.LengthLong,
	}
	tabs := make([]Tab, 0, len(labels))
	for _, l := range slogan.Lengths() {
		tabs = append(tabs, Tab{Value: l, Label: labels[l], Active: l == active})
	}
	return tabs
}

func features(m i18n.Messages) []Feature {
	return []Feature{
		{Title: m.Features.AI.Title, Description: m.Features.AI.Description},
		{Title: m.Features.Fast.Title, Description: m.Features.Fast.Description},
		{Title: m.Features.Custom.Title, Description: m.Features.Custom.Description},
		{Title: m.Features.Multilingual.Title, Description: m.Features.Multilingual.Description},
	}
}

func styleOptions(m i18n.Messages, s export.StyleConfig) (fonts, formats, alignments, positions []Option) {
	for _, f := range export.Fonts() {
		fonts = append(fonts, Option{Value: string(f), Label: f.Label(), Selected: f == s.Font})
	}
	formats = []Option{
		{Value: string(export.FormatPortrait), Label: m.Export.Portrait, Selected: s.Format == export.FormatPortrait},
		{Value: string(export.FormatLandscape), Label: m.Export.Landscape, Selected: s.Format == export.FormatLandscape},
	}
	alignLabels := map[export.Alignment]string{
		export.AlignLeft:   m.Export.AlignLeft,
		export.AlignCenter: m.Export.AlignCenter,
		export.AlignRight:  m.Export.AlignRight,
	}
	for _, a := range export.Alignments() {
		alignments = append(alignments, Option{Value: string(a), Label: alignLabels[a], Selected: a == s.Alignment})
	}
	posLabels := map[export.LogoPosition]string{
		export.LogoTop:    m.Export.PositionTop,
		export.LogoBottom: m.Export.PositionBottom,
		export.LogoLeft:   m.Export.PositionLeft,
		export.LogoRight:  m.Export.PositionRight,
	}
	for _, p := range export.LogoPositions() {
		positions = append(positions, Option{Value: string(p), Label: posLabels[p], Selected: p == s.LogoPosition})
	}
	return fonts, formats, alignments, positions
}

func newCustomizeView(l Layout, s SloganView, style export.StyleConfig, errMsg string) CustomizeView {
	fonts, formats, alignments, positions := styleOptions(l.T, style)
	return CustomizeView{
		Layout:      l,
		Slogan:      s,
		Style:       style,
		Error:       errMsg,
		PreviewURL:  "/slogans/" + s.Key + "/preview.png?" + styleQuery(style).Encode(),
		Fonts:       fonts,
		Formats:     formats,
		Alignments:  alignments,
		Positions:   positions,
		MinSize:     export.MinSize,
		MaxSize:     export.MaxSize,
		SizeStep:    export.SizeStep,
		MinLogoSize: export.MinLogoSize,
		MaxLogoSize: export.MaxLogoSize,
	}
}

func stars() []int {
	out := make([]int, 5)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
