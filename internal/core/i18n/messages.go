package i18n

// =============================================================================
// Message Groups
// =============================================================================

// Messages is every translatable string of the site.
type Messages struct {
	Lang     Language
	Site     SiteMessages
	Nav      NavMessages
	Hero     HeroMessages
	Form     FormMessages
	Results  ResultsMessages
	Export   ExportMessages
	Features FeaturesMessages
	Footer   FooterMessages
	Errors   ErrorMessages
	Privacy  LegalPage
	Terms    LegalPage
}

type SiteMessages struct {
	Title string
}

type NavMessages struct {
	Home     string
	Generate string
	Language string
}

type HeroMessages struct {
	Title       string
	Subtitle    string
	Description string
	CTA         string
	Examples    string
}

type FormMessages struct {
	Title               string
	Company             string
	CompanyPlaceholder  string
	Industry            string
	IndustryPlaceholder string
	Keywords            string
	KeywordsPlaceholder string
	Tone                string
	ToneProfessional    string
	ToneCreative        string
	ToneFriendly        string
	ToneBold            string
	Generate            string
	Generating          string
}

type ResultsMessages struct {
	Title        string
	Refine       string
	LengthAll    string
	LengthShort  string
	LengthMedium string
	LengthLong   string
	Rate         string
	Copy         string
	Copied       string
	Customize    string
	Download     string
	Empty        string
}

// ExportMessages labels the customization page.
type ExportMessages struct {
	Title          string
	Font           string
	Color          string
	Size           string
	Logo           string
	LogoUpload     string
	LogoPosition   string
	LogoSize       string
	Background     string
	Alignment      string
	AlignLeft      string
	AlignCenter    string
	AlignRight     string
	PositionTop    string
	PositionBottom string
	PositionLeft   string
	PositionRight  string
	Preview        string
	Refresh        string
	Download       string
	DownloadPNG    string
	DownloadText   string
	Format         string
	Portrait       string
	Landscape      string
	Back           string
}

type FeatureMessages struct {
	Title       string
	Description string
}

type FeaturesMessages struct {
	Title        string
	AI           FeatureMessages
	Fast         FeatureMessages
	Custom       FeatureMessages
	Multilingual FeatureMessages
}

type FooterMessages struct {
	Copyright string
	Privacy   string
	Terms     string
	Contact   string
}

// ErrorMessages are shown in place of the page content or next to the form.
type ErrorMessages struct {
	Company         string
	Industry        string
	Keywords        string
	Rating          string
	Style           string
	Logo            string
	NotFound        string
	TooManyRequests string
	Internal        string
}

// =============================================================================
// Legal Pages
// =============================================================================

// LegalPage is the body of the privacy policy or the terms of service.
type LegalPage struct {
	Title    string
	Sections []LegalSection
	Updated  string
}

// LegalSection is one headed block of a legal page. Items is optional.
type LegalSection struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

// FieldError returns the localized message for a validation failure on the
// named request field, falling back to the validator's own message.
func (m Messages) FieldError(field, fallback string) string {
	switch field {
	case "company_name":
		return m.Errors.Company
	case "industry":
		return m.Errors.Industry
	case "keywords":
		return m.Errors.Keywords
	case "rating":
		return m.Errors.Rating
	default:
		return fallback
	}
}
