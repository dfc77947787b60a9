package slogan

import "regexp"

// =============================================================================
// Placeholder Substitution
// =============================================================================

// placeholderRegex matches {name} tokens made of ASCII letters.
var placeholderRegex = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// Values holds the replacement for each placeholder.
type Values struct {
	Company          string
	Industry         string
	Keyword          string
	CombinedKeywords string
}

func (v Values) lookup(name string) (string, bool) {
	switch name {
	case "company":
		return v.Company, true
	case "industry":
		return v.Industry, true
	case "keyword":
		return v.Keyword, true
	case "combinedKeywords":
		return v.CombinedKeywords, true
	}
	return "", false
}

// Substitute replaces every known placeholder in template with its value.
//
// Behavior:
//   - {company}, {industry}, {keyword}, {combinedKeywords} are replaced everywhere
//   - Replacement is a single pass, so values are never expanded again
//   - Unknown tokens such as {slogan} are left unchanged
//
// Examples:
//
//	Substitute("{company} loves {industry}", Values{Company: "Acme", Industry: "Tech"})
//	// Returns: "Acme loves Tech"
//
//	Substitute("{company}", Values{Company: "{industry}", Industry: "Tech"})
//	// Returns: "{industry}"
//
//	Substitute("{slogan}", Values{})
//	// Returns: "{slogan}"
func Substitute(template string, values Values) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := values.lookup(name); ok {
			return val
		}
		return match
	})
}
