package i18n

import "strings"

// Language is a supported UI language code.
type Language string

const (
	French  Language = "fr"
	English Language = "en"
)

// Default is the language shown to first-time visitors.
const Default = French

// Languages lists the supported languages in switcher order.
func Languages() []Language {
	return []Language{French, English}
}

// ParseLanguage parses a language code such as "fr", "EN" or "en-US".
// The boolean is false when the code is not supported.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if base, _, found := strings.Cut(s, "-"); found {
		s = base
	}
	switch l := Language(s); l {
	case French, English:
		return l, true
	default:
		return "", false
	}
}

// Label returns the language name written in that language.
func (l Language) Label() string {
	switch l {
	case English:
		return "English"
	default:
		return "Français"
	}
}

// For returns the strings of the given language, French when unsupported.
func For(l Language) Messages {
	if l == English {
		return english
	}
	return french
}
