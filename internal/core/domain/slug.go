package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// Slug Generation
// =============================================================================

// foldAccents strips combining marks so that "é" becomes "e".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a name to a URL-safe slug.
//
// The transformation rules are:
//   - Accents are removed, then letters are lowercased
//   - ASCII letters and digits are kept
//   - Runs of spaces, hyphens and underscores become a single hyphen
//   - All other characters are removed
//   - Leading and trailing hyphens are trimmed
//
// This is a pure function with no side effects.
//
// Example:
//
//	Slugify("Hello World")       // returns "hello-world"
//	Slugify("My App 2.0!")       // returns "my-app-20"
//	Slugify("Créatif - Audace")  // returns "creatif-audace"
func Slugify(name string) string {
	folded, _, err := transform.String(foldAccents, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '\t' || r == '\n':
			pendingHyphen = true
		}
		// All other characters are dropped
	}
	return b.String()
}
