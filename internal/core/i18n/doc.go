// Package i18n holds the closed set of user-facing strings in French and
// English.
//
// Every key is a struct field of Messages, so a string missing from one
// locale is a compile error rather than a runtime fallback to the key.
//
// # Functions
//
//   - ParseLanguage: Parse a language code from a cookie, path or flag
//   - For: Return the Messages of a language (French for unknown values)
//
// # Usage
//
// The web shell resolves the visitor's language once per request and hands
// the Messages value to the page templates:
//
//	lang, ok := i18n.ParseLanguage(cookie.Value)
//	if !ok {
//	    lang = i18n.Default
//	}
//	msgs := i18n.For(lang)
//	fmt.Println(msgs.Form.Generate) // "Générer des slogans"
package i18n
