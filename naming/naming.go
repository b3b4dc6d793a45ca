// Package naming bridges the two attribute naming conventions in play:
// snake_case on the caller side and camelCase on the wire. Both conversions
// are total and idempotent on input already in the target convention.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.Und, cases.NoLower)

// SnakeToCamel converts company_name to companyName. Input without
// underscores passes through unchanged. A leading underscore run is the
// private marker, not a word separator, and survives the conversion;
// empty words produced by doubled or trailing underscores are dropped.
func SnakeToCamel(s string) string {
	rest := strings.TrimLeft(s, "_")
	marker := s[:len(s)-len(rest)]
	if !strings.Contains(rest, "_") {
		return marker + rest
	}

	var b strings.Builder
	b.WriteString(marker)
	first := true
	for _, word := range strings.Split(rest, "_") {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(word)
			first = false
			continue
		}
		b.WriteString(titler.String(word))
	}
	return b.String()
}

// CamelToSnake converts companyName to company_name. Each upper-case rune
// starts a new word and is lowered, so input already in snake_case passes
// through unchanged.
func CamelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
