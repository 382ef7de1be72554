// Package names holds small helpers for person names and usernames.
package names

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// Capitalize upper-cases the first letter of every word and leaves the rest
// of the word untouched ("mary-ann o'neil" -> "Mary-Ann O'Neil").
func Capitalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	prevWord := false
	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
		prevWord = isWord
	}
	return sb.String()
}

// SuggestUsername builds a lowercase ASCII "first.last" username.
// Either part may be empty.
func SuggestUsername(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if s := slug.Make(p); s != "" {
			parts = append(parts, strings.ReplaceAll(s, "-", ""))
		}
	}
	return strings.Join(parts, ".")
}
