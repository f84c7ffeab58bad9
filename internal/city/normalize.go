// Package city canonicalizes free-text city names for grouping.
package city

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	cityWord = regexp.MustCompile(`\bcity\b`)
	ofWord   = regexp.MustCompile(`\bof\b`)
)

var typoFixes = strings.NewReplacer("zambaonga", "zamboanga")

// Normalize lowercases raw, fixes known typos, drops the words "city" and
// "of", turns hyphens into spaces and capitalizes the first letter of each
// word. An empty result means the name carries no usable city.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = typoFixes.Replace(s)
	s = cityWord.ReplaceAllString(s, "")
	s = ofWord.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize uppercases only the first rune and leaves the rest as is.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
