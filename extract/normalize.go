package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics ("Crédito" -> "credito").
// Used for token comparisons in derived-field classification. The
// transformer chain is stateful, so a fresh one is built per call.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// ContainsToken reports whether haystack contains token under accent- and
// case-insensitive comparison.
func ContainsToken(haystack, token string) bool {
	return strings.Contains(Fold(haystack), Fold(token))
}

// EqualsToken reports whether two strings are equal under accent- and
// case-insensitive comparison, ignoring surrounding whitespace.
func EqualsToken(a, b string) bool {
	return Fold(strings.TrimSpace(a)) == Fold(strings.TrimSpace(b))
}
