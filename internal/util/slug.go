package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameBreaks matches runs of characters that cannot appear in a palette name.
var nameBreaks = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify turns free text into a palette name: "My Brand (v2)" -> "my-brand-v2".
// Accents are stripped, underscores survive so names like sns_deep keep
// their shape, and every other run of punctuation or space becomes one
// hyphen. The result never starts or ends with a separator.
func Slugify(s string) string {
	s = nameBreaks.ReplaceAllString(strings.ToLower(stripMarks(s)), "-")
	return strings.Trim(s, "-_")
}

// stripMarks decomposes s and drops the nonspacing marks, so "é" becomes "e".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
