package content

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	trailingPunctRe = regexp.MustCompile(`[.!?]+$`)
)

// NormalizeKorean canonicalizes a typed answer for comparison: trim,
// collapse internal whitespace, strip trailing sentence punctuation,
// lowercase (for any romanized text mixed in).
func NormalizeKorean(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = trailingPunctRe.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
