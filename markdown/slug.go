package markdown

import (
	"strings"
	"unicode"
)

// Slugify converts free text to a URL- and anchor-safe identifier: lower
// case, every non-alphanumeric rune mapped to a space, runs of whitespace
// collapsed, words joined with "-". It is idempotent and enforces no
// uniqueness; two titles that normalize the same collide.
func Slugify(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))
	return strings.Join(strings.Fields(mapped), "-")
}
