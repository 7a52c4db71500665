package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a person's name and strips titles and
// whitespace so names from different pages can be compared. "Rep. John
// A. Smith" and "John A. Smith " normalize to the same string.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range []string{"Rep. ", "Sen. ", "Representative ", "Senator "} {
		name = strings.TrimPrefix(name, prefix)
	}
	name = strings.ToLower(name)
	return whitespaceRegex.ReplaceAllString(name, " ")
}

// NormalizeMotion uppercases a parliamentary motion and collapses its
// whitespace for case-insensitive exact matching against the
// configured countable motion set.
func NormalizeMotion(motion string) string {
	motion = strings.ToUpper(strings.TrimSpace(motion))
	return whitespaceRegex.ReplaceAllString(motion, " ")
}
