package emailutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Plausible reports whether email looks enough like an address to keep.
// Only the presence of '@' is checked; header rows such as "Email" fail it.
func Plausible(email string) bool {
	return strings.Contains(email, "@")
}

// Lower lowercases an email address for output using the full Unicode
// mapping (final sigma, İ to i + combining dot). Surrounding whitespace is
// left untouched. A Caser keeps state, so one is built per call.
func Lower(email string) string {
	return cases.Lower(language.Und).String(email)
}
