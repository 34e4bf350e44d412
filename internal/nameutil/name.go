// Package nameutil normalizes personal names.
package nameutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of each word in name and lower-cases
// the rest. A Caser keeps state, so one is built per call.
func Title(name string) string {
	return cases.Title(language.Und).String(name)
}
