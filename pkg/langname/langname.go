// Package langname renders language codes as display names, the way the
// language selector of the original UI labelled them ("fr" -> "Français").
package langname

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Name returns the self-described, title-cased name of a language code.
// Codes without a known name degrade to the upper-cased code.
func Name(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	name := display.Self.Name(tag)
	if name == "" {
		return strings.ToUpper(code)
	}
	return cases.Title(tag).String(name)
}
