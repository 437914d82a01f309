package syslocale

import (
	"github.com/jeandeaual/go-locale"

	"github.com/w0uf/Juniper/internal/ports/output"
)

// Ensure Provider implements the output.SystemLocale port.
var _ output.SystemLocale = Provider{}

// Provider lit les langues préférées de l'environnement hôte (LANG/LC_* sous
// Unix, registre sous Windows), de la plus à la moins prioritaire.
type Provider struct{}

// Locales returns the host's preferred locales. Detection failures yield an
// empty slice: not knowing the system language is a normal state.
func (Provider) Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		return nil
	}
	return locales
}
