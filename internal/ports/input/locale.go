package input

import "github.com/w0uf/Juniper/internal/domain/entities"

// LocaleUseCase drives the active language of the application.
type LocaleUseCase interface {
	// Current returns the active language code.
	Current() string

	// SetLanguage switches the active language. Unknown or unloadable
	// codes leave the current language untouched and return an error.
	SetLanguage(code string) error

	// Resolve renders key in the active language, with the store's
	// default-language fallback semantics.
	Resolve(key string) (string, error)

	// T renders key in the active language and never fails.
	T(key string) string

	// Languages lists the installed languages with their display names.
	Languages() []entities.Language
}
