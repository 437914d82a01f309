package output

// TranslationStore exposes the locale resolution contract for user-facing
// texts. Implementations map a (language code, key) pair to the installed
// translation, falling back to the default language when the requested one
// cannot serve the key.
type TranslationStore interface {
	// Resolve renders the text identified by key for the given language.
	//
	// Served by the requested language: (text, nil).
	// Served by the default language:   (text, MissingTranslationError).
	// Served by no installed language:  ("", MissingTranslationError).
	Resolve(lang, key string) (string, error)

	// T renders key for lang and never fails: keys missing everywhere
	// degrade to the key literal.
	T(lang, key string) string

	// Languages lists the installed language codes, sorted.
	Languages() []string

	// Has reports whether a locale is installed for code.
	Has(code string) bool

	// Reload discards every loaded catalogue and rescans the backing
	// resources. Catalogues removed on disk disappear from the store.
	Reload() error
}
