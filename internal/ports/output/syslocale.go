package output

// SystemLocale exposes the languages preferred by the host environment
// (LANG/LC_* on Unix, registry on Windows), most preferred first.
// An empty slice means the preference could not be determined.
type SystemLocale interface {
	Locales() []string
}
