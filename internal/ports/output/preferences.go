package output

import "github.com/w0uf/Juniper/internal/domain/entities"

// PreferenceStore persiste les réglages utilisateur entre deux sessions.
type PreferenceStore interface {
	// Load returns the stored preferences, or the defaults when nothing
	// usable is stored. The error reports a corrupt store; callers keep
	// the returned defaults either way.
	Load() (entities.Preferences, error)

	// Save writes the preferences, replacing any previous content.
	Save(prefs entities.Preferences) error
}
