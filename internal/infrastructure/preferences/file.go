package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/w0uf/Juniper/internal/domain/entities"
	"github.com/w0uf/Juniper/internal/ports/output"
)

var _ output.PreferenceStore = (*FileStore)(nil)

// FileStore persiste les préférences dans un petit document JSON, le format
// historique de juniper_preferences.json.
type FileStore struct {
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the preference file. A missing file is the normal first-run
// state and yields the defaults with no error. A corrupt file also yields
// the defaults, with an error describing the corruption: a broken
// preference file must never block startup.
func (f *FileStore) Load() (entities.Preferences, error) {
	prefs := entities.DefaultPreferences()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("lecture des préférences: %w", err)
	}

	// Décodage par-dessus les valeurs par défaut : les champs absents du
	// fichier gardent leur valeur par défaut.
	if err := json.Unmarshal(data, &prefs); err != nil {
		return entities.DefaultPreferences(), fmt.Errorf("préférences illisibles (%s): %w", f.path, err)
	}
	return prefs, nil
}

// Save writes the preferences, replacing any previous content.
func (f *FileStore) Save(prefs entities.Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encodage des préférences: %w", err)
	}
	if err := os.WriteFile(f.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("écriture des préférences: %w", err)
	}
	return nil
}
