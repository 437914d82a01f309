// Package verify inspecte une installation : catalogues de langues,
// documents d'aide et préférences. Les catalogues JSON sont obligatoires,
// le reste est optionnel.
package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Status d'un point de contrôle.
type Status int

const (
	OK       Status = iota // présent et exploitable
	Missing                // absent ou inexploitable, bloquant
	Optional               // absent mais optionnel
)

// Marker returns the console marker of the status.
func (s Status) Marker() string {
	switch s {
	case OK:
		return "✅"
	case Missing:
		return "❌"
	default:
		return "⚪"
	}
}

// Check est un point de contrôle individuel.
type Check struct {
	Label  string
	Status Status
	Detail string // cause d'échec éventuelle
}

// Report regroupe les points de contrôle d'une installation.
type Report struct {
	Dir     Check   // répertoire des catalogues
	Default Check   // catalogue de la langue par défaut
	Locales []Check // un par catalogue trouvé
	Help    []Check // documents d'aide, optionnels
	Prefs   Check   // fichier de préférences, optionnel
}

// Broken reports whether a mandatory check failed.
func (r *Report) Broken() bool {
	if r.Dir.Status == Missing || r.Default.Status == Missing {
		return true
	}
	for _, c := range r.Locales {
		if c.Status == Missing {
			return true
		}
	}
	return false
}

// Run inspects the installation. Nothing is loaded into the application:
// the checks read the files directly, so the diagnostic stays meaningful
// even when the store cannot start.
func Run(localesDir, defaultLang, prefsFile string) *Report {
	r := &Report{}

	info, err := os.Stat(localesDir)
	switch {
	case err != nil:
		r.Dir = Check{Label: localesDir + "/", Status: Missing, Detail: "absent"}
	case !info.IsDir():
		r.Dir = Check{Label: localesDir + "/", Status: Missing, Detail: "n'est pas un répertoire"}
	default:
		r.Dir = Check{Label: localesDir + "/", Status: OK}
	}

	codes := r.checkCatalogues(localesDir)

	r.Default = Check{Label: "catalogue " + defaultLang, Status: Missing, Detail: "aucun catalogue"}
	if codes[defaultLang] {
		r.Default = Check{Label: "catalogue " + defaultLang, Status: OK}
	}

	for _, code := range sortedCodes(codes) {
		name := "help_" + code + ".html"
		status := Optional
		if _, err := os.Stat(filepath.Join(localesDir, name)); err == nil {
			status = OK
		}
		r.Help = append(r.Help, Check{Label: name, Status: status})
	}

	r.Prefs = Check{Label: prefsFile, Status: Optional, Detail: "créé au premier lancement"}
	if _, err := os.Stat(prefsFile); err == nil {
		r.Prefs = Check{Label: prefsFile, Status: OK}
	}

	return r
}

// checkCatalogues parcourt les catalogues installés et retourne les codes
// des catalogues exploitables.
func (r *Report) checkCatalogues(localesDir string) map[string]bool {
	codes := map[string]bool{}

	entries, err := os.ReadDir(localesDir)
	if err != nil {
		return codes
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".json" && ext != ".toml" {
			continue
		}

		code := strings.TrimSuffix(name, ext)
		check := Check{Label: name, Status: OK}

		if _, err := language.Parse(code); err != nil {
			check = Check{Label: name, Status: Missing, Detail: "code de langue invalide"}
		} else if err := checkCatalogueFile(filepath.Join(localesDir, name), ext); err != nil {
			check = Check{Label: name, Status: Missing, Detail: err.Error()}
		} else {
			codes[code] = true
		}
		r.Locales = append(r.Locales, check)
	}

	return codes
}

func checkCatalogueFile(path, ext string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("illisible: %w", err)
	}

	var content map[string]any
	if ext == ".toml" {
		if err := toml.Unmarshal(data, &content); err != nil {
			return errors.New("TOML invalide")
		}
		return nil
	}
	if err := json.Unmarshal(data, &content); err != nil {
		return errors.New("JSON invalide")
	}
	return nil
}

func sortedCodes(codes map[string]bool) []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
