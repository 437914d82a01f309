package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/w0uf/Juniper/internal/domain"
	"github.com/w0uf/Juniper/internal/ports/output"
)

// Catalogues de secours embarqués, servis lorsque le répertoire des langues
// est vide ou inexploitable. Ils couvrent le strict minimum pour démarrer.
//
//go:embed locales/*.json
var fallbackFS embed.FS

// Ensure Store implements the output.TranslationStore port.
var _ output.TranslationStore = (*Store)(nil)

// Store resolves (language, key) pairs against the locale files found in a
// directory: one flat <code>.json or <code>.toml catalogue per language.
//
// Store is not safe for concurrent use; the application drives it from a
// single goroutine.
type Store struct {
	dir             string
	defaultLanguage language.Tag

	bundle *i18n.Bundle
	tags   map[string]language.Tag // installed code -> parsed tag
	codes  []string                // installed codes, sorted
}

// New builds a Store over the catalogues installed in dir, using
// defaultLocale (e.g. "fr") as the fallback language.
//
// New always returns a usable Store: when nothing in dir loads, the store
// serves the embedded fallback catalogues and the error reports what went
// wrong. Partial failures (one malformed file among valid ones) also come
// back as an error while the valid catalogues are served.
func New(dir, defaultLocale string) (*Store, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.French
	}

	s := &Store{
		dir:             dir,
		defaultLanguage: tag,
	}
	return s, s.Reload()
}

// Reload rebuilds the store from the backing directory. The previous
// catalogues are discarded, not merged: a language removed from disk
// disappears from the store.
func (s *Store) Reload() error {
	bundle := i18n.NewBundle(s.defaultLanguage)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	tags := map[string]language.Tag{}
	var errs []error

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		errs = append(errs, &domain.LocaleLoadError{Path: s.dir, Err: err})
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
		path := filepath.Join(s.dir, name)

		tag, err := language.Parse(code)
		if err != nil {
			errs = append(errs, &domain.LocaleLoadError{Code: code, Path: path, Err: err})
			continue
		}
		if _, dup := tags[code]; dup {
			errs = append(errs, &domain.LocaleLoadError{Code: code, Path: path,
				Err: errors.New("langue déjà installée")})
			continue
		}
		if _, err := bundle.LoadMessageFile(path); err != nil {
			errs = append(errs, &domain.LocaleLoadError{Code: code, Path: path, Err: err})
			continue
		}
		tags[code] = tag
	}

	if len(tags) == 0 {
		// Rien d'exploitable sur disque : on sert les textes de secours
		// embarqués, comme le faisait l'application d'origine.
		for _, file := range []string{"locales/fr.json", "locales/en.json"} {
			if _, err := bundle.LoadMessageFileFS(fallbackFS, file); err != nil {
				return fmt.Errorf("catalogue embarqué %s: %w", file, err)
			}
			code := strings.TrimSuffix(filepath.Base(file), ".json")
			tags[code] = language.MustParse(code)
		}
		log.Printf("⚠️ Aucun fichier de langue dans %s, textes de secours embarqués utilisés.", s.dir)
		errs = append(errs, domain.ErrNoLocalesInstalled)
	}

	codes := make([]string, 0, len(tags))
	for code := range tags {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	s.bundle = bundle
	s.tags = tags
	s.codes = codes
	return errors.Join(errs...)
}

// Resolve renders the text identified by key for the given language.
//
// When the requested language serves the key itself, the error is nil. When
// the text comes from the default language instead, Resolve returns it along
// with a MissingTranslationError so callers can tell the difference. A key
// absent everywhere yields ("", MissingTranslationError).
func (s *Store) Resolve(lang, key string) (string, error) {
	if key == "" {
		return "", &domain.MissingTranslationError{Lang: lang, Key: key}
	}

	localizer := i18n.NewLocalizer(s.bundle, lang)
	msg, served, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if msg == "" {
		return "", &domain.MissingTranslationError{Lang: lang, Key: key}
	}

	// LocalizeWithTag rend un texte exploitable même en cas d'erreur, quand
	// la langue par défaut prend le relais. On garde le texte et on signale.
	if requested, ok := s.tags[lang]; err != nil || !ok || served != requested {
		return msg, &domain.MissingTranslationError{Lang: lang, Key: key}
	}
	return msg, nil
}

// T renders key for lang. If the key is missing in lang, it falls back to
// the default language, then finally to the key itself.
func (s *Store) T(lang, key string) string {
	msg, _ := s.Resolve(lang, key)
	if msg == "" {
		log.Printf("i18n: clé %q sans traduction (langue %q)", key, lang)
		return key
	}
	return msg
}

// Languages lists the installed language codes, sorted.
func (s *Store) Languages() []string {
	codes := make([]string, len(s.codes))
	copy(codes, s.codes)
	return codes
}

// Has reports whether a catalogue is installed for code.
func (s *Store) Has(code string) bool {
	_, ok := s.tags[code]
	return ok
}
