package application

import (
	"errors"
	"log"

	"golang.org/x/text/language"

	"github.com/w0uf/Juniper/internal/domain"
	"github.com/w0uf/Juniper/internal/domain/entities"
	"github.com/w0uf/Juniper/internal/ports/input"
	"github.com/w0uf/Juniper/internal/ports/output"
	"github.com/w0uf/Juniper/pkg/langname"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

var errNotInstalled = errors.New("langue non installée")

// LocaleService détient la langue active de l'application : toute lecture et
// tout changement de langue passent par lui. Il n'est pas prévu pour un
// usage concurrent ; l'application le pilote depuis une seule goroutine.
type LocaleService struct {
	store   output.TranslationStore
	prefs   output.PreferenceStore
	current string
}

// NewLocaleService wires the service and picks the initial language:
// the saved preference, then the best system-locale match, then
// defaultLocale, then the first installed language.
func NewLocaleService(
	store output.TranslationStore,
	prefs output.PreferenceStore,
	system output.SystemLocale,
	defaultLocale string,
) *LocaleService {
	s := &LocaleService{
		store: store,
		prefs: prefs,
	}
	s.current = s.initialLanguage(system, defaultLocale)
	return s
}

func (s *LocaleService) initialLanguage(system output.SystemLocale, defaultLocale string) string {
	if s.prefs != nil {
		saved, err := s.prefs.Load()
		if err != nil {
			log.Printf("⚠️ Préférences ignorées: %v", err)
		}
		if saved.Language != "" && s.store.Has(saved.Language) {
			return saved.Language
		}
	}
	if system != nil {
		if code, ok := matchInstalled(s.store.Languages(), system.Locales()); ok {
			return code
		}
	}
	if s.store.Has(defaultLocale) {
		return defaultLocale
	}
	if codes := s.store.Languages(); len(codes) > 0 {
		return codes[0]
	}
	return defaultLocale
}

// Current returns the active language code.
func (s *LocaleService) Current() string {
	return s.current
}

// SetLanguage switches the active language. The catalogues are rescanned so
// the switch sees the current state of the files on disk; unknown or
// unloadable codes leave the current language untouched.
func (s *LocaleService) SetLanguage(code string) error {
	if !s.store.Has(code) {
		return &domain.LocaleLoadError{Code: code, Err: errNotInstalled}
	}

	rerr := s.store.Reload()
	if !s.store.Has(code) {
		if rerr == nil {
			rerr = errNotInstalled
		}
		return &domain.LocaleLoadError{Code: code, Err: rerr}
	}
	if rerr != nil {
		// La langue demandée est servie ; d'autres catalogues ont
		// échoué au rechargement, on se contente de le signaler.
		log.Printf("⚠️ Rechargement partiel des langues: %v", rerr)
	}

	s.current = code
	s.persistLanguage(code)
	return nil
}

// Resolve renders key in the active language.
func (s *LocaleService) Resolve(key string) (string, error) {
	return s.store.Resolve(s.current, key)
}

// T renders key in the active language and never fails.
func (s *LocaleService) T(key string) string {
	return s.store.T(s.current, key)
}

// Languages lists the installed languages with their display names.
func (s *LocaleService) Languages() []entities.Language {
	codes := s.store.Languages()
	langs := make([]entities.Language, 0, len(codes))
	for _, code := range codes {
		langs = append(langs, entities.Language{
			Code: code,
			Name: langname.Name(code),
		})
	}
	return langs
}

func (s *LocaleService) persistLanguage(code string) {
	if s.prefs == nil {
		return
	}
	prefs, err := s.prefs.Load()
	if err != nil {
		log.Printf("⚠️ Préférences illisibles, réécriture: %v", err)
	}
	prefs.Language = code
	if err := s.prefs.Save(prefs); err != nil {
		log.Printf("⚠️ Impossible d'enregistrer la langue choisie: %v", err)
	}
}

// matchInstalled confronts the host's preferred locales with the installed
// catalogues and returns the code of the best match.
func matchInstalled(installed, preferred []string) (string, bool) {
	if len(installed) == 0 || len(preferred) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(installed))
	codes := make([]string, 0, len(installed))
	for _, code := range installed {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return "", false
	}

	wanted := make([]language.Tag, 0, len(preferred))
	for _, loc := range preferred {
		if tag, err := language.Parse(loc); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return "", false
	}

	_, index, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return "", false
	}
	return codes[index], true
}
