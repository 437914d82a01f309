package application

import (
	"context"
	"sort"

	"github.com/w0uf/Juniper/internal/domain"
	"github.com/w0uf/Juniper/internal/domain/entities"
	"github.com/w0uf/Juniper/internal/ports/output"
)

var (
	_ output.TranslationStore = (*fakeStore)(nil)
	_ output.PreferenceStore  = (*fakePrefs)(nil)
	_ output.SystemLocale     = (fakeSystem)(nil)
	_ output.HelpIndex        = (fakeIndex)(nil)
	_ output.DocumentOpener   = (*fakeOpener)(nil)
	_ output.Dialog           = (*fakeDialog)(nil)
)

// fakeStore reproduit le contrat du magasin de traductions : langue
// demandée, puis langue par défaut, puis échec signalé.
type fakeStore struct {
	def          string
	data         map[string]map[string]string // lang -> key -> text
	reloadErr    error
	reloads      int
	dropOnReload []string
}

func (f *fakeStore) Resolve(lang, key string) (string, error) {
	if text, ok := f.data[lang][key]; ok {
		return text, nil
	}
	if text, ok := f.data[f.def][key]; ok {
		return text, &domain.MissingTranslationError{Lang: lang, Key: key}
	}
	return "", &domain.MissingTranslationError{Lang: lang, Key: key}
}

func (f *fakeStore) T(lang, key string) string {
	msg, _ := f.Resolve(lang, key)
	if msg == "" {
		return key
	}
	return msg
}

func (f *fakeStore) Languages() []string {
	codes := make([]string, 0, len(f.data))
	for code := range f.data {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (f *fakeStore) Has(code string) bool {
	_, ok := f.data[code]
	return ok
}

func (f *fakeStore) Reload() error {
	f.reloads++
	for _, code := range f.dropOnReload {
		delete(f.data, code)
	}
	f.dropOnReload = nil
	return f.reloadErr
}

type fakePrefs struct {
	prefs   entities.Preferences
	loadErr error
	saveErr error
	saves   int
}

func newFakePrefs(lang string) *fakePrefs {
	p := entities.DefaultPreferences()
	if lang != "" {
		p.Language = lang
	}
	return &fakePrefs{prefs: p}
}

func (f *fakePrefs) Load() (entities.Preferences, error) {
	return f.prefs, f.loadErr
}

func (f *fakePrefs) Save(p entities.Preferences) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.prefs = p
	f.saves++
	return nil
}

type fakeSystem []string

func (f fakeSystem) Locales() []string { return f }

type fakeIndex map[string]string

func (f fakeIndex) Lookup(code string) (string, bool) {
	ref, ok := f[code]
	return ref, ok
}

type fakeOpener struct {
	err   error
	opens []string
}

func (f *fakeOpener) Open(_ context.Context, ref string) error {
	f.opens = append(f.opens, ref)
	return f.err
}

type fakeDialog struct {
	err    error
	titles []string
	bodies []string
}

func (f *fakeDialog) Info(title, message string) error {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, message)
	return f.err
}
