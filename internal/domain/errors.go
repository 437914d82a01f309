package domain

import (
	"errors"
	"fmt"
)

// Domain errors. Each structured error below reports exactly one of these
// kinds, so callers classify with errors.Is without inspecting types.
var (
	ErrLocaleLoad         = errors.New("ressource de langue manquante ou illisible")
	ErrMissingTranslation = errors.New("clé de traduction absente")
	ErrExternalOpen       = errors.New("impossible d'ouvrir le document d'aide")
)

// ErrNoLocalesInstalled signale qu'aucun fichier de langue exploitable n'a
// été trouvé et que les textes de secours embarqués sont servis à la place.
var ErrNoLocalesInstalled = fmt.Errorf("%w: aucun fichier de langue installé", ErrLocaleLoad)

// LocaleLoadError reports a locale resource that could not be read or parsed.
type LocaleLoadError struct {
	Code string // language code concerned, when known
	Path string // backing file, when known
	Err  error  // underlying cause, may be nil
}

func (e *LocaleLoadError) Error() string {
	msg := ErrLocaleLoad.Error()
	if e.Code != "" {
		msg = fmt.Sprintf("%s (langue %q)", msg, e.Code)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LocaleLoadError) Is(target error) bool { return target == ErrLocaleLoad }

func (e *LocaleLoadError) Unwrap() error { return e.Err }

// MissingTranslationError reports a key that the requested language could not
// serve itself. Callers may still have received the default-language text.
type MissingTranslationError struct {
	Lang string
	Key  string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("%s: %q (langue %q)", ErrMissingTranslation.Error(), e.Key, e.Lang)
}

func (e *MissingTranslationError) Is(target error) bool { return target == ErrMissingTranslation }

// ExternalOpenError reports a help document that the host environment
// refused to open.
type ExternalOpenError struct {
	Doc string // document handed to the platform
	Err error  // underlying cause, may be nil
}

func (e *ExternalOpenError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrExternalOpen.Error(), e.Doc)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExternalOpenError) Is(target error) bool { return target == ErrExternalOpen }

func (e *ExternalOpenError) Unwrap() error { return e.Err }
