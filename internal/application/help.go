package application

import (
	"context"
	"log"

	"github.com/w0uf/Juniper/internal/ports/input"
	"github.com/w0uf/Juniper/internal/ports/output"
)

var _ input.HelpUseCase = (*HelpService)(nil)

const (
	helpTitleKey   = "help.title"
	helpContentKey = "help.content"

	// Textes de dernier recours, servis quand même la langue par défaut
	// ne fournit pas l'aide.
	fallbackHelpTitle = "Help"
	fallbackHelpText  = "Help unavailable"
)

// HelpService displays the game help: the installed help document through
// the platform viewer when possible, otherwise a modal dialog with the
// translated help text.
type HelpService struct {
	store  output.TranslationStore
	docs   output.HelpIndex
	opener output.DocumentOpener
	dialog output.Dialog
}

func NewHelpService(
	store output.TranslationStore,
	docs output.HelpIndex,
	opener output.DocumentOpener,
	dialog output.Dialog,
) *HelpService {
	return &HelpService{
		store:  store,
		docs:   docs,
		opener: opener,
		dialog: dialog,
	}
}

// ShowHelp presents the help for lang. It never fails; each degradation
// falls through to a more local presentation:
//
//  1. document d'aide installé → visualiseur de la plateforme ;
//  2. document absent ou visualiseur refusé → boîte modale traduite ;
//  3. traduction absente partout → texte de secours fixe.
//
// The external hand-off does not block; the modal dialog does.
func (s *HelpService) ShowHelp(ctx context.Context, lang string) {
	if ref, ok := s.docs.Lookup(lang); ok {
		err := s.opener.Open(ctx, ref)
		if err == nil {
			return
		}
		log.Printf("⚠️ Visualiseur indisponible, repli sur la boîte modale: %v", err)
	}

	title, _ := s.store.Resolve(lang, helpTitleKey)
	if title == "" {
		title = fallbackHelpTitle
	}

	content, _ := s.store.Resolve(lang, helpContentKey)
	if content == "" {
		log.Printf("i18n: aide indisponible pour %q, texte de secours affiché", lang)
		content = fallbackHelpText
	}

	if err := s.dialog.Info(title, content); err != nil {
		log.Printf("⚠️ Affichage de la boîte modale impossible: %v", err)
	}
}
