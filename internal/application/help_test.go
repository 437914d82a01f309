package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/w0uf/Juniper/internal/domain"
)

func newHelpStore() *fakeStore {
	return &fakeStore{
		def: "fr",
		data: map[string]map[string]string{
			"fr": {"help.title": "Aide", "help.content": "Règles du jeu Juniper Green."},
			"en": {"help.title": "Help", "help.content": "Rules of the Juniper Green game."},
			"es": {"app.title": "Juniper-U"},
		},
	}
}

func TestShowHelpOpensExternalDocument(t *testing.T) {
	opener := &fakeOpener{}
	dialog := &fakeDialog{}
	svc := NewHelpService(newHelpStore(), fakeIndex{"fr": "/opt/juniper/locales/help_fr.html"}, opener, dialog)

	svc.ShowHelp(context.Background(), "fr")

	require.Equal(t, []string{"/opt/juniper/locales/help_fr.html"}, opener.opens)
	// Ouverture réussie : aucune boîte modale.
	require.Empty(t, dialog.titles)
}

func TestShowHelpFallsBackToDialogWhenViewerRefuses(t *testing.T) {
	opener := &fakeOpener{err: &domain.ExternalOpenError{Doc: "help_fr.html", Err: errors.New("exec refusé")}}
	dialog := &fakeDialog{}
	svc := NewHelpService(newHelpStore(), fakeIndex{"fr": "help_fr.html"}, opener, dialog)

	svc.ShowHelp(context.Background(), "fr")

	require.Len(t, opener.opens, 1)
	require.Equal(t, []string{"Aide"}, dialog.titles)
	require.Equal(t, []string{"Règles du jeu Juniper Green."}, dialog.bodies)
}

func TestShowHelpWithoutDocumentShowsTranslatedDialog(t *testing.T) {
	opener := &fakeOpener{}
	dialog := &fakeDialog{}
	svc := NewHelpService(newHelpStore(), fakeIndex{}, opener, dialog)

	svc.ShowHelp(context.Background(), "en")

	require.Empty(t, opener.opens)
	require.Equal(t, []string{"Help"}, dialog.titles)
	require.Equal(t, []string{"Rules of the Juniper Green game."}, dialog.bodies)
}

func TestShowHelpUntranslatedLanguageShowsDefaultText(t *testing.T) {
	dialog := &fakeDialog{}
	svc := NewHelpService(newHelpStore(), fakeIndex{}, &fakeOpener{}, dialog)

	// L'espagnol n'a pas de textes d'aide : la langue par défaut les sert.
	svc.ShowHelp(context.Background(), "es")

	require.Equal(t, []string{"Aide"}, dialog.titles)
	require.Equal(t, []string{"Règles du jeu Juniper Green."}, dialog.bodies)
}

func TestShowHelpMissingEverywhereShowsFixedTexts(t *testing.T) {
	store := &fakeStore{def: "fr", data: map[string]map[string]string{
		"fr": {"app.title": "Juniper-U"},
	}}
	dialog := &fakeDialog{}
	svc := NewHelpService(store, fakeIndex{}, &fakeOpener{}, dialog)

	svc.ShowHelp(context.Background(), "fr")

	require.Equal(t, []string{"Help"}, dialog.titles)
	require.Equal(t, []string{"Help unavailable"}, dialog.bodies)
}

func TestShowHelpToleratesDialogFailure(t *testing.T) {
	dialog := &fakeDialog{err: errors.New("terminal fermé")}
	svc := NewHelpService(newHelpStore(), fakeIndex{}, &fakeOpener{}, dialog)

	// Ne doit ni paniquer ni remonter d'erreur.
	svc.ShowHelp(context.Background(), "fr")
	require.Len(t, dialog.titles, 1)
}

func TestShowHelpThreeLanguageScenario(t *testing.T) {
	// fr et en ont un document d'aide, es n'a ni document ni catalogue en
	// propre : seule la boîte modale, servie par la langue par défaut.
	index := fakeIndex{
		"fr": "/opt/juniper/locales/help_fr.html",
		"en": "/opt/juniper/locales/help_en.html",
	}

	for _, tc := range []struct {
		lang       string
		wantOpens  int
		wantDialog string
	}{
		{lang: "fr", wantOpens: 1, wantDialog: ""},
		{lang: "en", wantOpens: 1, wantDialog: ""},
		{lang: "es", wantOpens: 0, wantDialog: "Règles du jeu Juniper Green."},
	} {
		opener := &fakeOpener{}
		dialog := &fakeDialog{}
		svc := NewHelpService(newHelpStore(), index, opener, dialog)

		svc.ShowHelp(context.Background(), tc.lang)

		require.Len(t, opener.opens, tc.wantOpens, "lang %s", tc.lang)
		if tc.wantDialog == "" {
			require.Empty(t, dialog.bodies, "lang %s", tc.lang)
		} else {
			require.Equal(t, []string{tc.wantDialog}, dialog.bodies, "lang %s", tc.lang)
		}
	}
}
