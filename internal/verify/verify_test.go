package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunCompleteInstallation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"app.title": "Juniper-U"}`)
	writeFile(t, dir, "en.json", `{"app.title": "Juniper-U"}`)
	writeFile(t, dir, "help_fr.html", "<html></html>")
	writeFile(t, dir, "help_en.html", "<html></html>")
	// Le fichier de préférences vit à côté de l'exécutable, pas dans locales/.
	prefs := filepath.Join(t.TempDir(), "juniper_preferences.json")
	require.NoError(t, os.WriteFile(prefs, []byte(`{"language": "fr"}`), 0o644))

	r := Run(dir, "fr", prefs)
	require.False(t, r.Broken())
	require.Equal(t, OK, r.Dir.Status)
	require.Equal(t, OK, r.Default.Status)
	require.Len(t, r.Locales, 2)
	require.Len(t, r.Help, 2)
	require.Equal(t, OK, r.Prefs.Status)
}

func TestRunMissingLocalesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	r := Run(dir, "fr", "juniper_preferences.json")
	require.True(t, r.Broken())
	require.Equal(t, Missing, r.Dir.Status)
	require.Equal(t, Missing, r.Default.Status)
}

func TestRunMissingDefaultCatalogue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"app.title": "Juniper-U"}`)

	r := Run(dir, "fr", "juniper_preferences.json")
	require.True(t, r.Broken())
	require.Equal(t, Missing, r.Default.Status)
}

func TestRunMalformedCatalogueIsBlocking(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"app.title": "Juniper-U"}`)
	writeFile(t, dir, "en.json", `{pas du json`)

	r := Run(dir, "fr", "juniper_preferences.json")
	require.True(t, r.Broken())

	var enCheck Check
	for _, c := range r.Locales {
		if c.Label == "en.json" {
			enCheck = c
		}
	}
	require.Equal(t, Missing, enCheck.Status)
	require.Equal(t, "JSON invalide", enCheck.Detail)
}

func TestRunHelpDocumentsAreOptional(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"app.title": "Juniper-U"}`)
	writeFile(t, dir, "help_fr.html", "<html></html>")
	writeFile(t, dir, "en.json", `{"app.title": "Juniper-U"}`)
	// Pas de help_en.html : optionnel, non bloquant.

	r := Run(dir, "fr", "juniper_preferences.json")
	require.False(t, r.Broken())

	statuses := map[string]Status{}
	for _, c := range r.Help {
		statuses[c.Label] = c.Status
	}
	require.Equal(t, OK, statuses["help_fr.html"])
	require.Equal(t, Optional, statuses["help_en.html"])
}

func TestRunTomlCatalogueIsChecked(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr.json", `{"app.title": "Juniper-U"}`)
	writeFile(t, dir, "pt.toml", `"app.title" = "Juniper-U"`)

	r := Run(dir, "fr", "juniper_preferences.json")
	require.False(t, r.Broken())
	require.Len(t, r.Locales, 2)
}

func TestStatusMarkers(t *testing.T) {
	require.Equal(t, "✅", OK.Marker())
	require.Equal(t, "❌", Missing.Marker())
	require.Equal(t, "⚪", Optional.Marker())
}
