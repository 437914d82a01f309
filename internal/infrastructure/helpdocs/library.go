package helpdocs

import (
	"os"
	"path/filepath"

	"github.com/w0uf/Juniper/internal/ports/output"
)

// Ensure Library implements the output.HelpIndex port.
var _ output.HelpIndex = (*Library)(nil)

// Library indexes the per-language help documents installed next to the
// locale catalogues: help_<code>.html (ou .htm) dans le même répertoire.
type Library struct {
	dir string
}

// New builds a Library over the given directory.
func New(dir string) *Library {
	return &Library{dir: dir}
}

// Lookup returns the absolute path of the help document for code.
// The probe is a plain stat: absence is a normal state, not an error.
func (l *Library) Lookup(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	for _, ext := range []string{".html", ".htm"} {
		path := filepath.Join(l.dir, "help_"+code+ext)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path, true
		}
		return abs, true
	}
	return "", false
}
