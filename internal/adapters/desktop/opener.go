package desktop

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/w0uf/Juniper/internal/domain"
	"github.com/w0uf/Juniper/internal/ports/output"
)

// Ensure Opener implements the output.DocumentOpener port.
var _ output.DocumentOpener = Opener{}

// Opener confie un document au visualiseur par défaut de la plateforme :
// xdg-open sous Linux, open sous macOS, rundll32 sous Windows.
//
// Le lancement est fire-and-forget : Open rend la main dès que le
// visualiseur est démarré, sans attendre sa fin. Sa sortie est ignorée.
type Opener struct{}

// Open starts the platform viewer on ref. A viewer that cannot be started
// (unknown platform, binary missing, spawn refused, ctx already cancelled)
// is reported as an ExternalOpenError so the caller can fall back to a local
// presentation. Once started, the viewer is detached: cancelling ctx does
// not kill it.
func (Opener) Open(ctx context.Context, ref string) error {
	name, args := openCommand(runtime.GOOS, ref)
	if name == "" {
		return &domain.ExternalOpenError{Doc: ref,
			Err: fmt.Errorf("aucun visualiseur connu pour %s", runtime.GOOS)}
	}
	if err := ctx.Err(); err != nil {
		return &domain.ExternalOpenError{Doc: ref, Err: err}
	}

	// Pas de CommandContext : le visualiseur survit à l'annulation du
	// contexte une fois la main passée.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return &domain.ExternalOpenError{Doc: ref, Err: err}
	}

	// Le visualiseur vit sa vie ; on ne garde que la moisson du processus.
	go func() { _ = cmd.Wait() }()
	return nil
}

// openCommand picks the hand-off command for a platform. Split out so the
// table is testable without spawning anything.
func openCommand(goos, ref string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", []string{ref}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", ref}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{ref}
	default:
		return "", nil
	}
}
