package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/w0uf/Juniper/internal/ports/output"
)

// Ensure Dialog implements the output.Dialog port.
var _ output.Dialog = (*Dialog)(nil)

// Dialog rend les boîtes de message modales de l'interface d'origine sur le
// terminal. Info bloque jusqu'à ce que l'utilisateur valide avec Entrée.
type Dialog struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a Dialog over stdin/stdout.
func New() *Dialog {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith builds a Dialog over arbitrary streams, for embedding and tests.
func NewWith(in io.Reader, out io.Writer) *Dialog {
	return &Dialog{in: bufio.NewReader(in), out: out}
}

// Info displays title and message, then waits for an acknowledgement.
// A closed input (pipe, EOF) counts as acknowledged.
func (d *Dialog) Info(title, message string) error {
	if _, err := fmt.Fprintf(d.out, "\n=== %s ===\n\n%s\n\n[OK] ", title, message); err != nil {
		return err
	}
	if _, err := d.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
