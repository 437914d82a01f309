package output

import "context"

// HelpIndex locates the rich help documents shipped alongside the locale
// files. Absence of a document is a normal state, not an error.
type HelpIndex interface {
	// Lookup returns a reference (absolute path or URL) to the help
	// document for the given language code, and whether one exists.
	Lookup(code string) (string, bool)
}

// DocumentOpener hands a document to the host environment's default viewer.
// The hand-off is fire-and-forget: Open returns once the viewer has been
// started, without waiting for it to terminate.
type DocumentOpener interface {
	Open(ctx context.Context, ref string) error
}

// Dialog is the local modal fallback surface. Info blocks until the user
// acknowledges the message.
type Dialog interface {
	Info(title, message string) error
}
