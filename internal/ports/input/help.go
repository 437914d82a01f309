package input

import "context"

// HelpUseCase displays the game help in a given language.
type HelpUseCase interface {
	// ShowHelp presents the help content for lang. It never fails: every
	// degradation (no external document, viewer refusal, missing
	// translation) falls through to a more local presentation, down to a
	// built-in text.
	ShowHelp(ctx context.Context, lang string)
}
