package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/i18n"
)

// SetLanguageCommand represents the command to change the UI language
type SetLanguageCommand struct {
	Language string
}

// SetLanguageHandler handles the set language command
type SetLanguageHandler struct {
	preference *i18n.Preference
}

// NewSetLanguageHandler creates a new set language handler
func NewSetLanguageHandler(preference *i18n.Preference) *SetLanguageHandler {
	return &SetLanguageHandler{preference: preference}
}

// Handle executes the set language command
func (h *SetLanguageHandler) Handle(ctx context.Context, cmd SetLanguageCommand) (i18n.Language, error) {
	lang, ok := i18n.Parse(cmd.Language)
	if !ok {
		return i18n.DefaultLanguage, fmt.Errorf("unsupported language %q", cmd.Language)
	}

	h.preference.SetLanguage(ctx, lang)
	return lang, nil
}
