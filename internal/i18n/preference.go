package i18n

import (
	"context"

	"github.com/tair/storefront/internal/storage"
	"github.com/tair/storefront/pkg/logger"
)

// PreferenceKey is the storage key for the selected UI language. It is
// deliberately separate from the state snapshot key.
const PreferenceKey = "language"

// Preference persists the selected UI language, falling back to English
// whenever the stored value is absent or invalid.
type Preference struct {
	storage storage.Storage
}

// NewPreference creates a language preference backed by the given storage
func NewPreference(st storage.Storage) *Preference {
	return &Preference{storage: st}
}

// Language returns the stored language, or the default
func (p *Preference) Language(ctx context.Context) Language {
	raw, err := p.storage.Get(ctx, PreferenceKey)
	if err == storage.ErrNotFound {
		return DefaultLanguage
	}
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to read language preference")
		return DefaultLanguage
	}

	lang, ok := Parse(raw)
	if !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage stores the language. Best-effort: a storage failure is
// logged and the in-memory choice still wins for the caller.
func (p *Preference) SetLanguage(ctx context.Context, lang Language) {
	if err := p.storage.Set(ctx, PreferenceKey, string(lang)); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to persist language preference")
	}
}
