package usecase

import (
	"context"

	"atlas/pkg/i18n"
	"atlas/services/atlas/internal/repo/persistent"
)

// messenger renders user-facing notices in the caller's chosen language.
type messenger struct {
	bundle *i18n.Bundle
	prefs  persistent.PreferenceRepository
}

func (m messenger) render(ctx context.Context, userID, key string, vars map[string]string) string {
	if m.bundle == nil {
		return ""
	}
	locale := i18n.DefaultLocale
	if m.prefs != nil {
		if _, lang, err := m.prefs.Get(ctx, userID); err == nil && lang != "" {
			locale = lang
		}
	}
	text, ok := m.bundle.Translate(locale, key)
	if !ok {
		return ""
	}
	return i18n.Format(text, vars)
}
