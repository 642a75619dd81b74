package usecase

import (
	"context"

	"atlas/pkg/i18n"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/repo/persistent"
)

const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeLight

	MsgInvalidTheme    = "El tema debe ser light o dark"
	MsgInvalidLanguage = "Idioma no soportado"
)

type Translations struct {
	Locale  string       `json:"locale"`
	Catalog i18n.Catalog `json:"translations"`
}

type PreferenceUseCase interface {
	Get(ctx context.Context, userID string) (*entity.PreferenceSet, error)
	Update(ctx context.Context, userID string, prefs entity.PreferenceSet) (*entity.PreferenceSet, error)
	SetTheme(ctx context.Context, userID, theme string) error
	SetLanguage(ctx context.Context, userID, language string) error
	Translations(locale string) Translations
	Translate(locale, key string) (string, bool)
}

type preferenceUseCase struct {
	prefRepo persistent.PreferenceRepository
	bundle   *i18n.Bundle
}

func NewPreferenceUseCase(prefRepo persistent.PreferenceRepository, bundle *i18n.Bundle) PreferenceUseCase {
	return &preferenceUseCase{prefRepo: prefRepo, bundle: bundle}
}

func (uc *preferenceUseCase) Get(ctx context.Context, userID string) (*entity.PreferenceSet, error) {
	theme, language, err := uc.prefRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if theme == "" {
		theme = DefaultTheme
	}
	if language == "" {
		language = i18n.DefaultLocale
	}
	return &entity.PreferenceSet{Theme: theme, Language: language}, nil
}

// Update applies the non-empty fields of prefs.
func (uc *preferenceUseCase) Update(ctx context.Context, userID string, prefs entity.PreferenceSet) (*entity.PreferenceSet, error) {
	if prefs.Theme != "" {
		if err := uc.SetTheme(ctx, userID, prefs.Theme); err != nil {
			return nil, err
		}
	}
	if prefs.Language != "" {
		if err := uc.SetLanguage(ctx, userID, prefs.Language); err != nil {
			return nil, err
		}
	}
	return uc.Get(ctx, userID)
}

func (uc *preferenceUseCase) SetTheme(ctx context.Context, userID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return validation.Failure("theme", MsgInvalidTheme)
	}
	return uc.prefRepo.SetTheme(ctx, userID, theme)
}

func (uc *preferenceUseCase) SetLanguage(ctx context.Context, userID, language string) error {
	if !uc.bundle.Supported(language) {
		return validation.Failure("language", MsgInvalidLanguage)
	}
	return uc.prefRepo.SetLanguage(ctx, userID, language)
}

func (uc *preferenceUseCase) Translations(locale string) Translations {
	catalog, served := uc.bundle.Catalog(locale)
	return Translations{Locale: served, Catalog: catalog}
}

func (uc *preferenceUseCase) Translate(locale, key string) (string, bool) {
	return uc.bundle.Translate(locale, key)
}
