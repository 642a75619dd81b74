package persistent

import (
	"context"

	"atlas/pkg/store"
)

type PreferenceRepository interface {
	// Get returns the stored theme and language; empty strings when unset.
	Get(ctx context.Context, userID string) (theme, language string, err error)
	SetTheme(ctx context.Context, userID, theme string) error
	SetLanguage(ctx context.Context, userID, language string) error
}

type preferenceRepository struct {
	store *store.Store
}

func NewPreferenceRepository(s *store.Store) PreferenceRepository {
	return &preferenceRepository{store: s}
}

func (r *preferenceRepository) Get(ctx context.Context, userID string) (string, string, error) {
	theme, _, err := r.store.LoadString(ctx, store.SlotTheme.ForUser(userID))
	if err != nil {
		return "", "", err
	}
	language, _, err := r.store.LoadString(ctx, store.SlotLanguage.ForUser(userID))
	if err != nil {
		return "", "", err
	}
	return theme, language, nil
}

func (r *preferenceRepository) SetTheme(ctx context.Context, userID, theme string) error {
	return r.store.SaveString(ctx, store.SlotTheme.ForUser(userID), theme)
}

func (r *preferenceRepository) SetLanguage(ctx context.Context, userID, language string) error {
	return r.store.SaveString(ctx, store.SlotLanguage.ForUser(userID), language)
}
