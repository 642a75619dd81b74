package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, profile *models.Profile) error
}

type profileRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewProfileRepository(s *store.Store, log *logger.Logger) ProfileRepository {
	return &profileRepository{store: s, logger: log}
}

func (r *profileRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, found, err := loadValue[models.Profile](ctx, r.store, store.SlotProfile.ForUser(userID), r.logger)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, userID string, profile *models.Profile) error {
	return store.SaveValue(ctx, r.store, store.SlotProfile.ForUser(userID), profile)
}
