package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

const verifiedFlag = "true"

type InstructorRepository interface {
	IsVerified(ctx context.Context, userID string) (bool, error)
	GetData(ctx context.Context, userID string) (*models.InstructorData, error)
	// MarkVerified stores the snapshot and sets the verified flag.
	MarkVerified(ctx context.Context, userID string, data *models.InstructorData) error
	Reset(ctx context.Context, userID string) error
}

type instructorRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewInstructorRepository(s *store.Store, log *logger.Logger) InstructorRepository {
	return &instructorRepository{store: s, logger: log}
}

func (r *instructorRepository) IsVerified(ctx context.Context, userID string) (bool, error) {
	flag, _, err := r.store.LoadString(ctx, store.SlotInstructorVerified.ForUser(userID))
	if err != nil {
		return false, err
	}
	return flag == verifiedFlag, nil
}

func (r *instructorRepository) GetData(ctx context.Context, userID string) (*models.InstructorData, error) {
	data, found, err := loadValue[models.InstructorData](ctx, r.store, store.SlotInstructorData.ForUser(userID), r.logger)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &data, nil
}

func (r *instructorRepository) MarkVerified(ctx context.Context, userID string, data *models.InstructorData) error {
	if err := store.SaveValue(ctx, r.store, store.SlotInstructorData.ForUser(userID), data); err != nil {
		return err
	}
	return r.store.SaveString(ctx, store.SlotInstructorVerified.ForUser(userID), verifiedFlag)
}

func (r *instructorRepository) Reset(ctx context.Context, userID string) error {
	if err := r.store.Remove(ctx, store.SlotInstructorVerified.ForUser(userID)); err != nil {
		return err
	}
	return r.store.Remove(ctx, store.SlotInstructorData.ForUser(userID))
}
