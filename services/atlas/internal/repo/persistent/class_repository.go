package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	GetByID(ctx context.Context, id string) (*models.Class, error)
	Save(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

type classRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewClassRepository(s *store.Store, log *logger.Logger) ClassRepository {
	return &classRepository{store: s, logger: log}
}

func classID(c models.Class) string { return c.ID }

func (r *classRepository) List(ctx context.Context) ([]models.Class, error) {
	return load[models.Class](ctx, r.store, store.SlotClasses, r.logger)
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	classes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *classRepository) Save(ctx context.Context, class *models.Class) error {
	class.AssignID(store.NextID)
	return store.Update(ctx, r.store, store.SlotClasses, func(classes []models.Class) ([]models.Class, error) {
		return upsert(classes, *class, classID), nil
	})
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	return store.Update(ctx, r.store, store.SlotClasses, func(classes []models.Class) ([]models.Class, error) {
		classes, ok := remove(classes, func(c models.Class) bool { return c.ID == id })
		if !ok {
			return nil, ErrNotFound
		}
		return classes, nil
	})
}
