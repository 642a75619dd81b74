package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// Save replaces the course with the same id in place or appends a new one.
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewCourseRepository(s *store.Store, log *logger.Logger) CourseRepository {
	return &courseRepository{store: s, logger: log}
}

func courseID(c models.Course) string { return c.ID }

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	return load[models.Course](ctx, r.store, store.SlotCourses, r.logger)
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *courseRepository) Save(ctx context.Context, course *models.Course) error {
	course.AssignID(store.NextID)
	return store.Update(ctx, r.store, store.SlotCourses, func(courses []models.Course) ([]models.Course, error) {
		return upsert(courses, *course, courseID), nil
	})
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return store.Update(ctx, r.store, store.SlotCourses, func(courses []models.Course) ([]models.Course, error) {
		courses, ok := remove(courses, func(c models.Course) bool { return c.ID == id })
		if !ok {
			return nil, ErrNotFound
		}
		return courses, nil
	})
}
