package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// Create appends the user after check has accepted the current users.
	Create(ctx context.Context, user *models.User, check func(users []models.User) error) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByLogin matches the identifier against username or email.
	GetByLogin(ctx context.Context, identifier string) (*models.User, error)
}

type userRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewUserRepository(s *store.Store, log *logger.Logger) UserRepository {
	return &userRepository{store: s, logger: log}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return load[models.User](ctx, r.store, store.SlotUsers, r.logger)
}

func (r *userRepository) Create(ctx context.Context, user *models.User, check func(users []models.User) error) error {
	return store.Update(ctx, r.store, store.SlotUsers, func(users []models.User) ([]models.User, error) {
		if check != nil {
			if err := check(users); err != nil {
				return nil, err
			}
		}
		user.AssignID(store.NextID)
		return append(users, *user), nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) GetByLogin(ctx context.Context, identifier string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == identifier || users[i].Email == identifier {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}
