package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type SubscriptionRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Subscription, error)
	// Save keeps one subscription per user.
	Save(ctx context.Context, sub *models.Subscription) error
}

type subscriptionRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewSubscriptionRepository(s *store.Store, log *logger.Logger) SubscriptionRepository {
	return &subscriptionRepository{store: s, logger: log}
}

func subscriptionUser(s models.Subscription) string { return s.UserID }

func (r *subscriptionRepository) GetByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	subs, err := load[models.Subscription](ctx, r.store, store.SlotSubscriptions, r.logger)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].UserID == userID {
			return &subs[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *subscriptionRepository) Save(ctx context.Context, sub *models.Subscription) error {
	return store.Update(ctx, r.store, store.SlotSubscriptions, func(subs []models.Subscription) ([]models.Subscription, error) {
		return upsert(subs, *sub, subscriptionUser), nil
	})
}
