package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type DonationRepository interface {
	Append(ctx context.Context, donation *models.Donation) error
	ListByDonor(ctx context.Context, donorID string) ([]models.Donation, error)
}

type donationRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewDonationRepository(s *store.Store, log *logger.Logger) DonationRepository {
	return &donationRepository{store: s, logger: log}
}

func (r *donationRepository) Append(ctx context.Context, donation *models.Donation) error {
	donation.AssignID(store.NextID)
	return store.Update(ctx, r.store, store.SlotDonations, func(donations []models.Donation) ([]models.Donation, error) {
		return append(donations, *donation), nil
	})
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID string) ([]models.Donation, error) {
	donations, err := load[models.Donation](ctx, r.store, store.SlotDonations, r.logger)
	if err != nil {
		return nil, err
	}
	out := make([]models.Donation, 0, len(donations))
	for _, d := range donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	return out, nil
}
