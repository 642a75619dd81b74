package usecase

import (
	"context"
	"errors"
	"time"

	"atlas/pkg/i18n"
	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/repo/persistent"
)

const MsgUnknownPlan = "Selecciona un plan válido"

type SubscriptionResult struct {
	Subscription *models.Subscription `json:"subscription"`
	Message      string               `json:"message,omitempty"`
}

type PremiumStatus struct {
	Active       bool                 `json:"active"`
	TrialUsed    bool                 `json:"trialUsed"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
}

type PremiumUseCase interface {
	Plans() []entity.Plan
	StartTrial(ctx context.Context, userID string) (*SubscriptionResult, error)
	Subscribe(ctx context.Context, userID string, cycle models.BillingCycle, payment validation.PaymentInput) (*SubscriptionResult, error)
	Status(ctx context.Context, userID string) (*PremiumStatus, error)
}

type premiumUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	submitter        *Submitter
	publisher        queue.Publisher
	messages         messenger
	logger           *logger.Logger
	now              func() time.Time
}

func NewPremiumUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	prefRepo persistent.PreferenceRepository,
	bundle *i18n.Bundle,
	submitter *Submitter,
	publisher queue.Publisher,
	logger *logger.Logger,
) PremiumUseCase {
	return &premiumUseCase{
		subscriptionRepo: subscriptionRepo,
		submitter:        submitter,
		publisher:        publisher,
		messages:         messenger{bundle: bundle, prefs: prefRepo},
		logger:           logger,
		now:              time.Now,
	}
}

func (uc *premiumUseCase) Plans() []entity.Plan {
	return entity.Plans()
}

func (uc *premiumUseCase) current(ctx context.Context, userID string) (*models.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByUser(ctx, userID)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, nil
	}
	return sub, err
}

// StartTrial grants a seven day trial. Each user gets one, and not while a
// paid plan is running.
func (uc *premiumUseCase) StartTrial(ctx context.Context, userID string) (*SubscriptionResult, error) {
	existing, err := uc.current(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sub *models.Subscription
	err = uc.submitter.Run(ctx, latch.Key("trial", userID),
		func() error {
			if existing == nil {
				return nil
			}
			if existing.TrialUsed {
				return ErrTrialUsed
			}
			if existing.Status == models.SubscriptionActive && existing.ActiveAt(uc.now()) {
				return ErrPlanActive
			}
			return nil
		},
		func(ctx context.Context) error {
			start := uc.now().UTC()
			sub = &models.Subscription{
				UserID:    userID,
				Plan:      models.BillingTrial,
				Status:    models.SubscriptionTrial,
				StartedAt: start,
				ExpiresAt: start.AddDate(0, 0, entity.TrialDays),
				TrialUsed: true,
			}
			return uc.subscriptionRepo.Save(ctx, sub)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Trial started for user %s until %s", userID, sub.ExpiresAt.Format(time.RFC3339))
	publish(uc.publisher, uc.logger, queue.EventPremiumActivated, sub)
	return &SubscriptionResult{
		Subscription: sub,
		Message:      uc.messages.render(ctx, userID, "premium.trial_started", nil),
	}, nil
}

// Subscribe validates the card form and, after the payment delay, activates
// the plan. The simulated payment never declines.
func (uc *premiumUseCase) Subscribe(ctx context.Context, userID string, cycle models.BillingCycle, payment validation.PaymentInput) (*SubscriptionResult, error) {
	plan, ok := entity.PlanFor(cycle)
	if !ok {
		return nil, validation.Failure("plan", MsgUnknownPlan)
	}
	existing, err := uc.current(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sub *models.Subscription
	err = uc.submitter.Run(ctx, latch.Key("payment", userID),
		func() error { return validation.Payment(payment).Err() },
		func(ctx context.Context) error {
			start := uc.now().UTC()
			expires := start.AddDate(0, 1, 0)
			if cycle == models.BillingYearly {
				expires = start.AddDate(1, 0, 0)
			}
			sub = &models.Subscription{
				UserID:    userID,
				Plan:      cycle,
				Status:    models.SubscriptionActive,
				Amount:    plan.Total,
				StartedAt: start,
				ExpiresAt: expires,
				TrialUsed: existing != nil && existing.TrialUsed,
			}
			return uc.subscriptionRepo.Save(ctx, sub)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User %s subscribed to %s plan", userID, cycle)
	publish(uc.publisher, uc.logger, queue.EventPremiumActivated, sub)
	return &SubscriptionResult{
		Subscription: sub,
		Message:      uc.messages.render(ctx, userID, "premium.payment_success", nil),
	}, nil
}

func (uc *premiumUseCase) Status(ctx context.Context, userID string) (*PremiumStatus, error) {
	sub, err := uc.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &PremiumStatus{}, nil
	}
	return &PremiumStatus{
		Active:       sub.ActiveAt(uc.now()),
		TrialUsed:    sub.TrialUsed,
		Subscription: sub,
	}, nil
}
