package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"atlas/pkg/i18n"
	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/repo/persistent"
)

const (
	MsgSelectRecipient  = "Por favor, selecciona un usuario primero"
	MsgSelectAmount     = "Por favor, selecciona una cantidad de membresías"
	MsgInvalidCustom    = "La cantidad personalizada debe estar entre 11 y 50"
	MsgInvalidBulk      = "La cantidad debe estar entre 11 y 50 membresías"
	minSearchQueryRunes = 2
)

type DonationInput struct {
	RecipientID string `json:"recipientId"`
	Amount      int    `json:"amount"`
}

type DonationResult struct {
	Donation *models.Donation `json:"donation"`
	Message  string           `json:"message,omitempty"`
}

type DonationUseCase interface {
	Featured() []entity.Recipient
	Search(ctx context.Context, query string) ([]entity.Recipient, error)
	QuoteSpecific(amount int) (*entity.Quote, error)
	QuoteBulk(amount int) (*entity.Quote, error)
	DonateToUser(ctx context.Context, donorID string, in DonationInput) (*DonationResult, error)
	DonateBulk(ctx context.Context, donorID string, amount int) (*DonationResult, error)
	History(ctx context.Context, donorID string) ([]models.Donation, error)
}

type donationUseCase struct {
	donationRepo persistent.DonationRepository
	userRepo     persistent.UserRepository
	submitter    *Submitter
	publisher    queue.Publisher
	messages     messenger
	logger       *logger.Logger
	now          func() time.Time
}

func NewDonationUseCase(
	donationRepo persistent.DonationRepository,
	userRepo persistent.UserRepository,
	prefRepo persistent.PreferenceRepository,
	bundle *i18n.Bundle,
	submitter *Submitter,
	publisher queue.Publisher,
	logger *logger.Logger,
) DonationUseCase {
	return &donationUseCase{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		submitter:    submitter,
		publisher:    publisher,
		messages:     messenger{bundle: bundle, prefs: prefRepo},
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *donationUseCase) Featured() []entity.Recipient {
	return entity.FeaturedUsers()
}

// recipients lists featured users followed by registered ones, one per email.
func (uc *donationUseCase) recipients(ctx context.Context) ([]entity.Recipient, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	all := entity.FeaturedUsers()
	seen := make(map[string]bool, len(all)+len(users))
	for _, r := range all {
		seen[strings.ToLower(r.Email)] = true
	}
	for _, u := range users {
		email := strings.ToLower(u.Email)
		if seen[email] {
			continue
		}
		seen[email] = true

		name := u.FullName()
		avatar := ""
		if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
			avatar = strings.ToUpper(string(r))
		}
		all = append(all, entity.Recipient{ID: u.ID, Name: name, Email: u.Email, Avatar: avatar})
	}
	return all, nil
}

// Search matches name or email case-insensitively. Queries under two
// characters return nothing.
func (uc *donationUseCase) Search(ctx context.Context, query string) ([]entity.Recipient, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < minSearchQueryRunes {
		return []entity.Recipient{}, nil
	}

	all, err := uc.recipients(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.Recipient, 0)
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Name), query) || strings.Contains(strings.ToLower(r.Email), query) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (uc *donationUseCase) QuoteSpecific(amount int) (*entity.Quote, error) {
	if amount <= 0 {
		return nil, validation.Failure("amount", MsgSelectAmount)
	}
	q, ok := entity.SpecificQuote(amount)
	if !ok {
		return nil, validation.Failure("amount", MsgInvalidCustom)
	}
	return &q, nil
}

func (uc *donationUseCase) QuoteBulk(amount int) (*entity.Quote, error) {
	q, ok := entity.BulkQuote(amount)
	if !ok {
		return nil, validation.Failure("amount", MsgInvalidBulk)
	}
	return &q, nil
}

func (uc *donationUseCase) findRecipient(ctx context.Context, id string) (*entity.Recipient, error) {
	all, err := uc.recipients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (uc *donationUseCase) DonateToUser(ctx context.Context, donorID string, in DonationInput) (*DonationResult, error) {
	if in.RecipientID == "" {
		return nil, validation.Failure("recipientId", MsgSelectRecipient)
	}
	if in.Amount <= 0 {
		return nil, validation.Failure("amount", MsgSelectAmount)
	}
	recipient, err := uc.findRecipient(ctx, in.RecipientID)
	if err != nil {
		return nil, err
	}
	quote, err := uc.QuoteSpecific(in.Amount)
	if err != nil {
		return nil, err
	}

	donation := &models.Donation{
		DonorID:       donorID,
		RecipientID:   recipient.ID,
		RecipientName: recipient.Name,
	}
	if err := uc.donate(ctx, donorID, donation, *quote); err != nil {
		return nil, err
	}

	return &DonationResult{
		Donation: donation,
		Message: uc.messages.render(ctx, donorID, "donation.donation_success", map[string]string{
			"user":   recipient.Name,
			"amount": strconv.Itoa(quote.Memberships),
		}),
	}, nil
}

func (uc *donationUseCase) DonateBulk(ctx context.Context, donorID string, amount int) (*DonationResult, error) {
	if amount <= 0 {
		return nil, validation.Failure("amount", MsgSelectAmount)
	}
	quote, err := uc.QuoteBulk(amount)
	if err != nil {
		return nil, err
	}

	donation := &models.Donation{DonorID: donorID}
	if err := uc.donate(ctx, donorID, donation, *quote); err != nil {
		return nil, err
	}

	return &DonationResult{
		Donation: donation,
		Message: uc.messages.render(ctx, donorID, "donation.bulk_donation_success", map[string]string{
			"amount": strconv.Itoa(quote.Memberships),
		}),
	}, nil
}

// donate waits out the payment delay and appends the ledger entry. The
// membership flows take no card form, so only recipient and amount are checked.
func (uc *donationUseCase) donate(ctx context.Context, donorID string, donation *models.Donation, quote entity.Quote) error {
	err := uc.submitter.Run(ctx, latch.Key("donation", donorID), nil,
		func(ctx context.Context) error {
			donation.Kind = quote.Kind
			donation.Memberships = quote.Memberships
			donation.UnitPrice = quote.UnitPrice
			donation.TotalPrice = quote.TotalPrice
			donation.Discount = quote.Discount
			donation.CreatedAt = uc.now().UTC()
			return uc.donationRepo.Append(ctx, donation)
		},
	)
	if err != nil {
		return err
	}

	uc.logger.Info("Donation %s by %s: %d memberships", donation.ID, donorID, donation.Memberships)
	publish(uc.publisher, uc.logger, queue.EventDonationCompleted, donation)
	return nil
}

func (uc *donationUseCase) History(ctx context.Context, donorID string) ([]models.Donation, error) {
	return uc.donationRepo.ListByDonor(ctx, donorID)
}
