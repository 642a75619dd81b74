package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/repo/persistent"
)

const (
	MsgVerificationRequired = "Por favor complete todos los campos requeridos"
	MsgAccountDigits        = "El número de cuenta solo debe contener dígitos"
	MsgCLABE                = "La CLABE debe tener exactamente 18 dígitos"
	MsgVerificationEmail    = "Por favor ingresa un correo electrónico válido"
)

// VerificationInput collects the academic, personal and banking steps.
// Banking fields are validated only; they are never stored.
type VerificationInput struct {
	EducationLevel string `json:"educationLevel"`
	Institution    string `json:"institution"`
	Field          string `json:"field"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BankName       string `json:"bankName"`
	AccountHolder  string `json:"accountHolder"`
	AccountNumber  string `json:"accountNumber"`
	CLABE          string `json:"clabe"`
}

type VerificationStatus struct {
	Verified bool                   `json:"verified"`
	Data     *models.InstructorData `json:"data,omitempty"`
}

type InstructorUseCase interface {
	Submit(ctx context.Context, userID string, in VerificationInput) (*models.InstructorData, error)
	Status(ctx context.Context, userID string) (*VerificationStatus, error)
	Reset(ctx context.Context, userID string) error
}

type instructorUseCase struct {
	instructorRepo persistent.InstructorRepository
	submitter      *Submitter
	logger         *logger.Logger
	now            func() time.Time
}

func NewInstructorUseCase(instructorRepo persistent.InstructorRepository, submitter *Submitter, logger *logger.Logger) InstructorUseCase {
	return &instructorUseCase{
		instructorRepo: instructorRepo,
		submitter:      submitter,
		logger:         logger,
		now:            time.Now,
	}
}

func ValidateVerification(in VerificationInput) *validation.Report {
	r := validation.NewReport()
	for _, v := range []string{
		in.EducationLevel, in.Institution, in.Field, in.Name, in.Email,
		in.Phone, in.BankName, in.AccountHolder, in.AccountNumber, in.CLABE,
	} {
		if strings.TrimSpace(v) == "" {
			return r.Add("verification", validation.Fail(MsgVerificationRequired))
		}
	}
	r.Add("verification", validation.OK())

	if !validation.IsEmail(in.Email) {
		r.Add("email", validation.Fail(MsgVerificationEmail))
	}
	if !validation.IsDigits(in.AccountNumber) {
		r.Add("accountNumber", validation.Fail(MsgAccountDigits))
	}
	if !validation.IsCLABE(in.CLABE) {
		r.Add("clabe", validation.Fail(MsgCLABE))
	}
	return r
}

func (uc *instructorUseCase) Submit(ctx context.Context, userID string, in VerificationInput) (*models.InstructorData, error) {
	var data *models.InstructorData
	err := uc.submitter.Run(ctx, latch.Key("verification", userID),
		func() error { return ValidateVerification(in).Err() },
		func(ctx context.Context) error {
			data = &models.InstructorData{
				EducationLevel:   strings.TrimSpace(in.EducationLevel),
				Institution:      strings.TrimSpace(in.Institution),
				Field:            strings.TrimSpace(in.Field),
				Name:             strings.TrimSpace(in.Name),
				Email:            strings.TrimSpace(in.Email),
				VerificationDate: uc.now().UTC(),
			}
			return uc.instructorRepo.MarkVerified(ctx, userID, data)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Instructor verified: %s", userID)
	return data, nil
}

func (uc *instructorUseCase) Status(ctx context.Context, userID string) (*VerificationStatus, error) {
	verified, err := uc.instructorRepo.IsVerified(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return &VerificationStatus{}, nil
	}

	data, err := uc.instructorRepo.GetData(ctx, userID)
	if err != nil && !errors.Is(err, persistent.ErrNotFound) {
		return nil, err
	}
	return &VerificationStatus{Verified: true, Data: data}, nil
}

func (uc *instructorUseCase) Reset(ctx context.Context, userID string) error {
	if err := uc.instructorRepo.Reset(ctx, userID); err != nil {
		return err
	}
	uc.logger.Info("Instructor verification reset for %s", userID)
	return nil
}
