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
	MsgProfileEmailMismatch = "El correo electrónico debe coincidir con tu correo de inicio de sesión"
	MsgEducationLevel       = "Selecciona un nivel educativo válido"

	PhotoKindAvatar = "photo"
	PhotoKindCover  = "cover"
)

type ProfileInput struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Career         string                `json:"career"`
	EducationLevel models.EducationLevel `json:"educationLevel"`
	Bio            string                `json:"bio"`
	Interests      []string              `json:"interests"`
}

type ProfileUseCase interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error)
	UploadPhoto(ctx context.Context, userID, kind string, file FileInput) (*models.Profile, error)
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	userRepo    persistent.UserRepository
	media       MediaUseCase
	submitter   *Submitter
	logger      *logger.Logger
	now         func() time.Time
}

func NewProfileUseCase(
	profileRepo persistent.ProfileRepository,
	userRepo persistent.UserRepository,
	media MediaUseCase,
	submitter *Submitter,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		media:       media,
		submitter:   submitter,
		logger:      logger,
		now:         time.Now,
	}
}

// Get returns the stored profile or one derived from the account.
func (uc *profileUseCase) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := uc.profileRepo.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		Name:      user.FullName(),
		Email:     user.Email,
		Interests: models.DefaultInterests(),
	}, nil
}

func ValidateProfile(in ProfileInput, loginEmail string) *validation.Report {
	r := validation.NewReport()
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Career) == "" || in.EducationLevel == "" {
		return r.Add("profile", validation.Fail(validation.MsgRequiredFields))
	}
	r.Add("profile", validation.OK())

	if strings.TrimSpace(in.Email) != loginEmail {
		r.Add("email", validation.Fail(MsgProfileEmailMismatch))
	}
	if !in.EducationLevel.Valid() {
		r.Add("educationLevel", validation.Fail(MsgEducationLevel))
	}
	return r
}

func (uc *profileUseCase) Save(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Career:         strings.TrimSpace(in.Career),
		EducationLevel: in.EducationLevel,
		Bio:            strings.TrimSpace(in.Bio),
		Interests:      models.UniqueInterests(in.Interests),
		Photo:          current.Photo,
		CoverPhoto:     current.CoverPhoto,
	}

	err = uc.submitter.Run(ctx, latch.Key("profile", userID),
		func() error { return ValidateProfile(in, user.Email).Err() },
		func(ctx context.Context) error {
			profile.UpdatedAt = uc.now().UTC()
			return uc.profileRepo.Save(ctx, userID, profile)
		},
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadPhoto stores the image and points photo or coverPhoto at it.
func (uc *profileUseCase) UploadPhoto(ctx context.Context, userID, kind string, file FileInput) (*models.Profile, error) {
	if kind != PhotoKindAvatar && kind != PhotoKindCover {
		return nil, validation.Failure("kind", "Tipo de foto inválido")
	}

	profile, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.media.Upload(ctx, userID, file)
	if err != nil {
		return nil, err
	}

	if kind == PhotoKindCover {
		profile.CoverPhoto = uploaded.Ref()
	} else {
		profile.Photo = uploaded.Ref()
	}
	profile.UpdatedAt = uc.now().UTC()
	if err := uc.profileRepo.Save(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
