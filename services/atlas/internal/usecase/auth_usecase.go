package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atlas/pkg/jwt"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// TestUser is seeded into an empty users slot so the app can be tried right away.
var TestUser = validation.RegistrationInput{
	Name:      "María",
	Lastname:  "González",
	Username:  "test",
	Birthdate: "15/03/2005",
	Email:     "test@atlas.com",
	Password:  "123456",
}

type AuthUseCase interface {
	Register(ctx context.Context, in validation.RegistrationInput) (*models.User, string, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	ValidateField(ctx context.Context, field, value string, vctx validation.Context) (validation.Result, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	EnsureTestUser(ctx context.Context) (bool, error)
}

type authUseCase struct {
	userRepo       persistent.UserRepository
	instructorRepo persistent.InstructorRepository
	jwtService     *jwt.Service
	publisher      queue.Publisher
	logger         *logger.Logger
	now            func() time.Time
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	instructorRepo persistent.InstructorRepository,
	jwtService *jwt.Service,
	publisher queue.Publisher,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:       userRepo,
		instructorRepo: instructorRepo,
		jwtService:     jwtService,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// trimRegistration strips surrounding spaces from the identity fields.
// The password is kept as typed.
func trimRegistration(in validation.RegistrationInput) validation.RegistrationInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Lastname = strings.TrimSpace(in.Lastname)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

func (uc *authUseCase) Register(ctx context.Context, in validation.RegistrationInput) (*models.User, string, error) {
	in = trimRegistration(in)
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load users: %w", err)
	}

	now := uc.now()
	if err := validation.RegistrationReport(in, users, now).Err(); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &models.User{
		Name:         in.Name,
		Lastname:     in.Lastname,
		Username:     in.Username,
		Birthdate:    in.Birthdate,
		Email:        in.Email,
		Password:     string(hashedPassword),
		RegisteredAt: now.UTC(),
	}

	// uniqueness is checked again under the slot lock
	err = uc.userRepo.Create(ctx, user, func(current []models.User) error {
		return validation.NewReport().
			Add("username", validation.Username(user.Username, validation.Registration, current)).
			Add("email", validation.Email(user.Email, validation.Registration, current)).
			Err()
	})
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, "", err
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(models.RoleStudent))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	public := user.Public()
	publish(uc.publisher, uc.logger, queue.EventUserRegistered, public)
	uc.logger.Info("User registered: id=%s username=%s", user.ID, user.Username)
	return public, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	identifier = strings.TrimSpace(identifier)

	report := validation.NewReport()
	if identifier == "" {
		report.Add("identifier", validation.Fail(MsgMissingIdentifier))
	}
	if password == "" {
		report.Add("password", validation.Fail(MsgMissingPassword))
	}
	if err := report.Err(); err != nil {
		return nil, "", err
	}

	user, err := uc.userRepo.GetByLogin(ctx, identifier)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	role := models.RoleStudent
	verified, err := uc.instructorRepo.IsVerified(ctx, user.ID)
	if err != nil {
		uc.logger.Warn("Failed to read instructor status for %s: %v", user.ID, err)
	} else if verified {
		role = models.RoleInstructor
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user.Public(), token, nil
}

// ValidateField runs one validator the way the forms do while the user types.
func (uc *authUseCase) ValidateField(ctx context.Context, field, value string, vctx validation.Context) (validation.Result, error) {
	switch field {
	case "username", "email":
		users, err := uc.userRepo.List(ctx)
		if err != nil {
			return validation.Result{}, fmt.Errorf("failed to load users: %w", err)
		}
		if field == "username" {
			return validation.Username(value, vctx, users), nil
		}
		return validation.Email(value, vctx, users), nil
	case "birthdate":
		return validation.Birthdate(value, uc.now()), nil
	case "password":
		return validation.Password(value), nil
	case "name", "lastname":
		return validation.Name(value), nil
	case "schoolCode":
		return validation.SchoolCode(value).Result, nil
	case "institutionalEmail":
		return validation.InstitutionalEmail(value), nil
	default:
		return validation.Result{}, validation.Failure("field", "Campo desconocido: "+field)
	}
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// EnsureTestUser registers TestUser when no user exists yet.
func (uc *authUseCase) EnsureTestUser(ctx context.Context) (bool, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}

	if _, _, err := uc.Register(ctx, TestUser); err != nil {
		return false, fmt.Errorf("failed to seed test user: %w", err)
	}
	uc.logger.Info("Seeded test user %s", TestUser.Username)
	return true, nil
}
