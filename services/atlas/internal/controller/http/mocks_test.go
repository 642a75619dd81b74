package http

import (
	"context"

	"atlas/pkg/models"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withUser stands in for the auth middleware.
func withUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, in validation.RegistrationInput) (*models.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) ValidateField(ctx context.Context, field, value string, vctx validation.Context) (validation.Result, error) {
	args := m.Called(ctx, field, value, vctx)
	return args.Get(0).(validation.Result), args.Error(1)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthUseCase) EnsureTestUser(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) SaveCourse(ctx context.Context, userID string, in usecase.CourseInput) (*models.Course, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseUseCase) ListMine(ctx context.Context, userID string) ([]models.Course, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseUseCase) Browse(ctx context.Context, filter entity.CatalogFilter) ([]models.Course, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseUseCase) Get(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseUseCase) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var _ usecase.CourseUseCase = (*MockCourseUseCase)(nil)

type MockDonationUseCase struct {
	mock.Mock
}

func (m *MockDonationUseCase) Featured() []entity.Recipient {
	return m.Called().Get(0).([]entity.Recipient)
}

func (m *MockDonationUseCase) Search(ctx context.Context, query string) ([]entity.Recipient, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]entity.Recipient), args.Error(1)
}

func (m *MockDonationUseCase) QuoteSpecific(amount int) (*entity.Quote, error) {
	args := m.Called(amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quote), args.Error(1)
}

func (m *MockDonationUseCase) QuoteBulk(amount int) (*entity.Quote, error) {
	args := m.Called(amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quote), args.Error(1)
}

func (m *MockDonationUseCase) DonateToUser(ctx context.Context, donorID string, in usecase.DonationInput) (*usecase.DonationResult, error) {
	args := m.Called(ctx, donorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DonationResult), args.Error(1)
}

func (m *MockDonationUseCase) DonateBulk(ctx context.Context, donorID string, amount int) (*usecase.DonationResult, error) {
	args := m.Called(ctx, donorID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DonationResult), args.Error(1)
}

func (m *MockDonationUseCase) History(ctx context.Context, donorID string) ([]models.Donation, error) {
	args := m.Called(ctx, donorID)
	return args.Get(0).([]models.Donation), args.Error(1)
}

var _ usecase.DonationUseCase = (*MockDonationUseCase)(nil)
