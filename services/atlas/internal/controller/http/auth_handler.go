package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type ValidateFieldRequest struct {
	Value   string `json:"value"`
	Context string `json:"context" binding:"omitempty,oneof=registration login"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Validates every field, stores the account and returns a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body validation.RegistrationInput true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req validation.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authUseCase.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary      Login
// @Description  Authenticates with username or email and returns a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// ValidateField godoc
// @Summary      Validate a single form field
// @Description  Runs the validator the forms use while typing
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        field path string true "Field name" Enums(username, email, birthdate, password, name, lastname, schoolCode, institutionalEmail)
// @Param        request body ValidateFieldRequest true "Value and context"
// @Success      200  {object}  validation.Result
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/validate/{field} [post]
func (h *AuthHandler) ValidateField(c *gin.Context) {
	var req ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authUseCase.ValidateField(c.Request.Context(), c.Param("field"), req.Value, validation.ParseContext(req.Context))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me godoc
// @Summary      Get current user info
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
