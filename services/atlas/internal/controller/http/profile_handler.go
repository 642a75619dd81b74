package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary      Save the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.ProfileInput true "Profile"
// @Success      200  {object}  models.Profile
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req usecase.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.profileUseCase.Save(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPhoto godoc
// @Summary      Upload the profile or cover photo
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind query string false "Which photo" Enums(photo, cover)
// @Param        file formData file true "Image"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  ErrorResponse
// @Router       /profile/photo [post]
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	in, f, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	kind := c.DefaultQuery("kind", usecase.PhotoKindAvatar)
	profile, err := h.profileUseCase.UploadPhoto(c.Request.Context(), c.GetString("user_id"), kind, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
