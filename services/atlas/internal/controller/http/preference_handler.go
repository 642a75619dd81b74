package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceUseCase usecase.PreferenceUseCase
	logger            *logger.Logger
}

func NewPreferenceHandler(preferenceUseCase usecase.PreferenceUseCase, logger *logger.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
		logger:            logger,
	}
}

// GetPreferences godoc
// @Summary      Theme and language of the current user
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.PreferenceSet
// @Router       /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferenceUseCase.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary      Change theme and/or language
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.PreferenceSet true "Fields to change"
// @Success      200  {object}  entity.PreferenceSet
// @Failure      400  {object}  ErrorResponse
// @Router       /preferences [put]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req entity.PreferenceSet
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prefs, err := h.preferenceUseCase.Update(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Translations godoc
// @Summary      UI strings for a locale
// @Description  Unknown locales are served in Spanish.
// @Tags         preferences
// @Produce      json
// @Param        locale path string true "Locale" Enums(es, en)
// @Success      200  {object}  usecase.Translations
// @Router       /translations/{locale} [get]
func (h *PreferenceHandler) Translations(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferenceUseCase.Translations(c.Param("locale")))
}
