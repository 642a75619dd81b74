package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InstructorHandler struct {
	instructorUseCase usecase.InstructorUseCase
	logger            *logger.Logger
}

func NewInstructorHandler(instructorUseCase usecase.InstructorUseCase, logger *logger.Logger) *InstructorHandler {
	return &InstructorHandler{
		instructorUseCase: instructorUseCase,
		logger:            logger,
	}
}

// Status godoc
// @Summary      Instructor verification status
// @Tags         instructor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.VerificationStatus
// @Router       /instructor/verification [get]
func (h *InstructorHandler) Status(c *gin.Context) {
	status, err := h.instructorUseCase.Status(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Submit godoc
// @Summary      Submit instructor verification
// @Description  Academic, personal and banking data. Banking data is checked and discarded.
// @Description  Log in again afterwards to receive a token with the instructor role.
// @Tags         instructor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.VerificationInput true "Verification form"
// @Success      201  {object}  models.InstructorData
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /instructor/verification [post]
func (h *InstructorHandler) Submit(c *gin.Context) {
	var req usecase.VerificationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	data, err := h.instructorUseCase.Submit(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, data)
}

// Reset godoc
// @Summary      Clear instructor verification
// @Tags         instructor
// @Security     BearerAuth
// @Success      204
// @Router       /instructor/verification [delete]
func (h *InstructorHandler) Reset(c *gin.Context) {
	if err := h.instructorUseCase.Reset(c.Request.Context(), c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
