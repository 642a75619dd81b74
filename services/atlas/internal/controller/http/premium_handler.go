package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	premiumUseCase usecase.PremiumUseCase
	logger         *logger.Logger
}

func NewPremiumHandler(premiumUseCase usecase.PremiumUseCase, logger *logger.Logger) *PremiumHandler {
	return &PremiumHandler{
		premiumUseCase: premiumUseCase,
		logger:         logger,
	}
}

type SubscribeRequest struct {
	Plan    models.BillingCycle     `json:"plan" binding:"required,oneof=monthly yearly"`
	Payment validation.PaymentInput `json:"payment"`
}

// Plans godoc
// @Summary      Premium plans with tax
// @Tags         premium
// @Produce      json
// @Success      200  {array}  entity.Plan
// @Router       /premium/plans [get]
func (h *PremiumHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.premiumUseCase.Plans())
}

// Status godoc
// @Summary      Premium status of the current user
// @Tags         premium
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.PremiumStatus
// @Router       /premium/status [get]
func (h *PremiumHandler) Status(c *gin.Context) {
	status, err := h.premiumUseCase.Status(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// StartTrial godoc
// @Summary      Start the 7 day free trial
// @Tags         premium
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  usecase.SubscriptionResult
// @Success      202  {object}  MessageResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /premium/trial [post]
func (h *PremiumHandler) StartTrial(c *gin.Context) {
	result, err := h.premiumUseCase.StartTrial(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Subscribe godoc
// @Summary      Pay for a premium plan
// @Description  The payment is simulated and succeeds once the card form is valid.
// @Tags         premium
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Plan and card"
// @Success      201  {object}  usecase.SubscriptionResult
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /premium/subscribe [post]
func (h *PremiumHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.premiumUseCase.Subscribe(c.Request.Context(), c.GetString("user_id"), req.Plan, req.Payment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
