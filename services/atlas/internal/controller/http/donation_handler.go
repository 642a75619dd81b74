package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donationUseCase usecase.DonationUseCase
	logger          *logger.Logger
}

func NewDonationHandler(donationUseCase usecase.DonationUseCase, logger *logger.Logger) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
		logger:          logger,
	}
}

type QuoteQuery struct {
	Type   string `form:"type" binding:"required,oneof=specific bulk"`
	Amount int    `form:"amount"`
}

type BulkDonationRequest struct {
	Amount int `json:"amount"`
}

// Featured godoc
// @Summary      Featured users who can receive memberships
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Recipient
// @Router       /donations/featured [get]
func (h *DonationHandler) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, h.donationUseCase.Featured())
}

// SearchUsers godoc
// @Summary      Search recipients by name or email
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "At least 2 characters"
// @Success      200  {array}  entity.Recipient
// @Router       /donations/users [get]
func (h *DonationHandler) SearchUsers(c *gin.Context) {
	users, err := h.donationUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Quote godoc
// @Summary      Price a donation
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        type query string true "Donation type" Enums(specific, bulk)
// @Param        amount query int true "Memberships"
// @Success      200  {object}  entity.Quote
// @Failure      400  {object}  ErrorResponse
// @Router       /donations/quote [get]
func (h *DonationHandler) Quote(c *gin.Context) {
	var q QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	var (
		quote *entity.Quote
		err   error
	)
	if q.Type == "bulk" {
		quote, err = h.donationUseCase.QuoteBulk(q.Amount)
	} else {
		quote, err = h.donationUseCase.QuoteSpecific(q.Amount)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DonateToUser godoc
// @Summary      Donate memberships to one user
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.DonationInput true "Recipient and amount"
// @Success      201  {object}  usecase.DonationResult
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /donations/user [post]
func (h *DonationHandler) DonateToUser(c *gin.Context) {
	var req usecase.DonationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.donationUseCase.DonateToUser(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DonateBulk godoc
// @Summary      Donate memberships distributed among featured users
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkDonationRequest true "Number of memberships"
// @Success      201  {object}  usecase.DonationResult
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /donations/bulk [post]
func (h *DonationHandler) DonateBulk(c *gin.Context) {
	var req BulkDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.donationUseCase.DonateBulk(c.Request.Context(), c.GetString("user_id"), req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// History godoc
// @Summary      Donations made by the current user
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Donation
// @Router       /donations/history [get]
func (h *DonationHandler) History(c *gin.Context) {
	donations, err := h.donationUseCase.History(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}
