package http

import (
	"net/http"

	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EligibilityHandler struct {
	eligibilityUseCase usecase.EligibilityUseCase
}

func NewEligibilityHandler(eligibilityUseCase usecase.EligibilityUseCase) *EligibilityHandler {
	return &EligibilityHandler{eligibilityUseCase: eligibilityUseCase}
}

type InstitutionalEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// CheckSchool godoc
// @Summary      Check a school code for program eligibility
// @Tags         eligibility
// @Produce      json
// @Param        code path string true "School code, e.g. 21PES0001A"
// @Success      200  {object}  validation.SchoolResult
// @Router       /eligibility/school/{code} [get]
func (h *EligibilityHandler) CheckSchool(c *gin.Context) {
	c.JSON(http.StatusOK, h.eligibilityUseCase.CheckSchool(c.Param("code")))
}

// CheckInstitutionalEmail godoc
// @Summary      Check that an email belongs to an institution
// @Tags         eligibility
// @Accept       json
// @Produce      json
// @Param        request body InstitutionalEmailRequest true "Email"
// @Success      200  {object}  validation.Result
// @Failure      400  {object}  ErrorResponse
// @Router       /eligibility/institutional-email [post]
func (h *EligibilityHandler) CheckInstitutionalEmail(c *gin.Context) {
	var req InstitutionalEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.eligibilityUseCase.CheckInstitutionalEmail(req.Email))
}
