package http

import (
	"context"
	"errors"
	"net/http"

	"atlas/pkg/logger"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps use case errors onto status codes.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Details: verr.Details()})
	case errors.Is(err, usecase.ErrSubmitInFlight):
		c.JSON(http.StatusAccepted, MessageResponse{Message: err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.MsgInvalidCredentials})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		log.Warn("Request %s %s cancelled by client", c.Request.Method, c.Request.URL.Path)
		c.Status(http.StatusRequestTimeout)
	default:
		log.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Solicitud inválida", Details: validation.ToDetails(err)})
}
