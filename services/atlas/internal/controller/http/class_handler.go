package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classUseCase usecase.ClassUseCase
	logger        *logger.Logger
}

func NewClassHandler(classUseCase usecase.ClassUseCase, logger *logger.Logger) *ClassHandler {
	return &ClassHandler{
		classUseCase: classUseCase,
		logger:        logger,
	}
}

// ListClasses godoc
// @Summary      Browse published classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search in title and description"
// @Param        level query string false "Level"
// @Param        category query string false "Category"
// @Success      200  {array}   models.Class
// @Failure      400  {object}  ErrorResponse
// @Router       /classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	var filter entity.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	classes, err := h.classUseCase.Browse(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// MyClasses godoc
// @Summary      Classes of the current instructor, drafts included
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Class
// @Router       /classes/mine [get]
func (h *ClassHandler) MyClasses(c *gin.Context) {
	classes, err := h.classUseCase.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary      Get a class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      200  {object}  models.Class
// @Failure      404  {object}  ErrorResponse
// @Router       /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// CreateClass godoc
// @Summary      Create a class
// @Description  Saves after the simulated delay. A second submit while saving is ignored with 202.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.ClassInput true "Class"
// @Success      201  {object}  models.Class
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req usecase.ClassInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.ID = ""

	class, err := h.classUseCase.SaveClass(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// UpdateClass godoc
// @Summary      Update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Param        request body usecase.ClassInput true "Class"
// @Success      200  {object}  models.Class
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /classes/{id} [put]
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req usecase.ClassInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.ID = c.Param("id")

	class, err := h.classUseCase.SaveClass(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// DeleteClass godoc
// @Summary      Delete a class
// @Tags         classes
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	if err := h.classUseCase.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
