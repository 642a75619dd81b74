package http

import (
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
	logger        *logger.Logger
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase, logger *logger.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

// ListCourses godoc
// @Summary      Browse published courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search in title and description"
// @Param        level query string false "Level"
// @Param        category query string false "Category"
// @Success      200  {array}   models.Course
// @Failure      400  {object}  ErrorResponse
// @Router       /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var filter entity.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	courses, err := h.courseUseCase.Browse(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// MyCourses godoc
// @Summary      Courses of the current instructor, drafts included
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Course
// @Router       /courses/mine [get]
func (h *CourseHandler) MyCourses(c *gin.Context) {
	courses, err := h.courseUseCase.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  models.Course
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  Saves after the simulated delay. A second submit while saving is ignored with 202.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.CourseInput true "Course"
// @Success      201  {object}  models.Course
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req usecase.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.ID = ""

	course, err := h.courseUseCase.SaveCourse(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        request body usecase.CourseInput true "Course"
// @Success      200  {object}  models.Course
// @Success      202  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req usecase.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.ID = c.Param("id")

	course, err := h.courseUseCase.SaveCourse(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courseUseCase.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
