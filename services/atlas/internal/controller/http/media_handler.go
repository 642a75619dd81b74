package http

import (
	"mime/multipart"
	"net/http"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// formFile opens the "file" part of a multipart request. The caller closes it.
func formFile(c *gin.Context) (usecase.FileInput, multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Selecciona un archivo"})
		return usecase.FileInput{}, nil, false
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No se pudo leer el archivo"})
		return usecase.FileInput{}, nil, false
	}

	return usecase.FileInput{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}, f, true
}

// Upload godoc
// @Summary      Upload a file
// @Description  Stores a course image, video or attachment. Maximum 5MB.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "File"
// @Success      201  {object}  entity.UploadedFile
// @Failure      400  {object}  ErrorResponse
// @Router       /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	in, f, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	uploaded, err := h.mediaUseCase.Upload(c.Request.Context(), c.GetString("user_id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, uploaded)
}
