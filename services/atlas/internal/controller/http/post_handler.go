package http

import (
	"net/http"
	"strconv"

	"atlas/pkg/logger"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// Feed godoc
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Offset" default(0)
// @Success      200  {array}   models.Post
// @Router       /posts [get]
func (h *PostHandler) Feed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.postUseCase.Feed(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Publish a post
// @Description  Text, images or both. Images are URLs returned by /media.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), c.GetString("user_id"), req.Text, req.Images)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	liked, likes, err := h.postUseCase.ToggleLike(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Liked: liked, Likes: likes})
}

// CommentPost godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  models.Comment
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) CommentPost(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.postUseCase.Comment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
