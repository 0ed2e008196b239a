package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	post_service "portfolio-content-service/internal/service/post"
)

type PostHandler struct {
	posts    post_service.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewPostHandler(posts post_service.Service, validate *validator.Validate, log *logger.Logger) *PostHandler {
	return &PostHandler{posts: posts, validate: validate, log: log}
}

func (h *PostHandler) List(c *gin.Context) {
	skip, limit := pageParams(c, defaultPostLimit)
	filters := model.PostFilters{
		Search: searchParam(c),
		Limit:  &limit,
		Offset: &skip,
	}
	filters.SortBy, filters.SortOrder = sortParams(c)

	if v := c.Query("status"); v != "" {
		status := model.PostStatus(v)
		if status.IsValid() != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid status filter"})
			return
		}
		filters.Status = &status
	}
	if v := c.Query("category_id"); v != "" {
		filters.CategoryID = &v
	}

	posts, total, err := h.posts.ListPosts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	paginated(c, posts, total, skip, limit)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) GetMedia(c *gin.Context) {
	media, err := h.posts.GetPostMedia(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if media == nil {
		media = []*model.Media{}
	}
	c.JSON(http.StatusOK, media)
}

func (h *PostHandler) Create(c *gin.Context) {
	var dto model.CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if dto.Status != "" && dto.Status.IsValid() != nil {
		respondError(c, custom_errors.ErrValidationFailed)
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), &dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var dto model.UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if dto.Status != nil && dto.Status.IsValid() != nil {
		respondError(c, custom_errors.ErrValidationFailed)
		return
	}

	post, err := h.posts.UpdatePost(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
