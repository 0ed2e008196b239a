package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	media_service "portfolio-content-service/internal/service/media"
)

type MediaHandler struct {
	media    media_service.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewMediaHandler(media media_service.Service, validate *validator.Validate, log *logger.Logger) *MediaHandler {
	return &MediaHandler{media: media, validate: validate, log: log}
}

type createMediaRequest struct {
	PostID       string          `json:"post_id" validate:"required"`
	Type         model.MediaType `json:"type" validate:"required"`
	Provider     string          `json:"provider"`
	PublicID     string          `json:"public_id"`
	URL          string          `json:"url" validate:"required"`
	Duration     *float64        `json:"duration"`
	Width        *int32          `json:"width"`
	Height       *int32          `json:"height"`
	Format       *string         `json:"format"`
	Size         *int64          `json:"size"`
	Metadata     map[string]any  `json:"metadata"`
	IsFeatured   bool            `json:"is_featured"`
	DisplayOrder int32           `json:"display_order"`
}

func (h *MediaHandler) Create(c *gin.Context) {
	var req createMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.media.CreateMedia(c.Request.Context(), &model.Media{
		PostID:       req.PostID,
		Type:         req.Type,
		Provider:     req.Provider,
		PublicID:     req.PublicID,
		URL:          req.URL,
		Duration:     req.Duration,
		Width:        req.Width,
		Height:       req.Height,
		Format:       req.Format,
		Size:         req.Size,
		Metadata:     req.Metadata,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.media.DeleteMedia(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
