package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/provider"
)

// UploadHandler issues direct-upload credentials: signed params for the
// synchronous store, one-shot upload URLs for the video platform. Files never
// pass through this server.
type UploadHandler struct {
	storage provider.MediaStorage
	video   provider.VideoPlatform
	log     *logger.Logger
}

func NewUploadHandler(storage provider.MediaStorage, video provider.VideoPlatform, log *logger.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, video: video, log: log}
}

func (h *UploadHandler) Sign(c *gin.Context) {
	signature, err := h.storage.SignUpload(c.Query("folder"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, signature)
}

func (h *UploadHandler) MuxUploadURL(c *gin.Context) {
	upload, err := h.video.CreateDirectUpload(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}
