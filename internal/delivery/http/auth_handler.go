package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/logger"
	auth_service "portfolio-content-service/internal/service/auth"
)

type AuthHandler struct {
	auth auth_service.Service
	cfg  config.Auth
	log  *logger.Logger
}

func NewAuthHandler(auth auth_service.Service, cfg config.Auth, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg, log: log}
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   h.cfg.TokenTTLHours * 3600,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(currentUserKey)
	c.JSON(http.StatusOK, gin.H{"username": username})
}
