package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/metrics"
	auth_service "portfolio-content-service/internal/service/auth"
)

const currentUserKey = "current_user"

// AuthMiddleware verifies the bearer token and stores the subject on the
// request context.
func AuthMiddleware(auth auth_service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		username, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.Set(currentUserKey, username)
		c.Next()
	}
}

// MetricsMiddleware records request counts and latencies per route. The
// route template is used as the path label to keep cardinality bounded.
func MetricsMiddleware(provider metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		provider.IncrementHTTPRequests(c.Request.Method, path, status)
		provider.RecordHTTPRequestDuration(c.Request.Method, path, status, time.Since(start))
	}
}
