package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/model"
)

const (
	defaultPostLimit     = 12
	defaultBookingLimit  = 10
	defaultCategoryLimit = 100
	maxLimit             = 100
)

// respondError maps sentinel errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body so storage details never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrMediaNotFound),
		errors.Is(err, custom_errors.ErrCategoryNotFound),
		errors.Is(err, custom_errors.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, custom_errors.ErrValidationFailed),
		errors.Is(err, custom_errors.ErrBookingTimeOrder),
		errors.Is(err, custom_errors.ErrBookingSlotTaken):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, custom_errors.ErrCategoryAlreadyExist):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, custom_errors.ErrInvalidCredentials),
		errors.Is(err, custom_errors.ErrInvalidToken):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.Is(err, custom_errors.ErrAuthNotConfigured),
		errors.Is(err, custom_errors.ErrProviderNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// pageParams reads skip/limit query params. Each resource brings its own
// default page size; out-of-range limits fall back to it.
func pageParams(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return skip, limit
}

func sortParams(c *gin.Context) (sortBy, sortOrder *string) {
	if v := c.Query("sort_by"); v != "" {
		sortBy = &v
	}
	if v := c.Query("sort_order"); v != "" {
		sortOrder = &v
	}
	return sortBy, sortOrder
}

func searchParam(c *gin.Context) *string {
	if v := c.Query("search"); v != "" {
		return &v
	}
	return nil
}

func paginated[T any](c *gin.Context, items []T, total, skip, limit int) {
	c.JSON(http.StatusOK, model.NewPaginatedResponse(items, total, skip, limit))
}
