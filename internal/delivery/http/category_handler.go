package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	category_service "portfolio-content-service/internal/service/category"
)

type CategoryHandler struct {
	categories category_service.Service
	validate   *validator.Validate
	log        *logger.Logger
}

func NewCategoryHandler(categories category_service.Service, validate *validator.Validate, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, validate: validate, log: log}
}

func (h *CategoryHandler) List(c *gin.Context) {
	skip, limit := pageParams(c, defaultCategoryLimit)
	filters := model.CategoryFilters{
		Search: searchParam(c),
		Limit:  &limit,
		Offset: &skip,
	}
	filters.SortBy, filters.SortOrder = sortParams(c)

	categories, total, err := h.categories.ListCategories(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	paginated(c, categories, total, skip, limit)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.categories.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
