package category_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	category_repository_mock "portfolio-content-service/mocks/category"
)

func newCategoryServiceForTest() (*CategoryService, *category_repository_mock.Repository) {
	repo := new(category_repository_mock.Repository)
	return NewCategoryService(repo, logger.New("test")), repo
}

func TestCreateCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("Create", mock.Anything, "Weddings").Return(&model.Category{ID: "c1", Name: "Weddings"}, nil)

		created, err := svc.CreateCategory(context.Background(), "Weddings")
		require.NoError(t, err)
		assert.Equal(t, "Weddings", created.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("Create", mock.Anything, "Weddings").Return(nil, custom_errors.ErrCategoryAlreadyExist)

		_, err := svc.CreateCategory(context.Background(), "Weddings")
		assert.ErrorIs(t, err, custom_errors.ErrCategoryAlreadyExist)
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("GetByID", mock.Anything, "c1").Return(&model.Category{ID: "c1", Name: "Weddings"}, nil)

		category, err := svc.GetCategoryByID(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", category.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrCategoryNotFound)

		_, err := svc.GetCategoryByID(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
	})
}

func TestListCategories(t *testing.T) {
	svc, repo := newCategoryServiceForTest()
	filters := model.CategoryFilters{}
	repo.On("List", mock.Anything, filters).Return([]*model.Category{
		{ID: "c1", Name: "Portraits"},
		{ID: "c2", Name: "Weddings"},
	}, 2, nil)

	categories, total, err := svc.ListCategories(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, categories, 2)
}

func TestDeleteCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("Delete", mock.Anything, "c1").Return(nil)

		require.NoError(t, svc.DeleteCategory(context.Background(), "c1"))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newCategoryServiceForTest()
		repo.On("Delete", mock.Anything, "missing").Return(custom_errors.ErrCategoryNotFound)

		err := svc.DeleteCategory(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
	})
}
