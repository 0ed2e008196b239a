package category_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	category_repository "portfolio-content-service/internal/repository/category"
	"portfolio-content-service/internal/repository/category/memory"
)

func setupCategoryTest(t *testing.T) category_repository.Repository {
	t.Helper()
	return memory.NewCategoryRepository(logger.New("test"))
}

func TestCategoryRepository_Create(t *testing.T) {
	repo := setupCategoryTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Weddings")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Weddings", created.Name)

	_, err = repo.Create(ctx, "Weddings")
	assert.ErrorIs(t, err, custom_errors.ErrCategoryAlreadyExist)
}

func TestCategoryRepository_GetByIDAndDelete(t *testing.T) {
	repo := setupCategoryTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Portraits")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}

func TestCategoryRepository_List(t *testing.T) {
	repo := setupCategoryTest(t)
	ctx := context.Background()

	for _, name := range []string{"Weddings", "Portraits", "Events"} {
		_, err := repo.Create(ctx, name)
		require.NoError(t, err)
	}

	t.Run("sorted by name by default", func(t *testing.T) {
		categories, total, err := repo.List(ctx, model.CategoryFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, categories, 3)
		assert.Equal(t, "Events", categories[0].Name)
		assert.Equal(t, "Weddings", categories[2].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		search := "port"
		categories, total, err := repo.List(ctx, model.CategoryFilters{Search: &search})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Portraits", categories[0].Name)
	})
}

func TestCategoryRepository_PostLinks(t *testing.T) {
	repo := setupCategoryTest(t)
	ctx := context.Background()

	weddings, err := repo.Create(ctx, "Weddings")
	require.NoError(t, err)
	portraits, err := repo.Create(ctx, "Portraits")
	require.NoError(t, err)

	t.Run("replace links and find by post", func(t *testing.T) {
		// Unknown ids are dropped without error.
		err := repo.ReplacePostCategories(ctx, "post-1", []string{weddings.ID, portraits.ID, "unknown"})
		require.NoError(t, err)

		linked, err := repo.FindByPost(ctx, "post-1")
		require.NoError(t, err)
		require.Len(t, linked, 2)
		assert.Equal(t, "Portraits", linked[0].Name)
		assert.Equal(t, "Weddings", linked[1].Name)
	})

	t.Run("replace with empty clears", func(t *testing.T) {
		require.NoError(t, repo.ReplacePostCategories(ctx, "post-1", nil))

		linked, err := repo.FindByPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Empty(t, linked)
	})

	t.Run("find by posts", func(t *testing.T) {
		require.NoError(t, repo.ReplacePostCategories(ctx, "post-1", []string{weddings.ID}))
		require.NoError(t, repo.ReplacePostCategories(ctx, "post-2", []string{portraits.ID}))

		byPost, err := repo.FindByPosts(ctx, []string{"post-1", "post-2", "post-3"})
		require.NoError(t, err)
		assert.Len(t, byPost, 2)
		assert.Equal(t, "Weddings", byPost["post-1"][0].Name)
	})

	t.Run("deleting a category removes its links", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, weddings.ID))

		linked, err := repo.FindByPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Empty(t, linked)
	})
}

func TestCategoryRepository_FindByIDs(t *testing.T) {
	repo := setupCategoryTest(t)
	ctx := context.Background()

	weddings, err := repo.Create(ctx, "Weddings")
	require.NoError(t, err)

	found, err := repo.FindByIDs(ctx, []string{weddings.ID, "unknown"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Weddings", found[0].Name)
}
