package post_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	"portfolio-content-service/internal/model"
	post_mock "portfolio-content-service/mocks/post"
)

func newDecoratorForTest() (Service, *post_mock.Service, *post_mock.PostCache) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	service := new(post_mock.Service)
	cache := new(post_mock.PostCache)
	return NewPostServiceCacheDecorator(service, cache, log, metrics), service, cache
}

func TestPostServiceCacheDecorator_GetPostByID(t *testing.T) {
	detailed := &model.PostDetailed{Post: &model.Post{ID: "post-1", Title: "Shoot"}}

	t.Run("cache hit skips the service", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		cache.On("GetPost", mock.Anything, "post-1").Return(detailed, nil)

		got, err := d.GetPostByID(context.Background(), "post-1")
		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
		service.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		cache.On("GetPost", mock.Anything, "post-1").Return(nil, custom_errors.ErrCacheMiss)
		service.On("GetPostByID", mock.Anything, "post-1").Return(detailed, nil)
		cache.On("SetPost", mock.Anything, detailed).Return(nil)

		got, err := d.GetPostByID(context.Background(), "post-1")
		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure degrades to the service", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		cache.On("GetPost", mock.Anything, "post-1").Return(nil, assert.AnError)
		service.On("GetPostByID", mock.Anything, "post-1").Return(detailed, nil)
		cache.On("SetPost", mock.Anything, detailed).Return(assert.AnError)

		got, err := d.GetPostByID(context.Background(), "post-1")
		assert.NoError(t, err)
		assert.Equal(t, detailed, got)
	})

	t.Run("service error is surfaced", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		cache.On("GetPost", mock.Anything, "missing").Return(nil, custom_errors.ErrCacheMiss)
		service.On("GetPostByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		_, err := d.GetPostByID(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		cache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})
}

func TestPostServiceCacheDecorator_Writes(t *testing.T) {
	detailed := &model.PostDetailed{Post: &model.Post{ID: "post-1"}}

	t.Run("create refreshes the cache", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		service.On("CreatePost", mock.Anything, mock.AnythingOfType("*model.CreatePostDTO")).Return(detailed, nil)
		cache.On("SetPost", mock.Anything, detailed).Return(nil)

		_, err := d.CreatePost(context.Background(), &model.CreatePostDTO{Title: "Shoot"})
		assert.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("update refreshes the cache", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		service.On("UpdatePost", mock.Anything, "post-1", mock.AnythingOfType("*model.UpdatePostDTO")).Return(detailed, nil)
		cache.On("SetPost", mock.Anything, detailed).Return(nil)

		_, err := d.UpdatePost(context.Background(), "post-1", &model.UpdatePostDTO{})
		assert.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("delete invalidates even when the cache errors", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		service.On("DeletePost", mock.Anything, "post-1").Return(nil)
		cache.On("DeletePost", mock.Anything, "post-1").Return(assert.AnError)

		err := d.DeletePost(context.Background(), "post-1")
		assert.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("service failure skips the cache", func(t *testing.T) {
		d, service, cache := newDecoratorForTest()
		service.On("DeletePost", mock.Anything, "post-1").Return(assert.AnError)

		err := d.DeletePost(context.Background(), "post-1")
		assert.Error(t, err)
		cache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})
}
