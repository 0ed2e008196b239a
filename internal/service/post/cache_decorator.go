package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
)

//go:generate mockery --name PostCache --dir . --output ../../../mocks/post --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, postID string) (*model.PostDetailed, error)
	SetPost(ctx context.Context, post *model.PostDetailed) error
	DeletePost(ctx context.Context, postID string) error
}

// PostServiceCacheDecorator caches assembled post aggregates around the
// service. Reads fill the cache, writes invalidate or refresh it; cache
// failures degrade to the underlying service, never to the caller.
type PostServiceCacheDecorator struct {
	service   Service
	postCache PostCache
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewPostServiceCacheDecorator(service Service, postCache PostCache, log *logger.Logger, metrics metrics.MetricsProvider) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, dto)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.String("post_id", result.Post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id string) (*model.PostDetailed, error) {
	start := time.Now()
	cached, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}
	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return post, nil
}

// ListPosts passes through: list results depend on filters and pagination,
// which the per-post cache does not key on.
func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostDetailed, int, error) {
	return d.service.ListPosts(ctx, filters)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, id string, dto *model.UpdatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.UpdatePost(ctx, id, dto)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to refresh cached post",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id string) error {
	if err := d.service.DeletePost(ctx, id); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate cached post",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}

func (d *PostServiceCacheDecorator) GetPostMedia(ctx context.Context, postID string) ([]*model.Media, error) {
	return d.service.GetPostMedia(ctx, postID)
}
