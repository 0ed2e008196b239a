package media_service

import (
	"context"
	"errors"
	"log/slog"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	media_repository "portfolio-content-service/internal/repository/media"
	post_repository "portfolio-content-service/internal/repository/post"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/media --outpkg mocks --filename MediaService.go
type Service interface {
	// CreateMedia registers an already-uploaded blob as a standalone media
	// row on an existing post.
	CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error)
	GetMediaByID(ctx context.Context, id string) (*model.Media, error)
	// DeleteMedia removes the local row only; provider cleanup for
	// individually removed items is the caller's concern.
	DeleteMedia(ctx context.Context, id string) error
}

type MediaService struct {
	mediaRepo media_repository.Repository
	postRepo  post_repository.Repository
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewMediaService(mediaRepo media_repository.Repository, postRepo post_repository.Repository, log *logger.Logger, metrics metrics.MetricsProvider) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		postRepo:  postRepo,
		log:       log,
		metrics:   metrics,
	}
}

func (s *MediaService) CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error) {
	if err := media.Type.IsValid(); err != nil {
		return nil, custom_errors.ErrValidationFailed
	}
	if _, err := s.postRepo.GetByID(ctx, media.PostID); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for media create", slog.String("post_id", media.PostID))
			return nil, custom_errors.ErrPostNotFound
		}
		return nil, err
	}

	created, err := s.mediaRepo.Create(ctx, media)
	if err != nil {
		s.log.Error("Failed to create media", slog.String("post_id", media.PostID), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementMediaOperations("create", true)
	return created, nil
}

func (s *MediaService) GetMediaByID(ctx context.Context, id string) (*model.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrMediaNotFound) {
			return nil, custom_errors.ErrMediaNotFound
		}
		s.log.Error("Failed to get media", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return media, nil
}

func (s *MediaService) DeleteMedia(ctx context.Context, id string) error {
	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrMediaNotFound) {
			return custom_errors.ErrMediaNotFound
		}
		s.log.Error("Failed to delete media", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}
	s.metrics.IncrementMediaOperations("delete", true)
	return nil
}
