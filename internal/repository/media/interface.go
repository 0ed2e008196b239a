package media_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/media --outpkg mocks --filename MediaRepository.go
type Repository interface {
	Attach(ctx context.Context, postID string, media []*model.Media) error
	Detach(ctx context.Context, mediaIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Media, error)
	GetByPost(ctx context.Context, postID string) ([]*model.Media, error)
	GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Media, error)
	Create(ctx context.Context, media *model.Media) (*model.Media, error)
	Delete(ctx context.Context, id string) error
}
