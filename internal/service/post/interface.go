package post_service

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id string) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostDetailed, int, error)
	UpdatePost(ctx context.Context, id string, dto *model.UpdatePostDTO) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, id string) error
	GetPostMedia(ctx context.Context, postID string) ([]*model.Media, error)
}
