package post_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error)
}
