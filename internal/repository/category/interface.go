package category_repository

import (
	"context"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryRepository.go
type Repository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters model.CategoryFilters) ([]*model.Category, int, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Category, error)
	FindByPost(ctx context.Context, postID string) ([]*model.Category, error)
	FindByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Category, error)
	ReplacePostCategories(ctx context.Context, postID string, categoryIDs []string) error
}
