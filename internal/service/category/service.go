package category_service

import (
	"context"
	"errors"
	"log/slog"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	category_repository "portfolio-content-service/internal/repository/category"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryService.go
type Service interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, filters model.CategoryFilters) ([]*model.Category, int, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryService struct {
	categoryRepo category_repository.Repository
	log          *logger.Logger
}

func NewCategoryService(categoryRepo category_repository.Repository, log *logger.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, log: log}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	created, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryAlreadyExist) {
			return nil, custom_errors.ErrCategoryAlreadyExist
		}
		s.log.Error("Failed to create category", slog.String("name", name), slog.String("error", err.Error()))
		return nil, err
	}
	return created, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			return nil, custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to get category", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, filters model.CategoryFilters) ([]*model.Category, int, error) {
	categories, total, err := s.categoryRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, 0, err
	}
	return categories, total, nil
}

// DeleteCategory removes the category; join rows cascade, posts stay.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			return custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to delete category", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}
	return nil
}
