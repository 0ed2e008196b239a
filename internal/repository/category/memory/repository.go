package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

type CategoryRepository struct {
	log        *logger.Logger
	mu         sync.RWMutex
	categories map[string]*model.Category
	postLinks  map[string]map[string]struct{} // post id -> category ids
}

func NewCategoryRepository(log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		log:        log,
		categories: make(map[string]*model.Category),
		postLinks:  make(map[string]map[string]struct{}),
	}
}

func (c *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.categories {
		if existing.Name == name {
			c.log.Debug("Category name already taken (memory impl)", slog.String("name", name))
			return nil, custom_errors.ErrCategoryAlreadyExist
		}
	}

	category := &model.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	c.categories[category.ID] = category

	result := *category
	return &result, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, exists := c.categories[id]
	if !exists {
		c.log.Debug("Category not found by id (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrCategoryNotFound
	}

	result := *category
	return &result, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.categories[id]; !exists {
		c.log.Debug("Category not found during deletion (memory impl)", slog.String("id", id))
		return custom_errors.ErrCategoryNotFound
	}
	delete(c.categories, id)
	for _, links := range c.postLinks {
		delete(links, id)
	}
	return nil
}

func (c *CategoryRepository) List(ctx context.Context, filters model.CategoryFilters) ([]*model.Category, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []*model.Category
	for _, category := range c.categories {
		if filters.Search != nil && *filters.Search != "" &&
			!strings.Contains(strings.ToLower(category.Name), strings.ToLower(*filters.Search)) {
			continue
		}
		categoryCopy := *category
		matched = append(matched, &categoryCopy)
	}

	sortBy := "name"
	if filters.SortBy != nil {
		sortBy = *filters.SortBy
	}
	desc := filters.SortOrder != nil && strings.EqualFold(*filters.SortOrder, "desc")
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "created":
			less = matched[i].CreatedAt.Time.Before(matched[j].CreatedAt.Time)
		default:
			less = matched[i].Name < matched[j].Name
		}
		if desc {
			return !less
		}
		return less
	})

	total := len(matched)
	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset > total {
		offset = total
	}
	end := total
	if filters.Limit != nil && offset+*filters.Limit < total {
		end = offset + *filters.Limit
	}

	return matched[offset:end], total, nil
}

func (c *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*model.Category
	for _, id := range ids {
		if category, exists := c.categories[id]; exists {
			categoryCopy := *category
			result = append(result, &categoryCopy)
		}
	}
	return result, nil
}

func (c *CategoryRepository) FindByPost(ctx context.Context, postID string) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.categoriesOf(postID), nil
}

func (c *CategoryRepository) FindByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string][]*model.Category)
	for _, postID := range postIDs {
		if categories := c.categoriesOf(postID); len(categories) > 0 {
			result[postID] = categories
		}
	}
	return result, nil
}

func (c *CategoryRepository) ReplacePostCategories(ctx context.Context, postID string, categoryIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	links := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, exists := c.categories[id]; exists {
			links[id] = struct{}{}
		}
	}
	c.postLinks[postID] = links
	return nil
}

// categoriesOf expects the read lock to be held.
func (c *CategoryRepository) categoriesOf(postID string) []*model.Category {
	var result []*model.Category
	for id := range c.postLinks[postID] {
		if category, exists := c.categories[id]; exists {
			categoryCopy := *category
			result = append(result, &categoryCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
