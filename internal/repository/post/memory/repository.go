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

type PostRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	posts map[string]*model.Post
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make(map[string]*model.Post),
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.log.Debug("Creating new post (memory impl)", slog.String("title", post.Title))

	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	newPost := &model.Post{
		ID:          uuid.New().String(),
		Title:       post.Title,
		Description: post.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found during update (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Description != nil {
		post.Description = update.Description
	}
	if update.Status != nil {
		post.Status = *update.Status
	}
	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		p.log.Debug("Post not found during deletion (memory impl)", slog.String("id", id))
		return custom_errors.ErrPostNotFound
	}
	delete(p.posts, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var matched []*model.Post
	for _, post := range p.posts {
		if filters.Status != nil && post.Status != *filters.Status {
			continue
		}
		if filters.Search != nil && *filters.Search != "" {
			needle := strings.ToLower(*filters.Search)
			title := strings.ToLower(post.Title)
			desc := ""
			if post.Description != nil {
				desc = strings.ToLower(*post.Description)
			}
			if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		postCopy := *post
		matched = append(matched, &postCopy)
	}

	sortBy := "created"
	if filters.SortBy != nil {
		sortBy = *filters.SortBy
	}
	desc := true
	if filters.SortOrder != nil {
		desc = strings.EqualFold(*filters.SortOrder, "desc")
	}
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "title":
			less = matched[i].Title < matched[j].Title
		case "status":
			less = matched[i].Status < matched[j].Status
		default:
			less = matched[i].CreatedAt.Time.Before(matched[j].CreatedAt.Time)
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
