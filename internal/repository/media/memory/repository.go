package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

type MediaRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	media map[string]*model.Media
}

func NewMediaRepository(log *logger.Logger) *MediaRepository {
	return &MediaRepository{
		log:   log,
		media: make(map[string]*model.Media),
	}
}

func (m *MediaRepository) Attach(ctx context.Context, postID string, media []*model.Media) error {
	m.log.Debug("Attaching media to post (memory impl)", slog.String("post_id", postID), slog.Int("count", len(media)))

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, md := range media {
		stored := *md
		stored.ID = uuid.New().String()
		stored.PostID = postID
		stored.CreatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
		m.media[stored.ID] = &stored
	}
	return nil
}

func (m *MediaRepository) Detach(ctx context.Context, mediaIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range mediaIDs {
		delete(m.media, id)
	}
	return nil
}

func (m *MediaRepository) GetByID(ctx context.Context, id string) (*model.Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	md, exists := m.media[id]
	if !exists {
		m.log.Debug("Media not found by id (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrMediaNotFound
	}

	result := *md
	return &result, nil
}

func (m *MediaRepository) GetByPost(ctx context.Context, postID string) ([]*model.Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.Media
	for _, md := range m.media {
		if md.PostID == postID {
			mdCopy := *md
			result = append(result, &mdCopy)
		}
	}
	sortPresentation(result)
	return result, nil
}

func (m *MediaRepository) GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := make(map[string]struct{}, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = struct{}{}
	}

	result := make(map[string][]*model.Media)
	for _, md := range m.media {
		if _, ok := wanted[md.PostID]; ok {
			mdCopy := *md
			result[md.PostID] = append(result[md.PostID], &mdCopy)
		}
	}
	for _, items := range result {
		sortPresentation(items)
	}
	return result, nil
}

func (m *MediaRepository) Create(ctx context.Context, media *model.Media) (*model.Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *media
	stored.ID = uuid.New().String()
	stored.CreatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	m.media[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (m *MediaRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.media[id]; !exists {
		m.log.Debug("Media not found during deletion (memory impl)", slog.String("id", id))
		return custom_errors.ErrMediaNotFound
	}
	delete(m.media, id)
	return nil
}

// sortPresentation orders media the way galleries render them: featured
// items first, then by display order.
func sortPresentation(items []*model.Media) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsFeatured != items[j].IsFeatured {
			return items[i].IsFeatured
		}
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
}
