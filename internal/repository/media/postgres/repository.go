package media_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/repository/postgres/db"
)

const mediaColumns = `id, post_id, type, provider, public_id, url, duration, width, height, format, size, metadata, is_featured, display_order, created_at`

type MediaRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewMediaRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *MediaRepository {
	return &MediaRepository{db: db, log: log, metrics: metrics}
}

func scanMedia(row pgx.Row) (*model.Media, error) {
	var m model.Media
	err := row.Scan(
		&m.ID,
		&m.PostID,
		&m.Type,
		&m.Provider,
		&m.PublicID,
		&m.URL,
		&m.Duration,
		&m.Width,
		&m.Height,
		&m.Format,
		&m.Size,
		&m.Metadata,
		&m.IsFeatured,
		&m.DisplayOrder,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertArgs(postID string, md *model.Media) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            uuid.New().String(),
		"post_id":       postID,
		"type":          md.Type,
		"provider":      md.Provider,
		"public_id":     md.PublicID,
		"url":           md.URL,
		"duration":      md.Duration,
		"width":         md.Width,
		"height":        md.Height,
		"format":        md.Format,
		"size":          md.Size,
		"metadata":      md.Metadata,
		"is_featured":   md.IsFeatured,
		"display_order": md.DisplayOrder,
		"created_at":    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

const insertMediaQuery = `INSERT INTO media (id, post_id, type, provider, public_id, url, duration, width, height, format, size, metadata, is_featured, display_order, created_at)
		VALUES (@id, @post_id, @type, @provider, @public_id, @url, @duration, @width, @height, @format, @size, @metadata, @is_featured, @display_order, @created_at)`

func (m *MediaRepository) Attach(ctx context.Context, postID string, media []*model.Media) error {
	start := time.Now()

	var exists bool
	err := m.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = @post_id)`, pgx.NamedArgs{"post_id": postID}).Scan(&exists)
	if err != nil {
		m.metrics.IncrementDatabaseQueries("media_attach", false)
		m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
		m.log.Error("Failed to get post by id in Attach media", slog.String("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if !exists {
		m.metrics.IncrementDatabaseQueries("media_attach", false)
		m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
		m.log.Warn("Post not found during media attach", slog.String("post_id", postID))
		return custom_errors.ErrPostNotFound
	}

	batch := &pgx.Batch{}
	for _, md := range media {
		batch.Queue(insertMediaQuery, insertArgs(postID, md))
	}

	result := m.db.SendBatch(ctx, batch)
	defer func(result pgx.BatchResults) {
		err := result.Close()
		if err != nil {
			m.log.Error("Failed to close batch result in Attach media", slog.String("error", err.Error()), slog.String("post_id", postID))
		}
	}(result)

	if _, err := result.Exec(); err != nil {
		m.log.Error("Media attach failed", slog.String("error", err.Error()), slog.String("post_id", postID))
		m.metrics.IncrementDatabaseQueries("media_attach", false)
		m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
		return custom_errors.ErrMediaAttachFailed
	}
	m.metrics.IncrementDatabaseQueries("media_attach", true)
	m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
	return nil
}

func (m *MediaRepository) Detach(ctx context.Context, mediaIDs []string) error {
	start := time.Now()
	_, err := m.db.Exec(ctx, `DELETE FROM media WHERE id = ANY(@ids)`, pgx.NamedArgs{"ids": mediaIDs})
	if err != nil {
		m.log.Error("Media detach failed", slog.String("error", err.Error()), slog.Any("media_ids", mediaIDs))
		m.metrics.RecordDatabaseQueryDuration("media_detach", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_detach", false)
		return custom_errors.ErrMediaDetachFailed
	}
	m.metrics.RecordDatabaseQueryDuration("media_detach", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_detach", true)
	return nil
}

func (m *MediaRepository) GetByID(ctx context.Context, id string) (*model.Media, error) {
	start := time.Now()
	row := m.db.QueryRow(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = @id`, pgx.NamedArgs{"id": id})
	media, err := scanMedia(row)
	if err != nil {
		m.metrics.IncrementDatabaseQueries("media_get_by_id", false)
		m.metrics.RecordDatabaseQueryDuration("media_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			m.log.Debug("Media not found by id", slog.String("id", id))
			return nil, custom_errors.ErrMediaNotFound
		}
		m.log.Error("Error getting media by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	m.metrics.IncrementDatabaseQueries("media_get_by_id", true)
	m.metrics.RecordDatabaseQueryDuration("media_get_by_id", time.Since(start))
	return media, nil
}

// GetByPost returns a post's media in presentation order: featured first,
// then ascending display order.
func (m *MediaRepository) GetByPost(ctx context.Context, postID string) ([]*model.Media, error) {
	start := time.Now()
	rows, err := m.db.Query(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE post_id = @post_id ORDER BY is_featured DESC, display_order ASC`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		m.log.Error("Media query failed", slog.String("error", err.Error()), slog.String("post_id", postID))
		m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
		return nil, custom_errors.ErrMediaQueryFailed
	}
	defer rows.Close()

	var media []*model.Media
	for rows.Next() {
		item, err := scanMedia(rows)
		if err != nil {
			m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
			m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
		media = append(media, item)
	}
	if err = rows.Err(); err != nil {
		m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	m.log.Debug("Retrieved media for post", slog.String("post_id", postID), slog.Int("count", len(media)))
	m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_get_by_post", true)
	return media, nil
}

func (m *MediaRepository) GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Media, error) {
	start := time.Now()
	rows, err := m.db.Query(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE post_id = ANY(@post_ids) ORDER BY post_id, is_featured DESC, display_order ASC`,
		pgx.NamedArgs{"post_ids": postIDs})
	if err != nil {
		m.log.Error("Batch media query failed", slog.String("error", err.Error()), slog.Any("post_ids", postIDs))
		m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
		return nil, custom_errors.ErrMediaQueryFailed
	}
	defer rows.Close()

	result := make(map[string][]*model.Media)
	for rows.Next() {
		item, err := scanMedia(rows)
		if err != nil {
			m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
			m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
		result[item.PostID] = append(result[item.PostID], item)
	}
	if err = rows.Err(); err != nil {
		m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	m.log.Debug("Retrieved media for batch posts", slog.Int("post_count", len(result)))
	m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_get_by_posts", true)
	return result, nil
}

func (m *MediaRepository) Create(ctx context.Context, media *model.Media) (*model.Media, error) {
	start := time.Now()
	args := insertArgs(media.PostID, media)
	row := m.db.QueryRow(ctx, insertMediaQuery+` RETURNING `+mediaColumns, args)
	created, err := scanMedia(row)
	if err != nil {
		m.metrics.IncrementDatabaseQueries("media_create", false)
		m.metrics.RecordDatabaseQueryDuration("media_create", time.Since(start))
		m.log.Error("Error creating media", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	m.metrics.IncrementDatabaseQueries("media_create", true)
	m.metrics.RecordDatabaseQueryDuration("media_create", time.Since(start))
	m.log.Debug("Successfully created media", slog.String("id", created.ID), slog.String("post_id", created.PostID))
	return created, nil
}

func (m *MediaRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := m.db.Exec(ctx, `DELETE FROM media WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		m.metrics.IncrementDatabaseQueries("media_delete", false)
		m.metrics.RecordDatabaseQueryDuration("media_delete", time.Since(start))
		m.log.Error("Error deleting media", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		m.metrics.IncrementDatabaseQueries("media_delete", false)
		m.metrics.RecordDatabaseQueryDuration("media_delete", time.Since(start))
		m.log.Debug("Media not found during deletion", slog.String("id", id))
		return custom_errors.ErrMediaNotFound
	}
	m.metrics.IncrementDatabaseQueries("media_delete", true)
	m.metrics.RecordDatabaseQueryDuration("media_delete", time.Since(start))
	return nil
}
