package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
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

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("title", post.Title))

	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	args := pgx.NamedArgs{
		"id":          uuid.New().String(),
		"title":       post.Title,
		"description": post.Description,
		"status":      status,
		"created_at":  now,
		"updated_at":  now,
	}

	query := `
		INSERT INTO posts (id, title, description, status, created_at, updated_at)
		VALUES (@id, @title, @description, @status, @created_at, @updated_at)
		RETURNING id, title, description, status, created_at, updated_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Title,
		&createdPost.Description,
		&createdPost.Status,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	p.log.Debug("Successfully created post", slog.String("id", createdPost.ID))
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.String("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, description, status, created_at, updated_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Status,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Updating post", slog.String("id", id), slog.Any("update_fields", map[string]bool{
		"title":       update.Title != nil,
		"description": update.Description != nil,
		"status":      update.Status != nil,
	}))

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Description != nil {
		setClauses = append(setClauses, "description = @description")
		args["description"] = *update.Description
	}
	if update.Status != nil {
		setClauses = append(setClauses, "status = @status")
		args["status"] = *update.Status
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, title, description, status, created_at, updated_at"

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.Title,
		&updatedPost.Description,
		&updatedPost.Status,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_update", true)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	p.log.Debug("Successfully updated post", slog.String("id", updatedPost.ID))
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	p.log.Debug("Deleting post", slog.String("id", id))
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		p.log.Error("Error deleting post", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		p.log.Debug("Post not found during deletion", slog.String("id", id))
		return custom_errors.ErrPostNotFound
	}
	p.metrics.IncrementDatabaseQueries("post_delete", true)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	return nil
}

// sortColumns is the allow-list for user-supplied sort_by values; anything
// else silently falls back to the default created_at DESC ordering.
var sortColumns = map[string]string{
	"title":   "p.title",
	"status":  "p.status",
	"created": "p.created_at",
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	start := time.Now()
	p.log.Debug("Listing posts with filters",
		slog.Any("status", filters.Status),
		slog.Any("category_id", filters.CategoryID),
		slog.Any("search", filters.Search),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	args := pgx.NamedArgs{}
	baseQuery := `SELECT DISTINCT p.id, p.title, p.description, p.status, p.created_at, p.updated_at FROM posts p`
	countQuery := `SELECT COUNT(DISTINCT p.id) FROM posts p`

	joins := ""
	if filters.CategoryID != nil {
		joins = ` JOIN post_categories pc ON p.id = pc.post_id`
	}

	whereClauses := []string{}
	if filters.Status != nil {
		whereClauses = append(whereClauses, "p.status = @status")
		args["status"] = *filters.Status
	}
	if filters.CategoryID != nil {
		whereClauses = append(whereClauses, "pc.category_id = @category_id")
		args["category_id"] = *filters.CategoryID
	}
	if filters.Search != nil && *filters.Search != "" {
		whereClauses = append(whereClauses, "(p.title ILIKE @search OR p.description ILIKE @search)")
		args["search"] = "%" + *filters.Search + "%"
	}

	where := ""
	if len(whereClauses) > 0 {
		where = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	orderBy := " ORDER BY p.created_at DESC"
	if filters.SortBy != nil {
		if col, ok := sortColumns[*filters.SortBy]; ok {
			direction := "DESC"
			if filters.SortOrder != nil && strings.EqualFold(*filters.SortOrder, "asc") {
				direction = "ASC"
			}
			orderBy = " ORDER BY " + col + " " + direction
		}
	}

	query := baseQuery + joins + where + orderBy
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.Status,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	countArgs := make(pgx.NamedArgs)
	for k, v := range args {
		if k != "limit" && k != "offset" {
			countArgs[k] = v
		}
	}

	var total int
	err = p.db.QueryRow(ctx, countQuery+joins+where, countArgs).Scan(&total)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	p.log.Debug("Retrieved posts in List", slog.Int("count", len(posts)), slog.Int("total", total))
	return posts, total, nil
}
