package category_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type CategoryRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewCategoryRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *CategoryRepository {
	return &CategoryRepository{db: db, log: log, metrics: metrics}
}

func (c *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"id":         uuid.New().String(),
		"name":       name,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `INSERT INTO categories (id, name, created_at)
		VALUES (@id, @name, @created_at)
		RETURNING id, name, created_at`

	var created model.Category
	err := c.db.QueryRow(ctx, query, args).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_create", false)
		c.metrics.RecordDatabaseQueryDuration("category_create", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			c.log.Debug("Category name already taken", slog.String("name", name))
			return nil, custom_errors.ErrCategoryAlreadyExist
		}
		c.log.Error("Error creating category", slog.String("name", name), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	c.metrics.IncrementDatabaseQueries("category_create", true)
	c.metrics.RecordDatabaseQueryDuration("category_create", time.Since(start))
	c.log.Debug("Successfully created category", slog.String("id", created.ID), slog.String("name", created.Name))
	return &created, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	start := time.Now()
	var category model.Category
	err := c.db.QueryRow(ctx, `SELECT id, name, created_at FROM categories WHERE id = @id`, pgx.NamedArgs{"id": id}).
		Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_get_by_id", false)
		c.metrics.RecordDatabaseQueryDuration("category_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by id", slog.String("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		c.log.Error("Error getting category by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	c.metrics.IncrementDatabaseQueries("category_get_by_id", true)
	c.metrics.RecordDatabaseQueryDuration("category_get_by_id", time.Since(start))
	return &category, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := c.db.Exec(ctx, `DELETE FROM categories WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_delete", false)
		c.metrics.RecordDatabaseQueryDuration("category_delete", time.Since(start))
		c.log.Error("Error deleting category", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		c.metrics.IncrementDatabaseQueries("category_delete", false)
		c.metrics.RecordDatabaseQueryDuration("category_delete", time.Since(start))
		c.log.Debug("Category not found during deletion", slog.String("id", id))
		return custom_errors.ErrCategoryNotFound
	}
	c.metrics.IncrementDatabaseQueries("category_delete", true)
	c.metrics.RecordDatabaseQueryDuration("category_delete", time.Since(start))
	return nil
}

var sortColumns = map[string]string{
	"name":    "name",
	"created": "created_at",
}

func (c *CategoryRepository) List(ctx context.Context, filters model.CategoryFilters) ([]*model.Category, int, error) {
	start := time.Now()

	args := pgx.NamedArgs{}
	where := ""
	if filters.Search != nil && *filters.Search != "" {
		where = " WHERE name ILIKE @search"
		args["search"] = "%" + *filters.Search + "%"
	}

	orderBy := " ORDER BY name ASC"
	if filters.SortBy != nil {
		if col, ok := sortColumns[*filters.SortBy]; ok {
			direction := "ASC"
			if filters.SortOrder != nil && strings.EqualFold(*filters.SortOrder, "desc") {
				direction = "DESC"
			}
			orderBy = " ORDER BY " + col + " " + direction
		}
	}

	query := `SELECT id, name, created_at FROM categories` + where + orderBy
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_list", false)
		c.metrics.RecordDatabaseQueryDuration("category_list", time.Since(start))
		c.log.Error("Error listing categories", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	categories, err := c.collect(rows)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_list", false)
		c.metrics.RecordDatabaseQueryDuration("category_list", time.Since(start))
		return nil, 0, err
	}

	countArgs := make(pgx.NamedArgs)
	for k, v := range args {
		if k != "limit" && k != "offset" {
			countArgs[k] = v
		}
	}
	var total int
	err = c.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, countArgs).Scan(&total)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_list", false)
		c.metrics.RecordDatabaseQueryDuration("category_list", time.Since(start))
		c.log.Error("Error counting categories", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("category_list", true)
	c.metrics.RecordDatabaseQueryDuration("category_list", time.Since(start))
	return categories, total, nil
}

func (c *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Category, error) {
	start := time.Now()
	rows, err := c.db.Query(ctx, `SELECT id, name, created_at FROM categories WHERE id = ANY(@ids)`, pgx.NamedArgs{"ids": ids})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_ids", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_ids", time.Since(start))
		c.log.Error("Error finding categories by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	categories, err := c.collect(rows)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_ids", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_ids", time.Since(start))
		return nil, err
	}
	c.metrics.IncrementDatabaseQueries("category_find_by_ids", true)
	c.metrics.RecordDatabaseQueryDuration("category_find_by_ids", time.Since(start))
	return categories, nil
}

func (c *CategoryRepository) FindByPost(ctx context.Context, postID string) ([]*model.Category, error) {
	start := time.Now()
	rows, err := c.db.Query(ctx,
		`SELECT c.id, c.name, c.created_at FROM categories c
		JOIN post_categories pc ON c.id = pc.category_id
		WHERE pc.post_id = @post_id`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_post", time.Since(start))
		c.log.Error("Error finding categories by post", slog.String("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	categories, err := c.collect(rows)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_post", time.Since(start))
		return nil, err
	}
	c.metrics.IncrementDatabaseQueries("category_find_by_post", true)
	c.metrics.RecordDatabaseQueryDuration("category_find_by_post", time.Since(start))
	return categories, nil
}

func (c *CategoryRepository) FindByPosts(ctx context.Context, postIDs []string) (map[string][]*model.Category, error) {
	start := time.Now()
	rows, err := c.db.Query(ctx,
		`SELECT pc.post_id, c.id, c.name, c.created_at FROM categories c
		JOIN post_categories pc ON c.id = pc.category_id
		WHERE pc.post_id = ANY(@post_ids)`,
		pgx.NamedArgs{"post_ids": postIDs})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_posts", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_posts", time.Since(start))
		c.log.Error("Error finding categories by posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	result := make(map[string][]*model.Category)
	for rows.Next() {
		var postID string
		var category model.Category
		if err := rows.Scan(&postID, &category.ID, &category.Name, &category.CreatedAt); err != nil {
			c.metrics.IncrementDatabaseQueries("category_find_by_posts", false)
			c.metrics.RecordDatabaseQueryDuration("category_find_by_posts", time.Since(start))
			return nil, custom_errors.ErrDatabaseQuery
		}
		result[postID] = append(result[postID], &category)
	}
	if err = rows.Err(); err != nil {
		c.metrics.IncrementDatabaseQueries("category_find_by_posts", false)
		c.metrics.RecordDatabaseQueryDuration("category_find_by_posts", time.Since(start))
		return nil, custom_errors.ErrDatabaseQuery
	}
	c.metrics.IncrementDatabaseQueries("category_find_by_posts", true)
	c.metrics.RecordDatabaseQueryDuration("category_find_by_posts", time.Since(start))
	return result, nil
}

// ReplacePostCategories swaps the post's full association set: existing join
// rows go away, the given category ids come in. Ids that do not resolve to a
// category row are dropped by the FK join, not reported.
func (c *CategoryRepository) ReplacePostCategories(ctx context.Context, postID string, categoryIDs []string) error {
	start := time.Now()

	_, err := c.db.Exec(ctx, `DELETE FROM post_categories WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_replace_post", false)
		c.metrics.RecordDatabaseQueryDuration("category_replace_post", time.Since(start))
		c.log.Error("Error clearing post categories", slog.String("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrCategoryLinkFailed
	}

	if len(categoryIDs) == 0 {
		c.metrics.IncrementDatabaseQueries("category_replace_post", true)
		c.metrics.RecordDatabaseQueryDuration("category_replace_post", time.Since(start))
		return nil
	}

	// Insert through a select so unknown ids silently drop out instead of
	// failing the whole transaction on a FK violation.
	_, err = c.db.Exec(ctx,
		`INSERT INTO post_categories (post_id, category_id)
		SELECT @post_id, id FROM categories WHERE id = ANY(@category_ids)
		ON CONFLICT DO NOTHING`,
		pgx.NamedArgs{"post_id": postID, "category_ids": categoryIDs})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("category_replace_post", false)
		c.metrics.RecordDatabaseQueryDuration("category_replace_post", time.Since(start))
		c.log.Error("Error linking post categories", slog.String("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrCategoryLinkFailed
	}

	c.metrics.IncrementDatabaseQueries("category_replace_post", true)
	c.metrics.RecordDatabaseQueryDuration("category_replace_post", time.Since(start))
	return nil
}

func (c *CategoryRepository) collect(rows pgx.Rows) ([]*model.Category, error) {
	var categories []*model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			c.log.Error("Error scanning category", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		c.log.Error("Error iterating category rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return categories, nil
}
