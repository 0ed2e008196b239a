package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	booking_repository "portfolio-content-service/internal/repository/booking"
	booking_repository_postgres "portfolio-content-service/internal/repository/booking/postgres"
	category_repository "portfolio-content-service/internal/repository/category"
	category_repository_postgres "portfolio-content-service/internal/repository/category/postgres"
	media_repository "portfolio-content-service/internal/repository/media"
	media_repository_postgres "portfolio-content-service/internal/repository/media/postgres"
	post_repository "portfolio-content-service/internal/repository/post"
	post_repository_postgres "portfolio-content-service/internal/repository/post/postgres"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../mocks/postgres --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../mocks/postgres --outpkg mocks --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	MediaRepository() media_repository.Repository
	CategoryRepository() category_repository.Repository
	BookingRepository() booking_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.MetricsProvider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) MediaRepository() media_repository.Repository {
	return media_repository_postgres.NewMediaRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) CategoryRepository() category_repository.Repository {
	return category_repository_postgres.NewCategoryRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) BookingRepository() booking_repository.Repository {
	return booking_repository_postgres.NewBookingRepository(t.tx, t.log, t.metrics)
}
