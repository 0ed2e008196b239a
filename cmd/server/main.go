package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "portfolio-content-service/internal/cache/redis"
	"portfolio-content-service/internal/config"
	delivery_http "portfolio-content-service/internal/delivery/http"
	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	metrics_server "portfolio-content-service/internal/metrics/server"
	"portfolio-content-service/internal/provider/cloudinary"
	"portfolio-content-service/internal/provider/mux"
	booking_postgres "portfolio-content-service/internal/repository/booking/postgres"
	category_postgres "portfolio-content-service/internal/repository/category/postgres"
	media_postgres "portfolio-content-service/internal/repository/media/postgres"
	post_postgres "portfolio-content-service/internal/repository/post/postgres"
	"portfolio-content-service/internal/repository/postgres"
	auth_service "portfolio-content-service/internal/service/auth"
	booking_service "portfolio-content-service/internal/service/booking"
	category_service "portfolio-content-service/internal/service/category"
	media_service "portfolio-content-service/internal/service/media"
	post_service "portfolio-content-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
			log.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("Migrations applied")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	mediaRepo := media_postgres.NewMediaRepository(pool, log, metrics)
	categoryRepo := category_postgres.NewCategoryRepository(pool, log, metrics)
	bookingRepo := booking_postgres.NewBookingRepository(pool, log, metrics)

	cloudinaryClient := cloudinary.NewClient(cfg.Cloudinary, log, metrics)
	muxClient := mux.NewClient(cfg.Mux, log, metrics)
	reconciler := post_service.NewMediaReconciler(cloudinaryClient, muxClient, log, metrics)

	authService, err := auth_service.NewAuthService(cfg.Auth, log)
	if err != nil {
		log.Error("Failed to initialize auth service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	basePostService := post_service.NewPostService(postRepo, mediaRepo, categoryRepo, unitOfWork, reconciler, log, metrics)
	postService := post_service.NewPostServiceCacheDecorator(basePostService, postCache, log, metrics)
	mediaService := media_service.NewMediaService(mediaRepo, postRepo, log, metrics)
	categoryService := category_service.NewCategoryService(categoryRepo, log)
	bookingService := booking_service.NewBookingService(bookingRepo, unitOfWork, log, metrics)

	uploadHandler := delivery_http.NewUploadHandler(cloudinaryClient, muxClient, log)
	handlers := delivery_http.NewHandlers(authService, postService, mediaService, categoryService, bookingService, uploadHandler, cfg.Auth, log)
	router := delivery_http.NewRouter(handlers, authService, metrics, cfg.CORS)
	httpServer := delivery_http.NewServer(cfg.HTTPServer, router, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone
	log.Info("Servers stopped")
}

func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
