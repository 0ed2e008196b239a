package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	auth_service "portfolio-content-service/internal/service/auth"
	booking_service "portfolio-content-service/internal/service/booking"
	category_service "portfolio-content-service/internal/service/category"
	media_service "portfolio-content-service/internal/service/media"
	post_service "portfolio-content-service/internal/service/post"
)

type Handlers struct {
	Auth     *AuthHandler
	Posts    *PostHandler
	Media    *MediaHandler
	Category *CategoryHandler
	Booking  *BookingHandler
	Upload   *UploadHandler
}

// NewHandlers wires one handler per resource over the shared validator.
func NewHandlers(
	auth auth_service.Service,
	posts post_service.Service,
	media media_service.Service,
	categories category_service.Service,
	bookings booking_service.Service,
	upload *UploadHandler,
	authCfg config.Auth,
	log *logger.Logger,
) *Handlers {
	validate := validator.New()
	return &Handlers{
		Auth:     NewAuthHandler(auth, authCfg, log),
		Posts:    NewPostHandler(posts, validate, log),
		Media:    NewMediaHandler(media, validate, log),
		Category: NewCategoryHandler(categories, validate, log),
		Booking:  NewBookingHandler(bookings, validate, log),
		Upload:   upload,
	}
}

// NewRouter builds the gin engine with CORS, metrics, and the full route
// table. Mutating routes sit behind the auth middleware, except booking
// creation which stays public for visitors.
func NewRouter(h *Handlers, auth auth_service.Service, metricsProvider metrics.MetricsProvider, corsCfg config.CORS) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(MetricsMiddleware(metricsProvider))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsCfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := AuthMiddleware(auth)

	api := router.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/auth/me", requireAuth, h.Auth.Me)

		api.GET("/posts", h.Posts.List)
		api.GET("/posts/:id", h.Posts.Get)
		api.GET("/posts/:id/media", h.Posts.GetMedia)
		api.POST("/posts", requireAuth, h.Posts.Create)
		api.PUT("/posts/:id", requireAuth, h.Posts.Update)
		api.DELETE("/posts/:id", requireAuth, h.Posts.Delete)

		api.POST("/media", requireAuth, h.Media.Create)
		api.DELETE("/media/:id", requireAuth, h.Media.Delete)

		api.GET("/categories", h.Category.List)
		api.GET("/categories/:id", h.Category.Get)
		api.POST("/categories", requireAuth, h.Category.Create)
		api.DELETE("/categories/:id", requireAuth, h.Category.Delete)

		api.GET("/bookings", h.Booking.List)
		api.GET("/bookings/:id", h.Booking.Get)
		api.POST("/bookings", h.Booking.Create)
		api.PUT("/bookings/:id", requireAuth, h.Booking.Update)
		api.DELETE("/bookings/:id", requireAuth, h.Booking.Delete)

		api.POST("/upload/sign", requireAuth, h.Upload.Sign)
		api.POST("/upload/mux-url", requireAuth, h.Upload.MuxUploadURL)
	}

	return router
}

type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(cfg config.HTTPServer, router *gin.Engine, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler: router,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("HTTP server listening", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
