package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/provider"
	auth_mock "portfolio-content-service/mocks/auth"
	booking_mock "portfolio-content-service/mocks/booking"
	category_mock "portfolio-content-service/mocks/category"
	media_mock "portfolio-content-service/mocks/media"
	post_mock "portfolio-content-service/mocks/post"
	provider_mock "portfolio-content-service/mocks/provider"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerMocks struct {
	auth       *auth_mock.Service
	posts      *post_mock.Service
	media      *media_mock.Service
	categories *category_mock.Service
	bookings   *booking_mock.Service
	storage    *provider_mock.MediaStorage
	video      *provider_mock.VideoPlatform
}

func newRouterForTest() (*gin.Engine, *routerMocks) {
	log := logger.New("test")
	m := &routerMocks{
		auth:       new(auth_mock.Service),
		posts:      new(post_mock.Service),
		media:      new(media_mock.Service),
		categories: new(category_mock.Service),
		bookings:   new(booking_mock.Service),
		storage:    new(provider_mock.MediaStorage),
		video:      new(provider_mock.VideoPlatform),
	}
	upload := NewUploadHandler(m.storage, m.video, log)
	handlers := NewHandlers(m.auth, m.posts, m.media, m.categories, m.bookings, upload,
		config.Auth{TokenTTLHours: 168}, log)
	router := NewRouter(handlers, m.auth, prometheus_metrics.NewPrometheusMetricsProvider(),
		config.CORS{AllowedOrigins: []string{"http://localhost:5173"}})
	return router, m
}

func doJSON(router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Liveness(t *testing.T) {
	router, _ := newRouterForTest()

	rec := doJSON(router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router, _ := newRouterForTest()

		rec := doJSON(router, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("invalid token", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "bad-token").Return("", custom_errors.ErrInvalidToken)

		rec := doJSON(router, http.MethodGet, "/api/auth/me", "bad-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)

		rec := doJSON(router, http.MethodGet, "/api/auth/me", "good-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"admin"}`, rec.Body.String())
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("json credentials", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("Login", "admin", "secret").Return("signed-token", nil)

		rec := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "secret",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, float64(168*3600), body["expires_in"])
	})

	t.Run("form credentials", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("Login", "admin", "secret").Return("signed-token", nil)

		form := strings.NewReader("username=admin&password=secret")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("Login", "admin", "wrong").Return("", custom_errors.ErrInvalidCredentials)

		rec := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("missing password", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestPostRoutes(t *testing.T) {
	t.Run("list is public and paginated", func(t *testing.T) {
		router, m := newRouterForTest()
		m.posts.On("ListPosts", mock.Anything, mock.AnythingOfType("model.PostFilters")).
			Return([]*model.PostDetailed{{Post: &model.Post{ID: "p1", Title: "Shoot"}}}, 1, nil)

		rec := doJSON(router, http.MethodGet, "/api/posts?limit=10", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["total"])
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(10), body["page_size"])
		assert.Len(t, body["items"], 1)
	})

	t.Run("default page size", func(t *testing.T) {
		router, m := newRouterForTest()
		m.posts.On("ListPosts", mock.Anything, mock.AnythingOfType("model.PostFilters")).
			Return([]*model.PostDetailed{}, 0, nil)

		rec := doJSON(router, http.MethodGet, "/api/posts", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(12), body["page_size"])
	})

	t.Run("invalid status filter", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodGet, "/api/posts?status=bogus", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.posts.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
	})

	t.Run("get missing post", func(t *testing.T) {
		router, m := newRouterForTest()
		m.posts.On("GetPostByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		rec := doJSON(router, http.MethodGet, "/api/posts/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create requires auth", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodPost, "/api/posts", "", gin.H{"title": "Shoot"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		m.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("create with token", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.posts.On("CreatePost", mock.Anything, mock.AnythingOfType("*model.CreatePostDTO")).
			Return(&model.PostDetailed{Post: &model.Post{ID: "p1", Title: "Shoot"}}, nil)

		rec := doJSON(router, http.MethodPost, "/api/posts", "good-token", gin.H{"title": "Shoot"})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create without title fails validation", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)

		rec := doJSON(router, http.MethodPost, "/api/posts", "good-token", gin.H{"description": "no title"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("delete with token", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.posts.On("DeletePost", mock.Anything, "p1").Return(nil)

		rec := doJSON(router, http.MethodDelete, "/api/posts/p1", "good-token", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestBookingRoutes(t *testing.T) {
	t.Run("create is public", func(t *testing.T) {
		router, m := newRouterForTest()
		m.bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*model.CreateBookingDTO")).
			Return(&model.Booking{ID: "b1", Status: model.BookingStatusPending}, nil)

		rec := doJSON(router, http.MethodPost, "/api/bookings", "", gin.H{
			"client_name":  "Dana",
			"client_email": "dana@example.com",
			"start_time":   "2026-09-01T10:00:00Z",
			"end_time":     "2026-09-01T11:00:00Z",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid email is rejected before the service", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodPost, "/api/bookings", "", gin.H{
			"client_name":  "Dana",
			"client_email": "not-an-email",
			"start_time":   "2026-09-01T10:00:00Z",
			"end_time":     "2026-09-01T11:00:00Z",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("slot conflict maps to bad request", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.bookings.On("UpdateBooking", mock.Anything, "b1", mock.AnythingOfType("*model.UpdateBookingDTO")).
			Return(nil, custom_errors.ErrBookingSlotTaken)

		rec := doJSON(router, http.MethodPut, "/api/bookings/b1", "good-token", gin.H{"status": "confirmed"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update requires auth", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodPut, "/api/bookings/b1", "", gin.H{"status": "confirmed"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		m.bookings.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryRoutes(t *testing.T) {
	t.Run("duplicate name conflicts", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.categories.On("CreateCategory", mock.Anything, "Weddings").
			Return(nil, custom_errors.ErrCategoryAlreadyExist)

		rec := doJSON(router, http.MethodPost, "/api/categories", "good-token", gin.H{"name": "Weddings"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list is public", func(t *testing.T) {
		router, m := newRouterForTest()
		m.categories.On("ListCategories", mock.Anything, mock.AnythingOfType("model.CategoryFilters")).
			Return([]*model.Category{{ID: "c1", Name: "Weddings"}}, 1, nil)

		rec := doJSON(router, http.MethodGet, "/api/categories", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUploadRoutes(t *testing.T) {
	t.Run("sign requires auth", func(t *testing.T) {
		router, m := newRouterForTest()

		rec := doJSON(router, http.MethodPost, "/api/upload/sign", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		m.storage.AssertNotCalled(t, "SignUpload", mock.Anything)
	})

	t.Run("sign returns the signature", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.storage.On("SignUpload", "portfolio").Return(&provider.UploadSignature{
			Timestamp: 1700000000,
			Signature: "sig",
		}, nil)

		rec := doJSON(router, http.MethodPost, "/api/upload/sign?folder=portfolio", "good-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"timestamp":1700000000,"signature":"sig"}`, rec.Body.String())
	})

	t.Run("provider not configured is a server error", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.video.On("CreateDirectUpload", mock.Anything).Return(nil, custom_errors.ErrProviderNotConfigured)

		rec := doJSON(router, http.MethodPost, "/api/upload/mux-url", "good-token", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("mux upload url", func(t *testing.T) {
		router, m := newRouterForTest()
		m.auth.On("VerifyToken", "good-token").Return("admin", nil)
		m.video.On("CreateDirectUpload", mock.Anything).Return(&provider.DirectUpload{
			UploadURL: "https://storage.mux.com/upload-1",
			UploadID:  "upload-1",
			Status:    "waiting",
		}, nil)

		rec := doJSON(router, http.MethodPost, "/api/upload/mux-url", "good-token", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"upload_url":"https://storage.mux.com/upload-1","upload_id":"upload-1","status":"waiting"}`, rec.Body.String())
	})
}
