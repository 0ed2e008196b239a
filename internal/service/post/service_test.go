package post_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	"portfolio-content-service/internal/model"
	category_repository_mock "portfolio-content-service/mocks/category"
	media_repository_mock "portfolio-content-service/mocks/media"
	post_repository_mock "portfolio-content-service/mocks/post"
	postgres_mock "portfolio-content-service/mocks/postgres"
	provider_mock "portfolio-content-service/mocks/provider"
)

type postServiceMocks struct {
	postRepo     *post_repository_mock.Repository
	mediaRepo    *media_repository_mock.Repository
	categoryRepo *category_repository_mock.Repository
	uow          *postgres_mock.UnitOfWork
	tx           *postgres_mock.Transaction
	storage      *provider_mock.MediaStorage
	video        *provider_mock.VideoPlatform
}

func newPostServiceForTest() (*PostService, *postServiceMocks) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	m := &postServiceMocks{
		postRepo:     new(post_repository_mock.Repository),
		mediaRepo:    new(media_repository_mock.Repository),
		categoryRepo: new(category_repository_mock.Repository),
		uow:          new(postgres_mock.UnitOfWork),
		tx:           new(postgres_mock.Transaction),
		storage:      new(provider_mock.MediaStorage),
		video:        new(provider_mock.VideoPlatform),
	}
	reconciler := NewMediaReconciler(m.storage, m.video, log, metrics)
	s := NewPostService(m.postRepo, m.mediaRepo, m.categoryRepo, m.uow, reconciler, log, metrics)
	return s, m
}

func (m *postServiceMocks) expectTransaction() {
	m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
	m.tx.On("PostRepository").Return(m.postRepo)
	m.tx.On("MediaRepository").Return(m.mediaRepo)
	m.tx.On("CategoryRepository").Return(m.categoryRepo)
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("success with categories and media", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		created := &model.Post{ID: "post-1", Title: "Shoot", Status: model.PostStatusDraft}
		persisted := []*model.Media{{ID: "m1", PostID: "post-1", PublicID: "pic", URL: "https://cdn/pic.jpg", Type: model.MediaTypeImage}}
		categories := []*model.Category{{ID: "c1", Name: "Weddings"}}

		m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(created, nil)
		m.categoryRepo.On("ReplacePostCategories", mock.Anything, "post-1", []string{"c1"}).Return(nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.Media")).Return(nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(persisted, nil)
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return(categories, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		got, err := s.CreatePost(context.Background(), &model.CreatePostDTO{
			Title:       "Shoot",
			CategoryIDs: []string{"c1"},
			Media:       []*model.MediaInput{{PublicID: "pic", SecureURL: "https://cdn/pic.jpg"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, created, got.Post)
		assert.Equal(t, persisted, got.Media)
		assert.Equal(t, categories, got.Categories)
		m.tx.AssertExpectations(t)
	})

	t.Run("defaults status to draft", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return p.Status == model.PostStatusDraft
		})).Return(&model.Post{ID: "post-1", Status: model.PostStatusDraft}, nil)
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return([]*model.Category{}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		_, err := s.CreatePost(context.Background(), &model.CreatePostDTO{Title: "Untitled"})
		assert.NoError(t, err)
		m.postRepo.AssertExpectations(t)
	})

	t.Run("attach failure rolls back", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: "post-1"}, nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.Media")).Return(assert.AnError)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := s.CreatePost(context.Background(), &model.CreatePostDTO{
			Title: "Shoot",
			Media: []*model.MediaInput{{PublicID: "pic", SecureURL: "https://cdn/pic.jpg"}},
		})

		assert.ErrorIs(t, err, custom_errors.ErrMediaAttachFailed)
		m.tx.AssertCalled(t, "Rollback", mock.Anything)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("begin failure", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.uow.On("Begin", mock.Anything).Return(nil, assert.AnError)

		_, err := s.CreatePost(context.Background(), &model.CreatePostDTO{Title: "Shoot"})
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, m := newPostServiceForTest()

		post := &model.Post{ID: "post-1", Title: "Shoot"}
		media := []*model.Media{{ID: "m1", PostID: "post-1"}}
		categories := []*model.Category{{ID: "c1", Name: "Portraits"}}

		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(post, nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(media, nil)
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return(categories, nil)

		got, err := s.GetPostByID(context.Background(), "post-1")
		assert.NoError(t, err)
		assert.Equal(t, post, got.Post)
		assert.Equal(t, media, got.Media)
		assert.Equal(t, categories, got.Categories)
	})

	t.Run("not found", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		_, err := s.GetPostByID(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	t.Run("assembles aggregates in batch", func(t *testing.T) {
		s, m := newPostServiceForTest()

		posts := []*model.Post{{ID: "p1"}, {ID: "p2"}}
		m.postRepo.On("List", mock.Anything, mock.AnythingOfType("model.PostFilters")).Return(posts, 2, nil)
		m.mediaRepo.On("GetByPosts", mock.Anything, []string{"p1", "p2"}).Return(map[string][]*model.Media{
			"p1": {{ID: "m1", PostID: "p1"}},
		}, nil)
		m.categoryRepo.On("FindByPosts", mock.Anything, []string{"p1", "p2"}).Return(map[string][]*model.Category{
			"p2": {{ID: "c1"}},
		}, nil)

		got, total, err := s.ListPosts(context.Background(), model.PostFilters{})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, got, 2)
		assert.Len(t, got[0].Media, 1)
		assert.Empty(t, got[0].Categories)
		assert.Len(t, got[1].Categories, 1)
	})

	t.Run("empty result short-circuits", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.postRepo.On("List", mock.Anything, mock.AnythingOfType("model.PostFilters")).Return([]*model.Post{}, 0, nil)

		got, total, err := s.ListPosts(context.Background(), model.PostFilters{})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, got)
		m.mediaRepo.AssertNotCalled(t, "GetByPosts", mock.Anything, mock.Anything)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("replaces media wholesale", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		existing := []*model.Media{{ID: "m1", PostID: "post-1", PublicID: "old", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary}}
		updated := &model.Post{ID: "post-1", Title: "Renamed"}

		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(existing, nil).Once()
		m.postRepo.On("Update", mock.Anything, "post-1", mock.AnythingOfType("*model.UpdatePostDTO")).Return(updated, nil)
		m.storage.On("Destroy", mock.Anything, "old", "image").Return(nil)
		m.mediaRepo.On("Detach", mock.Anything, []string{"m1"}).Return(nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.Media")).Return(nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.Media{{ID: "m2", PublicID: "fresh"}}, nil).Once()
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return([]*model.Category{}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		title := "Renamed"
		media := []*model.MediaInput{{PublicID: "fresh", SecureURL: "https://cdn/fresh.jpg"}}
		got, err := s.UpdatePost(context.Background(), "post-1", &model.UpdatePostDTO{Title: &title, Media: &media})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", got.Post.Title)
		assert.Len(t, got.Media, 1)
		assert.Equal(t, "fresh", got.Media[0].PublicID)
		m.storage.AssertExpectations(t)
		m.tx.AssertExpectations(t)
	})

	t.Run("empty media slice clears the collection", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		existing := []*model.Media{{ID: "m1", PostID: "post-1", PublicID: "old", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary}}

		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(existing, nil).Once()
		m.postRepo.On("Update", mock.Anything, "post-1", mock.AnythingOfType("*model.UpdatePostDTO")).Return(&model.Post{ID: "post-1"}, nil)
		m.storage.On("Destroy", mock.Anything, "old", "image").Return(nil)
		m.mediaRepo.On("Detach", mock.Anything, []string{"m1"}).Return(nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.Media{}, nil).Once()
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return([]*model.Category{}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		media := []*model.MediaInput{}
		got, err := s.UpdatePost(context.Background(), "post-1", &model.UpdatePostDTO{Media: &media})

		assert.NoError(t, err)
		assert.Empty(t, got.Media)
		m.mediaRepo.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
		m.storage.AssertExpectations(t)
	})

	t.Run("nil media leaves the collection alone", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		existing := []*model.Media{{ID: "m1", PostID: "post-1", PublicID: "old"}}

		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(existing, nil)
		m.postRepo.On("Update", mock.Anything, "post-1", mock.AnythingOfType("*model.UpdatePostDTO")).Return(&model.Post{ID: "post-1"}, nil)
		m.categoryRepo.On("FindByPost", mock.Anything, "post-1").Return([]*model.Category{}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		title := "Renamed"
		got, err := s.UpdatePost(context.Background(), "post-1", &model.UpdatePostDTO{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, existing, got.Media)
		m.mediaRepo.AssertNotCalled(t, "Detach", mock.Anything, mock.Anything)
		m.storage.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		m.mediaRepo.On("GetByPost", mock.Anything, "missing").Return([]*model.Media{}, nil)
		m.postRepo.On("Update", mock.Anything, "missing", mock.AnythingOfType("*model.UpdatePostDTO")).Return(nil, custom_errors.ErrPostNotFound)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		title := "Renamed"
		_, err := s.UpdatePost(context.Background(), "missing", &model.UpdatePostDTO{Title: &title})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("remote failure still deletes locally", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		media := []*model.Media{
			{ID: "m1", PublicID: "pic", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary},
			{ID: "m2", PublicID: "play-1", Type: model.MediaTypeVideo, Provider: model.ProviderMux,
				Metadata: map[string]any{model.MetadataAssetKey: "asset-1"}},
		}

		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(&model.Post{ID: "post-1"}, nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return(media, nil)
		m.storage.On("Destroy", mock.Anything, "pic", "image").Return(assert.AnError)
		m.video.On("DeleteAsset", mock.Anything, "asset-1").Return(nil)
		m.postRepo.On("Delete", mock.Anything, "post-1").Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		err := s.DeletePost(context.Background(), "post-1")
		assert.NoError(t, err)
		m.storage.AssertExpectations(t)
		m.video.AssertExpectations(t)
		m.tx.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		s, m := newPostServiceForTest()
		m.expectTransaction()

		m.postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		err := s.DeletePost(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		m.postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
