package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	category_repository "portfolio-content-service/internal/repository/category"
	media_repository "portfolio-content-service/internal/repository/media"
	post_repository "portfolio-content-service/internal/repository/post"
	"portfolio-content-service/internal/repository/postgres"
)

// PostService owns the post aggregate: the post row, its category links and
// its media collection change together inside one transaction, with the
// reconciler driving provider-side cleanup.
type PostService struct {
	postRepo     post_repository.Repository
	mediaRepo    media_repository.Repository
	categoryRepo category_repository.Repository
	uow          postgres.UnitOfWork
	reconciler   *MediaReconciler
	log          *logger.Logger
	metrics      metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	mediaRepo media_repository.Repository,
	categoryRepo category_repository.Repository,
	uow postgres.UnitOfWork,
	reconciler *MediaReconciler,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		mediaRepo:    mediaRepo,
		categoryRepo: categoryRepo,
		uow:          uow,
		reconciler:   reconciler,
		log:          log,
		metrics:      metrics,
	}
}

func (s *PostService) rollbackUnlessCommitted(ctx context.Context, tx postgres.Transaction, committed *bool) {
	if *committed || tx == nil {
		return
	}
	if err := tx.Rollback(ctx); err != nil {
		if strings.Contains(err.Error(), "tx is closed") || strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Debug("Transaction already closed during rollback", slog.String("error", err.Error()))
			return
		}
		s.log.Error("Failed to rollback transaction", slog.String("error", err.Error()))
	}
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()
	categoryRepo := tx.CategoryRepository()

	status := dto.Status
	if status == "" {
		status = model.PostStatusDraft
	}
	createdPost, err := postRepo.Create(ctx, &model.Post{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      status,
	})
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, err
	}

	// Unresolvable category ids are dropped, not reported.
	if len(dto.CategoryIDs) > 0 {
		if err = categoryRepo.ReplacePostCategories(ctx, createdPost.ID, dto.CategoryIDs); err != nil {
			s.log.Error("Failed to link categories", slog.String("post_id", createdPost.ID), slog.String("error", err.Error()))
			return nil, err
		}
	}

	var media []*model.Media
	if len(dto.Media) > 0 {
		toPersist := s.reconciler.Reconcile(ctx, nil, dto.Media)
		if err = mediaRepo.Attach(ctx, createdPost.ID, toPersist); err != nil {
			s.log.Error("Failed to attach media", slog.String("post_id", createdPost.ID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrMediaAttachFailed
		}
		if media, err = mediaRepo.GetByPost(ctx, createdPost.ID); err != nil {
			s.log.Error("Failed to load attached media", slog.String("post_id", createdPost.ID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrMediaQueryFailed
		}
	}

	categories, err := categoryRepo.FindByPost(ctx, createdPost.ID)
	if err != nil {
		s.log.Error("Failed to load post categories", slog.String("post_id", createdPost.ID), slog.String("error", err.Error()))
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("create", true)
	s.log.Debug("Created post aggregate",
		slog.String("id", createdPost.ID),
		slog.Int("media", len(media)),
		slog.Int("categories", len(categories)))
	return &model.PostDetailed{Post: createdPost, Media: media, Categories: categories}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id string) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	media, err := s.mediaRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load post media", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	categories, err := s.categoryRepo.FindByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load post categories", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("get", true)
	return &model.PostDetailed{Post: post, Media: media, Categories: categories}, nil
}

func (s *PostService) ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostDetailed, int, error) {
	posts, total, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, err
	}
	if len(posts) == 0 {
		return []*model.PostDetailed{}, total, nil
	}

	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	mediaByPost, err := s.mediaRepo.GetByPosts(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load media for posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrMediaQueryFailed
	}
	categoriesByPost, err := s.categoryRepo.FindByPosts(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load categories for posts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	detailed := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		detailed = append(detailed, &model.PostDetailed{
			Post:       post,
			Media:      mediaByPost[post.ID],
			Categories: categoriesByPost[post.ID],
		})
	}

	s.metrics.IncrementPostOperations("list", true)
	return detailed, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id string, dto *model.UpdatePostDTO) (result *model.PostDetailed, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()
	categoryRepo := tx.CategoryRepository()

	// Capture current media before any mutation: the reconciler diffs
	// against this snapshot.
	existingMedia, err := mediaRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load current media", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}

	updatedPost, err := postRepo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found during update", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	if dto.CategoryIDs != nil {
		if err = categoryRepo.ReplacePostCategories(ctx, id, *dto.CategoryIDs); err != nil {
			s.log.Error("Failed to replace categories", slog.String("id", id), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if dto.Media != nil {
		toPersist := s.reconciler.Reconcile(ctx, existingMedia, *dto.Media)

		if len(existingMedia) > 0 {
			oldIDs := make([]string, 0, len(existingMedia))
			for _, md := range existingMedia {
				oldIDs = append(oldIDs, md.ID)
			}
			if err = mediaRepo.Detach(ctx, oldIDs); err != nil {
				s.log.Error("Failed to detach old media", slog.String("id", id), slog.String("error", err.Error()))
				return nil, custom_errors.ErrMediaDetachFailed
			}
		}
		if len(toPersist) > 0 {
			if err = mediaRepo.Attach(ctx, id, toPersist); err != nil {
				s.log.Error("Failed to attach new media", slog.String("id", id), slog.String("error", err.Error()))
				return nil, custom_errors.ErrMediaAttachFailed
			}
		}
	}

	media, err := mediaRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load updated media", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	categories, err := categoryRepo.FindByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load updated categories", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("update", true)
	return &model.PostDetailed{Post: updatedPost, Media: media, Categories: categories}, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollbackUnlessCommitted(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	if _, err = postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found during deletion", slog.String("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to resolve post for deletion", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}

	media, err := mediaRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to load media for deletion", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrMediaQueryFailed
	}

	// Provider blobs go first, best-effort; the row delete cascades to the
	// media rows and join rows regardless of the remote outcome.
	s.reconciler.DeleteRemote(ctx, media)

	if err = postRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete post", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Debug("Deleted post aggregate", slog.String("id", id), slog.Int("media", len(media)))
	return nil
}

func (s *PostService) GetPostMedia(ctx context.Context, postID string) ([]*model.Media, error) {
	media, err := s.mediaRepo.GetByPost(ctx, postID)
	if err != nil {
		s.log.Error("Failed to load post media", slog.String("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	return media, nil
}
