package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/policy"
	"github.com/dtroode/quill-server/internal/sanitize"
	"github.com/dtroode/quill-server/internal/slug"
)

var coverContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

func coverKey(postID uuid.UUID) string {
	return "covers/" + postID.String()
}

type Post struct {
	postStore     model.PostStore
	likeStore     model.LikeStore
	storage       model.Storage
	sanitizer     *sanitize.Sanitizer
	slugs         *slug.Generator
	maxCoverBytes int64
	logger        *logger.Logger
	now           func() time.Time
}

func NewPost(
	postStore model.PostStore,
	likeStore model.LikeStore,
	storage model.Storage,
	sanitizer *sanitize.Sanitizer,
	slugs *slug.Generator,
	maxCoverBytes int64,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore:     postStore,
		likeStore:     likeStore,
		storage:       storage,
		sanitizer:     sanitizer,
		slugs:         slugs,
		maxCoverBytes: maxCoverBytes,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *Post) Create(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	content := s.sanitizer.PostContent(params.Content)
	if content == "" {
		return model.Post{}, fmt.Errorf("content is empty after sanitizing: %w", model.ErrValidation)
	}

	now := s.now().UTC()
	post := model.Post{
		ID:          uuid.New(),
		AuthorID:    params.AuthorID,
		Title:       params.Title,
		Slug:        s.slugs.Make(params.Title),
		Content:     content,
		Summary:     s.sanitizer.Summary(content),
		IsPublished: params.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.postStore.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", saved.ID,
		"author_id", saved.AuthorID)

	return saved, nil
}

// loadOwned fetches the post and checks the actor may perform action on it.
func (s *Post) loadOwned(ctx context.Context, actorID, postID uuid.UUID, action policy.Action) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, policy.Authorize(actorID, policy.Missing(policy.ResourcePost), action)
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	if err := policy.Authorize(actorID, policy.Post(post), action); err != nil {
		s.logger.Info("Post service: action denied",
			"post_id", postID,
			"actor_id", actorID,
			"action", action)
		return model.Post{}, err
	}

	return post, nil
}

func (s *Post) Update(ctx context.Context, actorID, postID uuid.UUID, params model.UpdatePostParams) (model.Post, error) {
	post, err := s.loadOwned(ctx, actorID, postID, policy.ActionUpdate)
	if err != nil {
		return model.Post{}, err
	}

	if params.Title != nil && *params.Title != post.Title {
		post.Title = *params.Title
		post.Slug = s.slugs.Make(post.Title)
	}
	if params.Content != nil {
		content := s.sanitizer.PostContent(*params.Content)
		if content == "" {
			return model.Post{}, fmt.Errorf("content is empty after sanitizing: %w", model.ErrValidation)
		}
		post.Content = content
		post.Summary = s.sanitizer.Summary(content)
	}
	if params.IsPublished != nil {
		post.IsPublished = *params.IsPublished
	}
	post.UpdatedAt = s.now().UTC()

	saved, err := s.postStore.Update(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

// Delete removes the post and returns it as it was. Comments and likes go
// with it; the cover object is removed best-effort.
func (s *Post) Delete(ctx context.Context, actorID, postID uuid.UUID) (model.Post, error) {
	post, err := s.loadOwned(ctx, actorID, postID, policy.ActionDelete)
	if err != nil {
		return model.Post{}, err
	}

	if err := s.postStore.Delete(ctx, post.ID); err != nil {
		return model.Post{}, fmt.Errorf("failed to delete post: %w", err)
	}

	if post.HasCover() {
		if err := s.storage.Delete(ctx, post.CoverKey); err != nil {
			s.logger.Warn("Post service: failed to remove cover of deleted post",
				"post_id", post.ID,
				"key", post.CoverKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Post service: post deleted",
		"post_id", post.ID)

	return post, nil
}

func (s *Post) ListMine(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	posts, err := s.postStore.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Feed returns one page of published posts, newest first. viewerID is
// uuid.Nil for anonymous callers.
func (s *Post) Feed(ctx context.Context, viewerID uuid.UUID, page model.PageRequest) (model.FeedPage, error) {
	total, err := s.postStore.CountPublished(ctx)
	if err != nil {
		return model.FeedPage{}, fmt.Errorf("failed to count posts: %w", err)
	}

	views, err := s.postStore.ListPublished(ctx, page.Offset(), page.Limit)
	if err != nil {
		return model.FeedPage{}, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := s.markLiked(ctx, viewerID, views); err != nil {
		return model.FeedPage{}, err
	}

	return model.FeedPage{
		Data:       views,
		Pagination: model.NewPagination(page, total),
	}, nil
}

func (s *Post) GetBySlug(ctx context.Context, viewerID uuid.UUID, postSlug string) (model.PostView, error) {
	view, err := s.postStore.GetPublishedBySlug(ctx, postSlug)
	if err != nil {
		return model.PostView{}, fmt.Errorf("failed to get post %q: %w", postSlug, err)
	}

	views := []model.PostView{view}
	if err := s.markLiked(ctx, viewerID, views); err != nil {
		return model.PostView{}, err
	}

	return views[0], nil
}

func (s *Post) markLiked(ctx context.Context, viewerID uuid.UUID, views []model.PostView) error {
	if viewerID == uuid.Nil || len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}

	liked, err := s.likeStore.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return fmt.Errorf("failed to load viewer likes: %w", err)
	}

	for i := range views {
		_, views[i].IsLiked = liked[views[i].ID]
	}

	return nil
}

func (s *Post) UploadCover(ctx context.Context, actorID, postID uuid.UUID, params model.UploadCoverParams, body io.Reader) (model.Post, error) {
	if _, ok := coverContentTypes[params.ContentType]; !ok {
		return model.Post{}, fmt.Errorf("unsupported cover type %q: %w", params.ContentType, model.ErrValidation)
	}
	if params.Size <= 0 {
		return model.Post{}, fmt.Errorf("cover is empty: %w", model.ErrValidation)
	}
	if params.Size > s.maxCoverBytes {
		return model.Post{}, fmt.Errorf("cover exceeds %d bytes: %w", s.maxCoverBytes, model.ErrTooLarge)
	}

	post, err := s.loadOwned(ctx, actorID, postID, policy.ActionUploadCover)
	if err != nil {
		return model.Post{}, err
	}

	key := coverKey(post.ID)
	if err := s.storage.Upload(ctx, key, params.ContentType, params.Size, body); err != nil {
		return model.Post{}, fmt.Errorf("failed to upload cover: %w", err)
	}

	saved, err := s.postStore.SetCover(ctx, post.ID, key, params.ContentType)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to record cover: %w", err)
	}

	s.logger.Info("Post service: cover uploaded",
		"post_id", post.ID,
		"size", params.Size)

	return saved, nil
}

// GetCover opens the cover image of a published post.
func (s *Post) GetCover(ctx context.Context, postSlug string) (model.Cover, error) {
	view, err := s.postStore.GetPublishedBySlug(ctx, postSlug)
	if err != nil {
		return model.Cover{}, fmt.Errorf("failed to get post %q: %w", postSlug, err)
	}
	if !view.HasCover() {
		return model.Cover{}, fmt.Errorf("post %q has no cover: %w", postSlug, model.ErrNotFound)
	}

	body, err := s.storage.Download(ctx, view.CoverKey)
	if err != nil {
		return model.Cover{}, fmt.Errorf("failed to download cover: %w", err)
	}

	return model.Cover{ContentType: view.CoverContentType, Body: body}, nil
}
