package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/policy"
	"github.com/dtroode/quill-server/internal/sanitize"
)

type Comment struct {
	commentStore model.CommentStore
	postStore    model.PostStore
	sanitizer    *sanitize.Sanitizer
	logger       *logger.Logger
	now          func() time.Time
}

func NewComment(
	commentStore model.CommentStore,
	postStore model.PostStore,
	sanitizer *sanitize.Sanitizer,
	logger *logger.Logger,
) *Comment {
	return &Comment{
		commentStore: commentStore,
		postStore:    postStore,
		sanitizer:    sanitizer,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Comment) Create(ctx context.Context, params model.CreateCommentParams) (model.CommentView, error) {
	if _, err := s.postStore.GetByID(ctx, params.PostID); err != nil {
		return model.CommentView{}, fmt.Errorf("failed to get post: %w", err)
	}

	if params.ParentID != nil {
		parent, err := s.commentStore.GetByID(ctx, *params.ParentID)
		if err != nil {
			return model.CommentView{}, fmt.Errorf("failed to get parent comment: %w", err)
		}
		if parent.PostID != params.PostID {
			return model.CommentView{}, fmt.Errorf("parent comment is on another post: %w", model.ErrNotFound)
		}
	}

	content := s.sanitizer.PlainText(params.Content)
	if content == "" {
		return model.CommentView{}, fmt.Errorf("content is empty after sanitizing: %w", model.ErrValidation)
	}

	view, err := s.commentStore.Create(ctx, model.Comment{
		ID:        uuid.New(),
		PostID:    params.PostID,
		UserID:    params.UserID,
		ParentID:  params.ParentID,
		Content:   content,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return model.CommentView{}, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Debug("Comment service: comment created",
		"comment_id", view.ID,
		"post_id", view.PostID)

	return view, nil
}

func (s *Comment) List(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error) {
	views, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return views, nil
}

// Delete removes a comment. Only the author of the post the comment was left
// on may do this.
func (s *Comment) Delete(ctx context.Context, actorID, postID, commentID uuid.UUID) error {
	post, err := s.postStore.GetByID(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return policy.Authorize(actorID, policy.Missing(policy.ResourcePost), policy.ActionDelete)
	}
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	comment, err := s.commentStore.GetByID(ctx, commentID)
	if errors.Is(err, model.ErrNotFound) {
		return policy.Authorize(actorID, policy.Missing(policy.ResourceComment), policy.ActionDelete)
	}
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}

	if err := policy.Authorize(actorID, policy.Comment(comment, post), policy.ActionDelete); err != nil {
		s.logger.Info("Comment service: delete denied",
			"comment_id", commentID,
			"actor_id", actorID)
		return err
	}

	if err := s.commentStore.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
