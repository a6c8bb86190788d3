package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/policy"
)

type Like struct {
	likeStore model.LikeStore
	postStore model.PostStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewLike(likeStore model.LikeStore, postStore model.PostStore, logger *logger.Logger) *Like {
	return &Like{
		likeStore: likeStore,
		postStore: postStore,
		logger:    logger,
		now:       time.Now,
	}
}

// Like records that userID likes the post and returns the new like count.
func (s *Like) Like(ctx context.Context, userID, postID uuid.UUID) (int, error) {
	if err := s.authorize(ctx, userID, postID, policy.ActionCreate); err != nil {
		return 0, err
	}

	err := s.likeStore.Create(ctx, model.Like{
		ID:        uuid.New(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to like post: %w", err)
	}

	return s.count(ctx, postID)
}

// Unlike removes the like and returns the new like count.
func (s *Like) Unlike(ctx context.Context, userID, postID uuid.UUID) (int, error) {
	if err := s.authorize(ctx, userID, postID, policy.ActionDelete); err != nil {
		return 0, err
	}

	if err := s.likeStore.Delete(ctx, userID, postID); err != nil {
		return 0, fmt.Errorf("failed to unlike post: %w", err)
	}

	return s.count(ctx, postID)
}

func (s *Like) authorize(ctx context.Context, userID, postID uuid.UUID, action policy.Action) error {
	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	return policy.Authorize(userID, policy.Like(), action)
}

func (s *Like) count(ctx context.Context, postID uuid.UUID) (int, error) {
	n, err := s.likeStore.CountByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}
