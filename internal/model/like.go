package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LikeStore defines persistence operations for likes.
type LikeStore interface {
	// Create inserts a like. A second like of the same post by the same user
	// yields ErrConflict.
	Create(ctx context.Context, like Like) error
	// Delete removes the user's like of the post, or returns ErrNotFound.
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	// LikedPostIDs returns the subset of postIDs the user has liked.
	LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// Like is a unique (user, post) pairing.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	CreatedAt time.Time
}
