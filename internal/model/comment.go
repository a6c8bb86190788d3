package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommentStore defines persistence operations for comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (CommentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]CommentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Comment represents a stored comment on a post.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	CreatedAt time.Time
}

// CommentView is a comment joined with its author.
type CommentView struct {
	Comment
	User Author
}

// CreateCommentParams contains parameters to create a comment.
type CreateCommentParams struct {
	UserID   uuid.UUID
	PostID   uuid.UUID
	Content  string
	ParentID *uuid.UUID
}
