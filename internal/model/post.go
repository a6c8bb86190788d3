package model

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	// Create inserts a post. A duplicate slug yields ErrConflict.
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (PostView, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Post, error)
	ListPublished(ctx context.Context, offset, limit int) ([]PostView, error)
	CountPublished(ctx context.Context) (int, error)
	// Update persists title, slug, content, summary and publish state.
	// A duplicate slug yields ErrConflict.
	Update(ctx context.Context, post Post) (Post, error)
	SetCover(ctx context.Context, id uuid.UUID, key, contentType string) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a stored blog post.
type Post struct {
	ID               uuid.UUID
	AuthorID         uuid.UUID
	Title            string
	Slug             string
	Content          string
	Summary          string
	IsPublished      bool
	CoverKey         string
	CoverContentType string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasCover reports whether a cover image was uploaded for the post.
func (p Post) HasCover() bool {
	return p.CoverKey != ""
}

// PostView is a post joined with its author and counters, annotated for a
// viewer.
type PostView struct {
	Post
	Author       Author
	LikeCount    int
	CommentCount int
	IsLiked      bool
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	AuthorID    uuid.UUID
	Title       string
	Content     string
	IsPublished bool
}

// UpdatePostParams contains a partial post update. Nil fields are unchanged.
type UpdatePostParams struct {
	Title       *string
	Content     *string
	IsPublished *bool
}

// UploadCoverParams contains a cover image upload.
type UploadCoverParams struct {
	ContentType string
	Size        int64
}

// Cover is an opened cover image. The caller must close Body.
type Cover struct {
	ContentType string
	Body        io.ReadCloser
}

// PageRequest is a 1-indexed page request.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt
// instead of wrapping, which yields an empty page.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Pagination describes the position of a page within a result set.
type Pagination struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPagination computes pagination metadata for total rows.
func NewPagination(req PageRequest, total int) Pagination {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}

// FeedPage is one page of the public feed.
type FeedPage struct {
	Data       []PostView
	Pagination Pagination
}
