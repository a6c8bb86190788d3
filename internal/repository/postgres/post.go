package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/quill-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

const postColumns = `p.id, p.author_id, p.title, p.slug, p.content, p.summary, p.is_published,
	p.cover_key, p.cover_content_type, p.created_at, p.updated_at`

const postViewSelect = `SELECT ` + postColumns + `,
	u.id, u.email, u.display_name,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
	FROM posts p JOIN users u ON u.id = p.author_id`

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func postFields(p *model.Post) []any {
	return []any{
		&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Summary, &p.IsPublished,
		&p.CoverKey, &p.CoverContentType, &p.CreatedAt, &p.UpdatedAt,
	}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(postFields(&post)...)
	return post, err
}

func scanPostView(row pgx.Row) (model.PostView, error) {
	var view model.PostView
	dest := append(postFields(&view.Post),
		&view.Author.ID, &view.Author.Email, &view.Author.DisplayName,
		&view.LikeCount, &view.CommentCount,
	)
	err := row.Scan(dest...)
	return view, err
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts AS p (id, author_id, title, slug, content, summary, is_published, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Slug, post.Content, post.Summary, post.IsPublished,
		post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Post{}, model.ErrConflict
		}
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetPublishedBySlug(ctx context.Context, slug string) (model.PostView, error) {
	query := postViewSelect + ` WHERE p.slug = $1 AND p.is_published`

	view, err := scanPostView(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PostView{}, model.ErrNotFound
		}
		return model.PostView{}, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return view, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) ListPublished(ctx context.Context, offset, limit int) ([]model.PostView, error) {
	query := postViewSelect + ` WHERE p.is_published ORDER BY p.created_at DESC, p.id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer rows.Close()

	views := make([]model.PostView, 0, limit)
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return views, nil
}

func (r *PostRepository) CountPublished(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE is_published`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count published posts: %w", err)
	}
	return total, nil
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `UPDATE posts AS p
			  SET title = $2, slug = $3, content = $4, summary = $5, is_published = $6, updated_at = $7
			  WHERE p.id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Summary, post.IsPublished, post.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Post{}, model.ErrConflict
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) SetCover(ctx context.Context, id uuid.UUID, key, contentType string) (model.Post, error) {
	query := `UPDATE posts AS p
			  SET cover_key = $2, cover_content_type = $3, updated_at = NOW()
			  WHERE p.id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query, id, key, contentType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to set post cover: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
