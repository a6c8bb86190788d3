package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/quill-server/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.CommentView, error) {
	query := `WITH c AS (
				INSERT INTO comments (id, post_id, user_id, parent_id, content, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id, post_id, user_id, parent_id, content, created_at
			  )
			  SELECT c.id, c.post_id, c.user_id, c.parent_id, c.content, c.created_at,
			  		 u.id, u.email, u.display_name
			  FROM c JOIN users u ON u.id = c.user_id`

	var view model.CommentView
	err := r.db.QueryRow(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.ParentID, comment.Content, comment.CreatedAt,
	).Scan(
		&view.ID, &view.PostID, &view.UserID, &view.ParentID, &view.Content, &view.CreatedAt,
		&view.User.ID, &view.User.Email, &view.User.DisplayName,
	)
	if err != nil {
		return model.CommentView{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return view, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	query := `SELECT id, post_id, user_id, parent_id, content, created_at FROM comments WHERE id = $1`

	var comment model.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.ParentID, &comment.Content, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error) {
	query := `SELECT c.id, c.post_id, c.user_id, c.parent_id, c.content, c.created_at,
					 u.id, u.email, u.display_name
			  FROM comments c JOIN users u ON u.id = c.user_id
			  WHERE c.post_id = $1
			  ORDER BY c.created_at DESC, c.id`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	views := make([]model.CommentView, 0)
	for rows.Next() {
		var view model.CommentView
		if err := rows.Scan(
			&view.ID, &view.PostID, &view.UserID, &view.ParentID, &view.Content, &view.CreatedAt,
			&view.User.ID, &view.User.Email, &view.User.DisplayName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return views, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
