package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/model"
)

var _ model.LikeStore = (*LikeRepository)(nil)

type LikeRepository struct {
	db *Connection
}

func NewLikeRepository(db *Connection) *LikeRepository {
	return &LikeRepository{
		db: db,
	}
}

func (r *LikeRepository) Create(ctx context.Context, like model.Like) error {
	query := `INSERT INTO likes (id, user_id, post_id, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.PostID, like.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *LikeRepository) LikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	liked := make(map[uuid.UUID]struct{}, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	rows, err := r.db.Query(ctx, `SELECT post_id FROM likes WHERE user_id = $1 AND post_id = ANY($2)`, userID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked post: %w", err)
		}
		liked[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liked posts: %w", err)
	}

	return liked, nil
}
