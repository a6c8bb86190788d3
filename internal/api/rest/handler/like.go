package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/api/rest/response"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

// LikeService defines like toggling.
type LikeService interface {
	Like(ctx context.Context, userID, postID uuid.UUID) (int, error)
	Unlike(ctx context.Context, userID, postID uuid.UUID) (int, error)
}

// Like handles like endpoints.
type Like struct {
	likeService    LikeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewLike creates a new Like handler.
func NewLike(likeService LikeService, contextManager model.ContextManager, logger *logger.Logger) *Like {
	return &Like{
		likeService:    likeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Like) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.likeService.Like, http.StatusCreated)
}

func (h *Like) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.likeService.Unlike, http.StatusOK)
}

func (h *Like) toggle(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID, postID uuid.UUID) (int, error),
	status int,
) {
	userID, err := caller(h.contextManager, r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	postID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	count, err := op(r.Context(), userID, postID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, status, likeCountResponse{LikeCount: count})
}
