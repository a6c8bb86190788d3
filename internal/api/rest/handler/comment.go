package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/api/rest/response"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

// CommentService defines comment operations.
type CommentService interface {
	Create(ctx context.Context, params model.CreateCommentParams) (model.CommentView, error)
	List(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error)
	Delete(ctx context.Context, actorID, postID, commentID uuid.UUID) error
}

// Comment handles comment endpoints.
type Comment struct {
	commentService CommentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewComment creates a new Comment handler.
func NewComment(commentService CommentService, contextManager model.ContextManager, logger *logger.Logger) *Comment {
	return &Comment{
		commentService: commentService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Comment) Create(w http.ResponseWriter, r *http.Request) {
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

	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	params := model.CreateCommentParams{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, h.logger, fmt.Errorf("parentId must be a valid UUID: %w", model.ErrValidation))
			return
		}
		params.ParentID = &parentID
	}

	view, err := h.commentService.Create(r.Context(), params)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, newCommentResponse(view))
}

func (h *Comment) List(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	views, err := h.commentService.List(r.Context(), postID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]commentResponse, len(views))
	for i, v := range views {
		out[i] = newCommentResponse(v)
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *Comment) Delete(w http.ResponseWriter, r *http.Request) {
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
	commentID, err := pathUUID(r, "commentId")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.commentService.Delete(r.Context(), userID, postID, commentID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, successResponse{Success: true})
}
