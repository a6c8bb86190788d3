package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/api/rest/response"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

// PostService defines post authoring, the public feed and cover images.
type PostService interface {
	Create(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	Update(ctx context.Context, actorID, postID uuid.UUID, params model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, actorID, postID uuid.UUID) (model.Post, error)
	ListMine(ctx context.Context, authorID uuid.UUID) ([]model.Post, error)
	Feed(ctx context.Context, viewerID uuid.UUID, page model.PageRequest) (model.FeedPage, error)
	GetBySlug(ctx context.Context, viewerID uuid.UUID, slug string) (model.PostView, error)
	UploadCover(ctx context.Context, actorID, postID uuid.UUID, params model.UploadCoverParams, body io.Reader) (model.Post, error)
	GetCover(ctx context.Context, slug string) (model.Cover, error)
}

// Post handles blog post endpoints.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	maxCoverBytes  int64
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, maxCoverBytes int64, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		maxCoverBytes:  maxCoverBytes,
		logger:         logger,
	}
}

func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := caller(h.contextManager, r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	post, err := h.postService.Create(r.Context(), model.CreatePostParams{
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, newPostResponse(post))
}

func (h *Post) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := caller(h.contextManager, r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	posts, err := h.postService.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = newPostResponse(p)
	}
	response.JSON(w, http.StatusOK, out)
}

func (h *Post) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	post, err := h.postService.Update(r.Context(), userID, postID, model.UpdatePostParams{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.postService.Delete(r.Context(), userID, postID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostResponse(post))
}

// UploadCover stores the raw request body as the post's cover image.
func (h *Post) UploadCover(w http.ResponseWriter, r *http.Request) {
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

	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, h.logger, fmt.Errorf("missing or invalid Content-Type: %w", model.ErrValidation))
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxCoverBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, h.logger, fmt.Errorf("cover exceeds %d bytes: %w", h.maxCoverBytes, model.ErrTooLarge))
			return
		}
		writeError(w, h.logger, fmt.Errorf("failed to read cover: %w", err))
		return
	}

	post, err := h.postService.UploadCover(r.Context(), userID, postID, model.UploadCoverParams{
		ContentType: contentType,
		Size:        int64(len(data)),
	}, bytes.NewReader(data))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostResponse(post))
}

func parseFeedQuery(r *http.Request) (feedQuery, error) {
	q := feedQuery{Page: defaultPage, Limit: defaultLimit}

	for name, dst := range map[string]*int{"page": &q.Page, "limit": &q.Limit} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return feedQuery{}, fmt.Errorf("%s must be an integer: %w", name, model.ErrValidation)
		}
		*dst = n
	}

	return q, q.Validate()
}

func (h *Post) Feed(w http.ResponseWriter, r *http.Request) {
	q, err := parseFeedQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	page, err := h.postService.Feed(r.Context(), viewer(h.contextManager, r), model.PageRequest{
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newFeedResponse(page))
}

func (h *Post) GetBySlug(w http.ResponseWriter, r *http.Request) {
	view, err := h.postService.GetBySlug(r.Context(), viewer(h.contextManager, r), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostViewResponse(view))
}

func (h *Post) GetCover(w http.ResponseWriter, r *http.Request) {
	cover, err := h.postService.GetCover(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	defer cover.Body.Close()

	w.Header().Set("Content-Type", cover.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, cover.Body); err != nil {
		h.logger.Warn("Post handler: cover stream interrupted",
			"error", err.Error())
	}
}
