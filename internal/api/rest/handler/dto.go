package handler

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/password"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = 1_000_000
)

// passwordBytes rejects passwords the hasher cannot take. Length counts runes,
// the hasher counts bytes.
var passwordBytes = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if len(s) > password.MaxBytes {
		return errors.New("the length must be no more than 72 bytes")
	}
	return nil
})

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0), passwordBytes),
		validation.Field(&r.DisplayName, validation.Required, validation.Length(1, 100)),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r refreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type createPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

func (r createPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
	)
}

type updatePostRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"isPublished"`
}

func (r updatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
	)
}

type createCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

func (r createCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 5000)),
		validation.Field(&r.ParentID, validation.NilOrNotEmpty, is.UUID),
	)
}

type feedQuery struct {
	Page  int
	Limit int
}

func (q feedQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Required, validation.Min(1), validation.Max(maxPage)),
		validation.Field(&q.Limit, validation.Required, validation.Min(1), validation.Max(maxLimit)),
	)
}

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        model.Role `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type authorResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
}

func newAuthorResponse(a model.Author) authorResponse {
	return authorResponse{ID: a.ID, Email: a.Email, DisplayName: a.DisplayName}
}

type postResponse struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"authorId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	IsPublished bool      `json:"isPublished"`
	HasCover    bool      `json:"hasCover"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPostResponse(p model.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Summary:     p.Summary,
		IsPublished: p.IsPublished,
		HasCover:    p.HasCover(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type countResponse struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

type postViewResponse struct {
	postResponse
	Author  authorResponse `json:"author"`
	Count   countResponse  `json:"_count"`
	IsLiked bool           `json:"isLiked"`
}

func newPostViewResponse(v model.PostView) postViewResponse {
	return postViewResponse{
		postResponse: newPostResponse(v.Post),
		Author:       newAuthorResponse(v.Author),
		Count:        countResponse{Likes: v.LikeCount, Comments: v.CommentCount},
		IsLiked:      v.IsLiked,
	}
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type feedResponse struct {
	Data       []postViewResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func newFeedResponse(page model.FeedPage) feedResponse {
	data := make([]postViewResponse, len(page.Data))
	for i, v := range page.Data {
		data[i] = newPostViewResponse(v)
	}
	return feedResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      page.Pagination.Total,
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			TotalPages: page.Pagination.TotalPages,
		},
	}
}

type commentResponse struct {
	ID        uuid.UUID      `json:"id"`
	PostID    uuid.UUID      `json:"postId"`
	ParentID  *uuid.UUID     `json:"parentId"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	User      authorResponse `json:"user"`
}

func newCommentResponse(c model.CommentView) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      newAuthorResponse(c.User),
	}
}

type likeCountResponse struct {
	LikeCount int `json:"likeCount"`
}

type successResponse struct {
	Success bool `json:"success"`
}
