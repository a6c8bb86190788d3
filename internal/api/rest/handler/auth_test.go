package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quill-server/internal/mocks"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	user := model.User{
		ID:           uuid.New(),
		Email:        "writer@example.com",
		PasswordHash: "$2a$10$secret",
		DisplayName:  "Writer",
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, model.RegisterParams{
			Email:       "writer@example.com",
			Password:    "secret1",
			DisplayName: "Writer",
		}).Return(model.AuthResult{User: user, TokenPair: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}}, nil)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "writer@example.com", "password": "secret1", "displayName": "Writer"}, uuid.Nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
		body := decodeBody[authResponse](t, rec)
		assert.Equal(t, user.ID, body.User.ID)
		assert.Equal(t, "acc", body.AccessToken)
		assert.Equal(t, "ref", body.RefreshToken)
	})

	t.Run("invalid body never reaches service", func(t *testing.T) {
		svc := mocks.NewAuthService(t)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "not-an-email", "password": "123", "displayName": ""}, uuid.Nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("password over bcrypt byte limit", func(t *testing.T) {
		svc := mocks.NewAuthService(t)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		for _, pw := range []string{strings.Repeat("a", 73), strings.Repeat("é", 37)} {
			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register",
				map[string]string{"email": "writer@example.com", "password": pw, "displayName": "Writer"}, uuid.Nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorBody(t, rec).Message, "password")
		}
	})

	t.Run("multibyte password at the byte limit", func(t *testing.T) {
		pw := strings.Repeat("é", 36)
		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, mock.MatchedBy(func(p model.RegisterParams) bool {
			return p.Password == pw
		})).Return(model.AuthResult{User: user}, nil)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "writer@example.com", "password": pw, "displayName": "Writer"}, uuid.Nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, mock.Anything).Return(model.AuthResult{}, model.ErrConflict)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register",
			map[string]string{"email": "writer@example.com", "password": "secret1", "displayName": "Writer"}, uuid.Nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "email is already registered", errorBody(t, rec).Message)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{name: "bad credentials", svcErr: model.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMessage: "invalid credentials"},
		{name: "store down", svcErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("Login", mock.Anything, model.LoginParams{Email: "a@b.co", Password: "secret1"}).
				Return(model.AuthResult{}, tt.svcErr)

			h := NewAuth(svc, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login",
				map[string]string{"email": "a@b.co", "password": "secret1"}, uuid.Nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, errorBody(t, rec).Message)
		})
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, mock.Anything).Return(model.AuthResult{
			User:      model.User{ID: uuid.New(), Email: "a@b.co"},
			TokenPair: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
		}, nil)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "a@b.co", "password": "secret1"}, uuid.Nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "acc", decodeBody[authResponse](t, rec).AccessToken)
	})
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Refresh", mock.Anything, "old-refresh").
			Return(model.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, nil)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Refresh(rec, newRequest(t, http.MethodPost, "/api/auth/refresh",
			map[string]string{"refreshToken": "old-refresh"}, uuid.Nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[tokenPairResponse](t, rec)
		assert.Equal(t, "acc2", body.AccessToken)
		assert.Equal(t, "ref2", body.RefreshToken)
	})

	t.Run("rejected", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("Refresh", mock.Anything, "stale").Return(model.TokenPair{}, model.ErrUnauthorized)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Refresh(rec, newRequest(t, http.MethodPost, "/api/auth/refresh",
			map[string]string{"refreshToken": "stale"}, uuid.Nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid or expired refresh token", errorBody(t, rec).Message)
	})
}
