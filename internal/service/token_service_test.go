package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/quill-server/internal/mocks"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/testutil"
)

func TestTokenService_IssuePair(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@b.c", DisplayName: "A", Role: model.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		tm := servermocks.NewTokenManager(t)
		tm.On("Issue", model.ClaimsFromUser(user), model.TokenKindAccess).Return("acc", nil)
		tm.On("Issue", model.ClaimsFromUser(user), model.TokenKindRefresh).Return("ref", nil)

		pair, err := NewTokenService(tm, testutil.MakeNoopLogger()).IssuePair(user)
		require.NoError(t, err)
		assert.Equal(t, model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, pair)
	})

	t.Run("access failure", func(t *testing.T) {
		tm := servermocks.NewTokenManager(t)
		tm.On("Issue", mock.Anything, model.TokenKindAccess).Return("", errors.New("sign"))

		_, err := NewTokenService(tm, testutil.MakeNoopLogger()).IssuePair(user)
		assert.ErrorContains(t, err, "issue access")
	})

	t.Run("refresh failure", func(t *testing.T) {
		tm := servermocks.NewTokenManager(t)
		tm.On("Issue", mock.Anything, model.TokenKindAccess).Return("acc", nil)
		tm.On("Issue", mock.Anything, model.TokenKindRefresh).Return("", errors.New("sign"))

		_, err := NewTokenService(tm, testutil.MakeNoopLogger()).IssuePair(user)
		assert.ErrorContains(t, err, "issue refresh")
	})
}

func TestTokenService_VerifyRefresh(t *testing.T) {
	tm := servermocks.NewTokenManager(t)
	claims := model.Claims{SubjectID: uuid.New(), Kind: model.TokenKindRefresh}
	tm.On("Verify", "good", model.TokenKindRefresh).Return(claims, nil)
	tm.On("Verify", "bad", model.TokenKindRefresh).Return(model.Claims{}, model.ErrInvalidToken)

	s := NewTokenService(tm, testutil.MakeNoopLogger())

	got, err := s.VerifyRefresh("good")
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	_, err = s.VerifyRefresh("bad")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.NotErrorIs(t, err, model.ErrInvalidToken)
}
