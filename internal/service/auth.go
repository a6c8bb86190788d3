package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time

	decoyOnce   sync.Once
	decoyDigest string
}

// decoyPassword is hashed once to give unknown-email logins a digest to verify
// against, so they cost as much as a wrong password.
const decoyPassword = "quill-login-decoy"

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		logger:       logger,
		now:          time.Now,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	existingUser, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.AuthResult{}, fmt.Errorf("email is already registered: %w", model.ErrConflict)
	}

	digest, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user := model.User{
		ID:               uuid.New(),
		Email:            params.Email,
		PasswordHash:     digest,
		DisplayName:      params.DisplayName,
		Role:             model.RoleUser,
		CreatedAt:        now,
		UpdatedAt:        now,
		LastCredentialAt: &now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: concurrent registration lost",
				"email", params.Email)
			return model.AuthResult{}, fmt.Errorf("email is already registered: %w", err)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := a.tokenService.IssuePair(saved)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", saved.ID)

	return model.AuthResult{User: saved, TokenPair: pair}, nil
}

func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", params.Email)

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", params.Email)
		a.verifyDecoy(params.Password)
		return model.AuthResult{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(params.Password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.AuthResult{}, model.ErrUnauthorized
	}

	now := a.now().UTC()
	if err := a.userStore.TouchCredentialEvent(ctx, user.ID, now); err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastCredentialAt = &now

	pair, err := a.tokenService.IssuePair(user)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.AuthResult{User: user, TokenPair: pair}, nil
}

func (a *Auth) verifyDecoy(plaintext string) {
	a.decoyOnce.Do(func() {
		digest, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare decoy digest",
				"error", err.Error())
			return
		}
		a.decoyDigest = digest
	})
	if a.decoyDigest == "" {
		return
	}
	_, _ = a.hasher.Verify(plaintext, a.decoyDigest)
}

// Refresh mints a new pair from the current user record. The subject is taken
// from the verified token only and nothing is written.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := a.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := a.userStore.GetByID(ctx, claims.SubjectID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: refresh for unknown subject",
			"user_id", claims.SubjectID)
		return model.TokenPair{}, fmt.Errorf("subject: %w", model.ErrUnauthorized)
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	pair, err := a.tokenService.IssuePair(user)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return pair, nil
}
