package service

import (
	"fmt"

	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

// TokenService mints access/refresh pairs from user records and checks
// presented refresh tokens. It keeps no state of its own.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// IssuePair signs a fresh access and refresh token for user.
func (s *TokenService) IssuePair(user model.User) (model.TokenPair, error) {
	claims := model.ClaimsFromUser(user)

	access, err := s.manager.Issue(claims, model.TokenKindAccess)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.Issue(claims, model.TokenKindRefresh)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefresh returns the claims of a valid refresh token. Any verification
// failure is reported as model.ErrUnauthorized.
func (s *TokenService) VerifyRefresh(token string) (model.Claims, error) {
	claims, err := s.manager.Verify(token, model.TokenKindRefresh)
	if err != nil {
		s.logger.Debug("Token service: refresh token rejected",
			"error", err.Error())
		return model.Claims{}, fmt.Errorf("refresh token: %w", model.ErrUnauthorized)
	}
	return claims, nil
}
