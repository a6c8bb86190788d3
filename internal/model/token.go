package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims are the identity facts carried by a token.
type Claims struct {
	SubjectID   uuid.UUID
	Email       string
	Role        Role
	DisplayName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Kind        TokenKind
}

// ClaimsFromUser builds unsigned claims for u. Timestamps and kind are set by
// the issuer.
func ClaimsFromUser(u User) Claims {
	return Claims{
		SubjectID:   u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}
}

// TokenManager signs and verifies tokens.
type TokenManager interface {
	Issue(claims Claims, kind TokenKind) (string, error)
	Verify(token string, kind TokenKind) (Claims, error)
	TryVerify(token string) (Claims, bool)
}

// TokenPair is a freshly minted access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	User User
	TokenPair
}
