package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is a user's authorization role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Create inserts a user. A duplicate email yields ErrConflict.
	Create(ctx context.Context, user User) (User, error)
	TouchCredentialEvent(ctx context.Context, id uuid.UUID, at time.Time) error
}

// User represents a stored user with authentication material.
// PasswordHash must never be copied into a response type.
type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	DisplayName      string
	Role             Role
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LastCredentialAt *time.Time
}

// Author is the public projection of a user attached to content.
type Author struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

// PasswordHasher produces and checks one-way salted password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginParams contains user credentials.
type LoginParams struct {
	Email    string
	Password string
}
