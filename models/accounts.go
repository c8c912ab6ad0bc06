package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. There is no hierarchy: an admin
// is not implicitly a parent.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleParent Role = "parent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleParent:
		return true
	}
	return false
}

// Account represents a registered user of the camp API.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionToken is an opaque bearer credential persisted with its expiry.
type SessionToken struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	AccountID uuid.UUID `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterParentRequest is the payload for self-registration and for the
// admin create-parent endpoint.
type RegisterParentRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
