package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
// PasswordHash is never serialized to clients.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	Phone        string
	AvatarURL    string
	AvatarKey    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpdateProfileParams carries the optional profile fields an update may set.
// A nil field is left untouched.
type UpdateProfileParams struct {
	UserID      uuid.UUID
	DisplayName *string
	Email       *string
	Phone       *string
	AvatarURL   *string
}
