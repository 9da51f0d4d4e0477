package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists refresh-token sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByToken(ctx context.Context, refreshToken string) (Session, error)
	DeleteByToken(ctx context.Context, refreshToken string) error
}

// Session binds a refresh token to a user. A session is valid iff it exists
// and ExpiresAt is in the future; expired rows are rejected on lookup and
// kept in the store until external cleanup.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
