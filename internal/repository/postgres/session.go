package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nqhuy/kanban-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	const query = `
        INSERT INTO sessions (id, user_id, refresh_token, expires_at, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, user_id, refresh_token, expires_at, created_at
    `

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	var saved model.Session
	err := r.db.QueryRow(ctx, query,
		session.ID, session.UserID, session.RefreshToken, session.ExpiresAt,
	).Scan(&saved.ID, &saved.UserID, &saved.RefreshToken, &saved.ExpiresAt, &saved.CreatedAt)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return saved, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, refreshToken string) (model.Session, error) {
	const query = `
        SELECT id, user_id, refresh_token, expires_at, created_at
        FROM sessions WHERE refresh_token = $1
    `

	var session model.Session
	err := r.db.QueryRow(ctx, query, refreshToken).Scan(
		&session.ID, &session.UserID, &session.RefreshToken, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session, nil
}

// DeleteByToken removes the session holding refreshToken. Deleting a token
// with no matching row is not an error.
func (r *SessionRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	const query = `DELETE FROM sessions WHERE refresh_token = $1`

	if _, err := r.db.Exec(ctx, query, refreshToken); err != nil {
		return fmt.Errorf("failed to delete session by token: %w", err)
	}
	return nil
}
