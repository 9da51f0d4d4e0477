// Package context stores the authenticated user on the request context.
package context

import (
	"context"

	"github.com/nqhuy/kanban-server/internal/model"
)

type contextKey string

// userKey is the context key under which the authenticated user is stored.
const userKey contextKey = "user"

// Manager moves the authenticated user in and out of request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the user stored by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
