package model

import "context"

// ContextManager moves the authenticated user in and out of request contexts.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
}
