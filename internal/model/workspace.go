package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WorkspaceStore defines persistence operations for workspaces.
type WorkspaceStore interface {
	Create(ctx context.Context, workspace Workspace) (Workspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (Workspace, error)
	GetByUser(ctx context.Context, userID uuid.UUID, extraIDs []uuid.UUID) ([]Workspace, error)
}

// Workspace groups boards and carries its own membership.
type Workspace struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	Members   []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMember reports whether userID is the owner or a listed member.
func (w Workspace) HasMember(userID uuid.UUID) bool {
	if w.OwnerID == userID {
		return true
	}
	for _, m := range w.Members {
		if m == userID {
			return true
		}
	}
	return false
}
