package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BoardStore defines persistence operations for boards.
type BoardStore interface {
	Create(ctx context.Context, board Board) (Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (Board, error)
	GetByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]Board, error)
	GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]Board, error)
	GetWorkspaceIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, board Board) (Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Board is a Kanban board inside a workspace.
type Board struct {
	ID          uuid.UUID
	Title       string
	Description string
	OwnerID     uuid.UUID
	Members     []uuid.UUID
	WorkspaceID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether userID is the owner or a listed member.
func (b Board) HasMember(userID uuid.UUID) bool {
	if b.OwnerID == userID {
		return true
	}
	for _, m := range b.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// CreateBoardParams carries validated input for board creation.
type CreateBoardParams struct {
	Title       string
	Description string
	OwnerID     uuid.UUID
	Members     []uuid.UUID
	WorkspaceID uuid.UUID
}

// UpdateBoardParams carries the optional fields a board update may set.
// A nil field is left untouched.
type UpdateBoardParams struct {
	BoardID     uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Description *string
	Members     []uuid.UUID
	SetMembers  bool
}
