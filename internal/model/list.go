package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListStore defines persistence operations for lists.
type ListStore interface {
	Create(ctx context.Context, list List) (List, error)
	GetByBoard(ctx context.Context, boardID uuid.UUID) ([]List, error)
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

// List is an ordered column of cards on a board.
type List struct {
	ID        uuid.UUID
	Title     string
	BoardID   uuid.UUID
	Position  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
