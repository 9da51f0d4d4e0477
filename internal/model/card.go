package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CardStore defines persistence operations for cards.
type CardStore interface {
	Create(ctx context.Context, card Card) (Card, error)
	GetByBoard(ctx context.Context, boardID uuid.UUID) ([]Card, error)
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
}

// Card is a task on a board, attached to a list and ordered by position.
type Card struct {
	ID          uuid.UUID
	Title       string
	Description string
	ListID      uuid.UUID
	BoardID     uuid.UUID
	Labels      []string
	DueDate     *time.Time
	Members     []uuid.UUID
	Position    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
