package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

const cardColumns = `id, title, description, list_id, board_id, labels, due_date, members, position, created_at, updated_at`

type CardRepository struct {
	db *Connection
}

func NewCardRepository(db *Connection) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card model.Card) (model.Card, error) {
	query := `INSERT INTO cards (id, title, description, list_id, board_id, labels, due_date, members, position, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING ` + cardColumns

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if card.Labels == nil {
		card.Labels = []string{}
	}
	if card.Members == nil {
		card.Members = []uuid.UUID{}
	}

	var saved model.Card
	err := r.db.QueryRow(ctx, query,
		card.ID, card.Title, card.Description, card.ListID, card.BoardID,
		card.Labels, card.DueDate, card.Members, card.Position,
	).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.ListID, &saved.BoardID,
		&saved.Labels, &saved.DueDate, &saved.Members, &saved.Position, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return saved, nil
}

func (r *CardRepository) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE board_id = $1 ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards by board: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.ListID, &c.BoardID,
			&c.Labels, &c.DueDate, &c.Members, &c.Position, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	const query = `DELETE FROM cards WHERE board_id = $1`

	if _, err := r.db.Exec(ctx, query, boardID); err != nil {
		return fmt.Errorf("failed to delete cards by board: %w", err)
	}
	return nil
}
