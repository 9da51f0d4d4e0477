package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/model"
)

var _ model.ListStore = (*ListRepository)(nil)

type ListRepository struct {
	db *Connection
}

func NewListRepository(db *Connection) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list model.List) (model.List, error) {
	const query = `
        INSERT INTO lists (id, title, board_id, position, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id, title, board_id, position, created_at, updated_at
    `

	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}

	var saved model.List
	err := r.db.QueryRow(ctx, query, list.ID, list.Title, list.BoardID, list.Position).Scan(
		&saved.ID, &saved.Title, &saved.BoardID, &saved.Position, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.List{}, fmt.Errorf("failed to create list: %w", err)
	}

	return saved, nil
}

func (r *ListRepository) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	const query = `
        SELECT id, title, board_id, position, created_at, updated_at
        FROM lists WHERE board_id = $1 ORDER BY position ASC
    `

	rows, err := r.db.Query(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists by board: %w", err)
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.Title, &l.BoardID, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lists: %w", err)
	}

	return lists, nil
}

func (r *ListRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	const query = `DELETE FROM lists WHERE board_id = $1`

	if _, err := r.db.Exec(ctx, query, boardID); err != nil {
		return fmt.Errorf("failed to delete lists by board: %w", err)
	}
	return nil
}
