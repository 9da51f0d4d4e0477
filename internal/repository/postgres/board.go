package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nqhuy/kanban-server/internal/model"
)

var _ model.BoardStore = (*BoardRepository)(nil)

const boardColumns = `id, title, description, owner_id, members, workspace_id, created_at, updated_at`

type BoardRepository struct {
	db *Connection
}

func NewBoardRepository(db *Connection) *BoardRepository {
	return &BoardRepository{db: db}
}

func scanBoard(row pgx.Row) (model.Board, error) {
	var b model.Board
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.OwnerID, &b.Members, &b.WorkspaceID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BoardRepository) collectBoards(rows pgx.Rows) ([]model.Board, error) {
	defer rows.Close()

	var boards []model.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read boards: %w", err)
	}

	return boards, nil
}

func (r *BoardRepository) Create(ctx context.Context, board model.Board) (model.Board, error) {
	query := `INSERT INTO boards (id, title, description, owner_id, members, workspace_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING ` + boardColumns

	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}

	saved, err := scanBoard(r.db.QueryRow(ctx, query,
		board.ID, board.Title, board.Description, board.OwnerID, board.Members, board.WorkspaceID,
	))
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to create board: %w", err)
	}

	return saved, nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

	board, err := scanBoard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Board{}, model.ErrNotFound
		}
		return model.Board{}, fmt.Errorf("failed to get board by id: %w", err)
	}

	return board, nil
}

// GetByUser returns boards the user owns or belongs to, optionally narrowed
// to one workspace, newest activity first.
func (r *BoardRepository) GetByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]model.Board, error) {
	query := `SELECT ` + boardColumns + `
			  FROM boards
			  WHERE (owner_id = $1 OR $1 = ANY(members)) AND ($2::uuid IS NULL OR workspace_id = $2)
			  ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get boards by user: %w", err)
	}

	return r.collectBoards(rows)
}

func (r *BoardRepository) GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE workspace_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get boards by workspace: %w", err)
	}

	return r.collectBoards(rows)
}

// GetWorkspaceIDsByUser returns the distinct workspace ids of boards the
// user owns or belongs to. Used to surface workspaces reachable only
// through board membership.
func (r *BoardRepository) GetWorkspaceIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
        SELECT DISTINCT workspace_id FROM boards
        WHERE owner_id = $1 OR $1 = ANY(members)
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace ids by user: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan workspace id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspace ids: %w", err)
	}

	return ids, nil
}

func (r *BoardRepository) Update(ctx context.Context, board model.Board) (model.Board, error) {
	query := `UPDATE boards SET title = $2, description = $3, members = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + boardColumns

	saved, err := scanBoard(r.db.QueryRow(ctx, query,
		board.ID, board.Title, board.Description, board.Members,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Board{}, model.ErrNotFound
		}
		return model.Board{}, fmt.Errorf("failed to update board: %w", err)
	}

	return saved, nil
}

func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM boards WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
