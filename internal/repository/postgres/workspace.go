package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nqhuy/kanban-server/internal/model"
)

var _ model.WorkspaceStore = (*WorkspaceRepository)(nil)

const workspaceColumns = `id, name, owner_id, members, created_at, updated_at`

type WorkspaceRepository struct {
	db *Connection
}

func NewWorkspaceRepository(db *Connection) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func scanWorkspace(row pgx.Row) (model.Workspace, error) {
	var ws model.Workspace
	err := row.Scan(&ws.ID, &ws.Name, &ws.OwnerID, &ws.Members, &ws.CreatedAt, &ws.UpdatedAt)
	return ws, err
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace model.Workspace) (model.Workspace, error) {
	query := `INSERT INTO workspaces (id, name, owner_id, members, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING ` + workspaceColumns

	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	saved, err := scanWorkspace(r.db.QueryRow(ctx, query,
		workspace.ID, workspace.Name, workspace.OwnerID, workspace.Members,
	))
	if err != nil {
		return model.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}

	return saved, nil
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = $1`

	ws, err := scanWorkspace(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Workspace{}, model.ErrNotFound
		}
		return model.Workspace{}, fmt.Errorf("failed to get workspace by id: %w", err)
	}

	return ws, nil
}

// GetByUser returns workspaces the user owns or belongs to, plus any
// workspace whose id is in extraIDs (reached through board membership),
// newest activity first.
func (r *WorkspaceRepository) GetByUser(ctx context.Context, userID uuid.UUID, extraIDs []uuid.UUID) ([]model.Workspace, error) {
	if extraIDs == nil {
		extraIDs = []uuid.UUID{}
	}

	query := `SELECT ` + workspaceColumns + `
			  FROM workspaces
			  WHERE owner_id = $1 OR $1 = ANY(members) OR id = ANY($2)
			  ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID, extraIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces by user: %w", err)
	}
	defer rows.Close()

	var workspaces []model.Workspace
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspaces: %w", err)
	}

	return workspaces, nil
}
