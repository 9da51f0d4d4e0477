package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// Workspace manages workspaces and their board listings.
type Workspace struct {
	workspaceStore model.WorkspaceStore
	boardStore     model.BoardStore
	logger         *logger.Logger
}

func NewWorkspace(workspaceStore model.WorkspaceStore, boardStore model.BoardStore, logger *logger.Logger) *Workspace {
	return &Workspace{
		workspaceStore: workspaceStore,
		boardStore:     boardStore,
		logger:         logger,
	}
}

// Create persists a workspace. The owner is always part of the member list.
func (s *Workspace) Create(ctx context.Context, name string, ownerID uuid.UUID, members []uuid.UUID) (model.Workspace, error) {
	memberList := make([]uuid.UUID, 0, len(members)+1)
	memberList = append(memberList, members...)

	ownerIncluded := false
	for _, m := range memberList {
		if m == ownerID {
			ownerIncluded = true
			break
		}
	}
	if !ownerIncluded {
		memberList = append(memberList, ownerID)
	}

	workspace := model.Workspace{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
		Members: memberList,
	}

	saved, err := s.workspaceStore.Create(ctx, workspace)
	if err != nil {
		s.logger.Error("Workspace service: failed to create workspace",
			"owner_id", ownerID.String(),
			"error", err.Error())
		return model.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}

	return saved, nil
}

// List returns workspaces the user owns or belongs to, including workspaces
// reachable only through membership of one of their boards.
func (s *Workspace) List(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	boardWorkspaceIDs, err := s.boardStore.GetWorkspaceIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace ids by user: %w", err)
	}

	workspaces, err := s.workspaceStore.GetByUser(ctx, userID, boardWorkspaceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces by user: %w", err)
	}

	return workspaces, nil
}

// Get returns the workspace and its boards. Only the owner and members may
// read it.
func (s *Workspace) Get(ctx context.Context, userID, workspaceID uuid.UUID) (model.Workspace, []model.Board, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Workspace{}, nil, apierrors.NewErrWorkspaceNotFound()
	}
	if err != nil {
		return model.Workspace{}, nil, fmt.Errorf("failed to get workspace by id: %w", err)
	}

	if !workspace.HasMember(userID) {
		return model.Workspace{}, nil, apierrors.NewErrForbidden()
	}

	boards, err := s.boardStore.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		return model.Workspace{}, nil, fmt.Errorf("failed to get boards by workspace: %w", err)
	}

	return workspace, boards, nil
}
