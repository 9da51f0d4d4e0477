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

// Board manages boards and their lists and cards.
type Board struct {
	boardStore     model.BoardStore
	workspaceStore model.WorkspaceStore
	listStore      model.ListStore
	cardStore      model.CardStore
	logger         *logger.Logger
}

func NewBoard(
	boardStore model.BoardStore,
	workspaceStore model.WorkspaceStore,
	listStore model.ListStore,
	cardStore model.CardStore,
	logger *logger.Logger,
) *Board {
	return &Board{
		boardStore:     boardStore,
		workspaceStore: workspaceStore,
		listStore:      listStore,
		cardStore:      cardStore,
		logger:         logger,
	}
}

// Create persists a board in an existing workspace.
func (s *Board) Create(ctx context.Context, params model.CreateBoardParams) (model.Board, error) {
	if _, err := s.workspaceStore.GetByID(ctx, params.WorkspaceID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Board{}, apierrors.NewErrInvalidWorkspaceID()
		}
		return model.Board{}, fmt.Errorf("failed to get workspace by id: %w", err)
	}

	members := params.Members
	if members == nil {
		members = []uuid.UUID{}
	}

	board := model.Board{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		OwnerID:     params.OwnerID,
		Members:     members,
		WorkspaceID: params.WorkspaceID,
	}

	saved, err := s.boardStore.Create(ctx, board)
	if err != nil {
		s.logger.Error("Board service: failed to create board",
			"owner_id", params.OwnerID.String(),
			"error", err.Error())
		return model.Board{}, fmt.Errorf("failed to create board: %w", err)
	}

	return saved, nil
}

// List returns boards the user owns or belongs to, optionally narrowed to
// one workspace.
func (s *Board) List(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]model.Board, error) {
	boards, err := s.boardStore.GetByUser(ctx, userID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get boards by user: %w", err)
	}

	return boards, nil
}

// Get returns the board with its lists and cards, both ordered by position.
// Only the owner and members may read it.
func (s *Board) Get(ctx context.Context, userID, boardID uuid.UUID) (model.Board, []model.List, []model.Card, error) {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Board{}, nil, nil, apierrors.NewErrBoardNotFound()
	}
	if err != nil {
		return model.Board{}, nil, nil, fmt.Errorf("failed to get board by id: %w", err)
	}

	if !board.HasMember(userID) {
		return model.Board{}, nil, nil, apierrors.NewErrForbidden()
	}

	lists, err := s.listStore.GetByBoard(ctx, boardID)
	if err != nil {
		return model.Board{}, nil, nil, fmt.Errorf("failed to get lists by board: %w", err)
	}

	cards, err := s.cardStore.GetByBoard(ctx, boardID)
	if err != nil {
		return model.Board{}, nil, nil, fmt.Errorf("failed to get cards by board: %w", err)
	}

	return board, lists, cards, nil
}

// Update applies the provided fields to a board. Only the owner may update.
func (s *Board) Update(ctx context.Context, params model.UpdateBoardParams) (model.Board, error) {
	board, err := s.boardStore.GetByID(ctx, params.BoardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Board{}, apierrors.NewErrBoardNotFound()
	}
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to get board by id: %w", err)
	}

	if board.OwnerID != params.UserID {
		return model.Board{}, apierrors.NewErrOnlyOwnerCanUpdate()
	}

	if params.Title != nil {
		board.Title = *params.Title
	}
	if params.Description != nil {
		board.Description = *params.Description
	}
	if params.SetMembers {
		members := params.Members
		if members == nil {
			members = []uuid.UUID{}
		}
		board.Members = members
	}

	updated, err := s.boardStore.Update(ctx, board)
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to update board: %w", err)
	}

	return updated, nil
}

// Delete removes a board together with its lists and cards. Only the owner
// may delete.
func (s *Board) Delete(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrBoardNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get board by id: %w", err)
	}

	if board.OwnerID != userID {
		return apierrors.NewErrOnlyOwnerCanDelete()
	}

	if err := s.cardStore.DeleteByBoard(ctx, boardID); err != nil {
		return fmt.Errorf("failed to delete cards by board: %w", err)
	}
	if err := s.listStore.DeleteByBoard(ctx, boardID); err != nil {
		return fmt.Errorf("failed to delete lists by board: %w", err)
	}
	if err := s.boardStore.Delete(ctx, boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	s.logger.Info("Board service: board deleted",
		"board_id", boardID.String())

	return nil
}
