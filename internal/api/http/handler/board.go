package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// BoardService defines board operations.
type BoardService interface {
	Create(ctx context.Context, params model.CreateBoardParams) (model.Board, error)
	List(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]model.Board, error)
	Get(ctx context.Context, userID, boardID uuid.UUID) (model.Board, []model.List, []model.Card, error)
	Update(ctx context.Context, params model.UpdateBoardParams) (model.Board, error)
	Delete(ctx context.Context, userID, boardID uuid.UUID) error
}

// Board handles HTTP endpoints for boards.
type Board struct {
	boardService   BoardService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBoard creates a new Board handler.
func NewBoard(boardService BoardService, contextManager model.ContextManager, logger *logger.Logger) *Board {
	return &Board{
		boardService:   boardService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createBoardRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Members     json.RawMessage `json:"members"`
	Workspace   json.RawMessage `json:"workspace"`
}

type boardResponse struct {
	Board boardJSON `json:"board"`
}

// Create makes a new board in a workspace.
func (h *Board) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string]string{"_": "invalid request body"})
		return
	}
	if req.Title == "" {
		respondValidation(w, map[string]string{"title": "title is required"})
		return
	}

	members, _, err := normalizeMembers(req.Members)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	workspaceID, err := normalizeWorkspace(req.Workspace)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	board, err := h.boardService.Create(r.Context(), model.CreateBoardParams{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     user.ID,
		Members:     members,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		h.logger.Error("Board handler: create failed",
			"user_id", user.ID.String(),
			"error", err.Error())
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, boardResponse{Board: toBoardJSON(board)})
}

type boardListResponse struct {
	Boards []boardJSON `json:"boards"`
}

// List returns the user's boards, optionally filtered by the workspace
// query parameter.
func (h *Board) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	var workspaceID *uuid.UUID
	if raw := r.URL.Query().Get("workspace"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			workspaceID = &id
		}
		// An unparseable filter is ignored, matching the unfiltered listing.
	}

	boards, err := h.boardService.List(r.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, boardListResponse{Boards: toBoardListJSON(boards)})
}

type boardDetailResponse struct {
	Board boardJSON  `json:"board"`
	Lists []listJSON `json:"lists"`
	Cards []cardJSON `json:"cards"`
}

// Get returns one board with its lists and cards.
func (h *Board) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	boardID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.logger, w, apierrors.NewErrInvalidID())
		return
	}

	board, lists, cards, err := h.boardService.Get(r.Context(), user.ID, boardID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, boardDetailResponse{
		Board: toBoardJSON(board),
		Lists: toListListJSON(lists),
		Cards: toCardListJSON(cards),
	})
}

type updateBoardRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Members     json.RawMessage `json:"members"`
}

// Update applies the fields present in the body to a board.
func (h *Board) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	boardID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.logger, w, apierrors.NewErrInvalidID())
		return
	}

	var req updateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string]string{"_": "invalid request body"})
		return
	}

	members, membersPresent, err := normalizeMembers(req.Members)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	board, err := h.boardService.Update(r.Context(), model.UpdateBoardParams{
		BoardID:     boardID,
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Members:     members,
		SetMembers:  membersPresent,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, boardResponse{Board: toBoardJSON(board)})
}

// Delete removes a board with its lists and cards.
func (h *Board) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	boardID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(h.logger, w, apierrors.NewErrInvalidID())
		return
	}

	if err := h.boardService.Delete(r.Context(), user.ID, boardID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
