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

// WorkspaceService defines workspace operations.
type WorkspaceService interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID, members []uuid.UUID) (model.Workspace, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error)
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (model.Workspace, []model.Board, error)
}

// Workspace handles HTTP endpoints for workspaces.
type Workspace struct {
	workspaceService WorkspaceService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewWorkspace creates a new Workspace handler.
func NewWorkspace(workspaceService WorkspaceService, contextManager model.ContextManager, logger *logger.Logger) *Workspace {
	return &Workspace{
		workspaceService: workspaceService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

type createWorkspaceRequest struct {
	Name    string          `json:"name"`
	Members json.RawMessage `json:"members"`
}

type workspaceResponse struct {
	Workspace workspaceJSON `json:"workspace"`
}

// Create makes a new workspace owned by the authenticated user.
func (h *Workspace) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string]string{"_": "invalid request body"})
		return
	}
	if req.Name == "" {
		respondValidation(w, map[string]string{"name": "name is required"})
		return
	}

	members, _, err := normalizeMembers(req.Members)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), req.Name, user.ID, members)
	if err != nil {
		h.logger.Error("Workspace handler: create failed",
			"user_id", user.ID.String(),
			"error", err.Error())
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, workspaceResponse{Workspace: toWorkspaceJSON(workspace)})
}

type workspaceListResponse struct {
	Workspaces []workspaceJSON `json:"workspaces"`
}

// List returns the workspaces visible to the authenticated user.
func (h *Workspace) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	workspaces, err := h.workspaceService.List(r.Context(), user.ID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, workspaceListResponse{Workspaces: toWorkspaceListJSON(workspaces)})
}

type workspaceDetailResponse struct {
	Workspace workspaceJSON `json:"workspace"`
	Boards    []boardJSON   `json:"boards"`
}

// Get returns one workspace with its boards.
func (h *Workspace) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	workspaceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid workspace id")
		return
	}

	workspace, boards, err := h.workspaceService.Get(r.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, workspaceDetailResponse{
		Workspace: toWorkspaceJSON(workspace),
		Boards:    toBoardListJSON(boards),
	})
}
