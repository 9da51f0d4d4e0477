package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/nqhuy/kanban-server/internal/api/http/context"
	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/model"
	"github.com/nqhuy/kanban-server/internal/testutil"
)

// MockWorkspaceService mocks the WorkspaceService interface
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) Create(ctx context.Context, name string, ownerID uuid.UUID, members []uuid.UUID) (model.Workspace, error) {
	args := m.Called(ctx, name, ownerID, members)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) List(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	args := m.Called(ctx, userID)
	workspaces, _ := args.Get(0).([]model.Workspace)
	return workspaces, args.Error(1)
}

func (m *MockWorkspaceService) Get(ctx context.Context, userID, workspaceID uuid.UUID) (model.Workspace, []model.Board, error) {
	args := m.Called(ctx, userID, workspaceID)
	boards, _ := args.Get(1).([]model.Board)
	return args.Get(0).(model.Workspace), boards, args.Error(2)
}

func TestWorkspace_Create(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Username: "johndoe"}
	memberID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockWorkspaceService{}
		h := NewWorkspace(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("Create", mock.Anything, "Acme", user.ID, []uuid.UUID{memberID}).
			Return(model.Workspace{ID: uuid.New(), Name: "Acme", OwnerID: user.ID}, nil)

		body := []byte(fmt.Sprintf(`{"name": "Acme", "members": ["%s"]}`, memberID))
		rec := httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body), user))

		assert.Equal(t, http.StatusCreated, rec.Code)

		got, ok := decodeBody(t, rec)["workspace"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Acme", got["name"])
		svc.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		h := NewWorkspace(&MockWorkspaceService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/workspaces", bytes.NewReader([]byte(`{}`)), user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decodeBody(t, rec)["message"])
	})

	t.Run("invalid member id", func(t *testing.T) {
		t.Parallel()

		h := NewWorkspace(&MockWorkspaceService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

		body := []byte(`{"name": "Acme", "members": ["not-a-uuid"]}`)
		rec := httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body), user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "Invalid member id")
	})
}

func TestWorkspace_List(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New()}

	svc := &MockWorkspaceService{}
	h := NewWorkspace(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	svc.On("List", mock.Anything, user.ID).Return([]model.Workspace{
		{ID: uuid.New(), Name: "Acme"},
		{ID: uuid.New(), Name: "Side project"},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/workspaces", nil, user))

	assert.Equal(t, http.StatusOK, rec.Code)

	workspaces, ok := decodeBody(t, rec)["workspaces"].([]any)
	require.True(t, ok)
	assert.Len(t, workspaces, 2)
}

func TestWorkspace_Get(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New()}
	workspaceID := uuid.New()

	// mux.Vars is populated by routing, so requests go through a router.
	newRouter := func(h *Workspace) *mux.Router {
		r := mux.NewRouter()
		r.HandleFunc("/api/workspaces/{id}", h.Get).Methods(http.MethodGet)
		return r
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockWorkspaceService{}
		h := NewWorkspace(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("Get", mock.Anything, user.ID, workspaceID).Return(
			model.Workspace{ID: workspaceID, Name: "Acme", OwnerID: user.ID},
			[]model.Board{{ID: uuid.New(), Title: "Sprint"}},
			nil,
		)

		rec := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/workspaces/"+workspaceID.String(), nil, user))

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody(t, rec)
		assert.Contains(t, got, "workspace")

		boards, ok := got["boards"].([]any)
		require.True(t, ok)
		assert.Len(t, boards, 1)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		h := NewWorkspace(&MockWorkspaceService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/workspaces/not-a-uuid", nil, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid workspace id", decodeBody(t, rec)["message"])
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()

		svc := &MockWorkspaceService{}
		h := NewWorkspace(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("Get", mock.Anything, user.ID, workspaceID).
			Return(model.Workspace{}, []model.Board(nil), apierrors.NewErrForbidden())

		rec := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/workspaces/"+workspaceID.String(), nil, user))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
