// Package mocks provides testify mocks for the model interfaces. Each
// constructor binds the mock to the test and asserts expectations on cleanup.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nqhuy/kanban-server/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// UserStore mocks the model.UserStore interface.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// SessionStore mocks the model.SessionStore interface.
type SessionStore struct {
	mock.Mock
}

func NewSessionStore(t testingT) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionStore) Create(ctx context.Context, session model.Session) (model.Session, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) GetByToken(ctx context.Context, refreshToken string) (model.Session, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) DeleteByToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// WorkspaceStore mocks the model.WorkspaceStore interface.
type WorkspaceStore struct {
	mock.Mock
}

func NewWorkspaceStore(t testingT) *WorkspaceStore {
	m := &WorkspaceStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WorkspaceStore) Create(ctx context.Context, workspace model.Workspace) (model.Workspace, error) {
	args := m.Called(ctx, workspace)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *WorkspaceStore) GetByID(ctx context.Context, id uuid.UUID) (model.Workspace, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *WorkspaceStore) GetByUser(ctx context.Context, userID uuid.UUID, extraIDs []uuid.UUID) ([]model.Workspace, error) {
	args := m.Called(ctx, userID, extraIDs)
	workspaces, _ := args.Get(0).([]model.Workspace)
	return workspaces, args.Error(1)
}

// BoardStore mocks the model.BoardStore interface.
type BoardStore struct {
	mock.Mock
}

func NewBoardStore(t testingT) *BoardStore {
	m := &BoardStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BoardStore) Create(ctx context.Context, board model.Board) (model.Board, error) {
	args := m.Called(ctx, board)
	return args.Get(0).(model.Board), args.Error(1)
}

func (m *BoardStore) GetByID(ctx context.Context, id uuid.UUID) (model.Board, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Board), args.Error(1)
}

func (m *BoardStore) GetByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, userID, workspaceID)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *BoardStore) GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, workspaceID)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *BoardStore) GetWorkspaceIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *BoardStore) Update(ctx context.Context, board model.Board) (model.Board, error) {
	args := m.Called(ctx, board)
	return args.Get(0).(model.Board), args.Error(1)
}

func (m *BoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListStore mocks the model.ListStore interface.
type ListStore struct {
	mock.Mock
}

func NewListStore(t testingT) *ListStore {
	m := &ListStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ListStore) Create(ctx context.Context, list model.List) (model.List, error) {
	args := m.Called(ctx, list)
	return args.Get(0).(model.List), args.Error(1)
}

func (m *ListStore) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	lists, _ := args.Get(0).([]model.List)
	return lists, args.Error(1)
}

func (m *ListStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

// CardStore mocks the model.CardStore interface.
type CardStore struct {
	mock.Mock
}

func NewCardStore(t testingT) *CardStore {
	m := &CardStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CardStore) Create(ctx context.Context, card model.Card) (model.Card, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *CardStore) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, boardID)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *CardStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}
