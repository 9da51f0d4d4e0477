package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/nqhuy/kanban-server/internal/api/http/context"
	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/model"
	"github.com/nqhuy/kanban-server/internal/testutil"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) (model.User, error) {
	args := m.Called(ctx, userID, reader, size, contentType)
	return args.Get(0).(model.User), args.Error(1)
}

func authedRequest(method, target string, body io.Reader, user model.User) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := httpctx.NewManager().SetUserToContext(req.Context(), user)
	return req.WithContext(ctx)
}

func TestUser_Me(t *testing.T) {
	t.Parallel()

	user := model.User{
		ID:           uuid.New(),
		Username:     "johndoe",
		Email:        "john@example.com",
		DisplayName:  "John Doe",
		PasswordHash: "$2a$10$secret",
	}

	h := NewUser(&MockUserService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Me(rec, authedRequest(http.MethodGet, "/api/users/me", nil, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)

	gotUser, ok := got["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "johndoe", gotUser["username"])
	assert.Equal(t, "John Doe", gotUser["displayName"])

	// The hash must never leave the server.
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, gotUser, "passwordHash")
}

func TestUser_Me_NoUserInContext(t *testing.T) {
	t.Parallel()

	h := NewUser(&MockUserService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Username: "johndoe"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockUserService{}
		h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p model.UpdateProfileParams) bool {
			return p.UserID == user.ID &&
				p.DisplayName != nil && *p.DisplayName == "Johnny" &&
				p.Email == nil
		})).Return(model.User{ID: user.ID, DisplayName: "Johnny"}, nil)

		body := []byte(`{"displayName": "Johnny"}`)
		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, authedRequest(http.MethodPut, "/api/users/me", bytes.NewReader(body), user))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		svc := &MockUserService{}
		h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("UpdateProfile", mock.Anything, mock.AnythingOfType("model.UpdateProfileParams")).
			Return(model.User{}, apierrors.NewErrEmailTaken())

		body := []byte(`{"email": "taken@example.com"}`)
		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, authedRequest(http.MethodPut, "/api/users/me", bytes.NewReader(body), user))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email already exists", decodeBody(t, rec)["message"])
	})
}

func TestUser_UploadAvatar(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Username: "johndoe"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockUserService{}
		h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

		svc.On("UploadAvatar", mock.Anything, user.ID, mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
			Return(model.User{ID: user.ID, AvatarURL: "http://minio/avatars/x"}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("avatar", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := authedRequest(http.MethodPost, "/api/users/me/avatar", &buf, user)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec := httptest.NewRecorder()
		h.UploadAvatar(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		gotUser, ok := decodeBody(t, rec)["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "http://minio/avatars/x", gotUser["avatarUrl"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		h := NewUser(&MockUserService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("unrelated", "value"))
		require.NoError(t, mw.Close())

		req := authedRequest(http.MethodPost, "/api/users/me/avatar", &buf, user)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec := httptest.NewRecorder()
		h.UploadAvatar(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No file uploaded", decodeBody(t, rec)["message"])
	})

	t.Run("not multipart", func(t *testing.T) {
		t.Parallel()

		h := NewUser(&MockUserService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.UploadAvatar(rec, authedRequest(http.MethodPost, "/api/users/me/avatar", bytes.NewReader([]byte("raw")), user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
