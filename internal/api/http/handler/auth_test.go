package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/model"
	"github.com/nqhuy/kanban-server/internal/testutil"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params model.RegisterParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (model.LoginResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerBody() []byte {
	return []byte(`{
		"username": "johndoe",
		"password": "secret123",
		"email": "john@example.com",
		"firstName": "John",
		"lastName": "Doe"
	}`)
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, model.RegisterParams{
			Username:  "johndoe",
			Password:  "secret123",
			Email:     "john@example.com",
			FirstName: "John",
			LastName:  "Doe",
		}).Return(nil)

		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(registerBody())))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Registration successful!", decodeBody(t, rec)["message"])
		svc.AssertExpectations(t)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(&MockAuthService{}, testutil.MakeNoopLogger())

		body := []byte(`{"username": "jo", "password": "123", "email": "not-an-email"}`)
		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		got := decodeBody(t, rec)
		assert.Equal(t, "Validation failed", got["message"])

		fields, ok := got["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "password")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "firstName")
		assert.Contains(t, fields, "lastName")
	})

	t.Run("username conflict", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, mock.AnythingOfType("model.RegisterParams")).
			Return(apierrors.NewErrUsernameTaken())

		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(registerBody())))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Username already exists", decodeBody(t, rec)["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(&MockAuthService{}, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{"))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "All required fields must be filled!", decodeBody(t, rec)["message"])
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("success sets refresh cookie", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		result := model.LoginResult{
			User:             model.User{Username: "johndoe", DisplayName: "John Doe"},
			AccessToken:      "access-token",
			RefreshToken:     "refresh-token",
			RefreshExpiresAt: time.Now().Add(14 * 24 * time.Hour),
		}
		svc.On("Login", mock.Anything, "johndoe", "secret123").Return(result, nil)

		body := []byte(`{"username": "johndoe", "password": "secret123"}`)
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody(t, rec)
		assert.Equal(t, "User John Doe logged in successfully!", got["message"])
		assert.Equal(t, "access-token", got["accessToken"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, "refreshToken", cookie.Name)
		assert.Equal(t, "refresh-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
		assert.Greater(t, cookie.MaxAge, 0)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Login", mock.Anything, "johndoe", "wrong").
			Return(model.LoginResult{}, apierrors.NewErrInvalidCredentials())

		body := []byte(`{"username": "johndoe", "password": "wrong"}`)
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid username or password!", decodeBody(t, rec)["message"])
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Refresh", mock.Anything, "refresh-token").Return("new-access-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-token"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new-access-token", decodeBody(t, rec)["accessToken"])
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(&MockAuthService{}, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token does not exist.", decodeBody(t, rec)["message"])
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Refresh", mock.Anything, "unknown").
			Return("", apierrors.NewErrSessionInvalid())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "unknown"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Invalid or expired token!", decodeBody(t, rec)["message"])
	})

	t.Run("expired session", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Refresh", mock.Anything, "stale").
			Return("", apierrors.NewErrSessionExpired())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Token has expired!", decodeBody(t, rec)["message"])
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	t.Run("success clears cookie", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Logout", mock.Anything, "refresh-token").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-token"})
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "refreshToken", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(&MockAuthService{}, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Token not found!", decodeBody(t, rec)["message"])
	})
}
