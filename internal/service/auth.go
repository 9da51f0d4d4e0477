package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// DefaultRefreshTTL is the session lifetime used when none is configured.
const DefaultRefreshTTL = 14 * 24 * time.Hour

// refreshTokenBytes is the entropy of a refresh token; hex-encoded it
// yields 128 characters.
const refreshTokenBytes = 64

// Auth orchestrates registration, login, token refresh and logout over the
// user store, the session store, the password hasher and the token manager.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	refreshTTL   time.Duration
	logger       *logger.Logger

	// now is overridable in tests.
	now func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		refreshTTL:   refreshTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a new user. It does not issue tokens; the caller must
// log in afterwards. When both username and email collide, the username
// conflict is reported.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) error {
	if params.Username == "" || params.Password == "" || params.Email == "" ||
		params.FirstName == "" || params.LastName == "" {
		return apierrors.NewErrMissingFields()
	}

	existing, err := a.userStore.GetByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to check existing user",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to get user by username or email: %w", err)
	}

	if err == nil {
		if existing.Username == params.Username {
			return apierrors.NewErrUsernameTaken()
		}
		return apierrors.NewErrEmailTaken()
	}

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		DisplayName:  params.FirstName + " " + params.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			// Lost a race with a concurrent registration.
			if _, lookupErr := a.userStore.GetByUsername(ctx, params.Username); lookupErr == nil {
				return apierrors.NewErrUsernameTaken()
			}
			return apierrors.NewErrEmailTaken()
		}
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", params.Username)

	return nil
}

// Login verifies credentials, mints an access token and persists a fresh
// session. Unknown username and wrong password are indistinguishable to the
// caller. Each successful login creates its own session row; earlier
// sessions stay valid, which is what allows concurrent devices.
func (a *Auth) Login(ctx context.Context, username, plaintext string) (model.LoginResult, error) {
	if username == "" || plaintext == "" {
		return model.LoginResult{}, apierrors.NewErrMissingFields()
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(plaintext, user.PasswordHash) {
		return model.LoginResult{}, apierrors.NewErrInvalidCredentials()
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := a.now().Add(a.refreshTTL)
	session := model.Session{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}

	if _, err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"username", username,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username)

	return model.LoginResult{
		User:             user,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Refresh exchanges a still-valid refresh token for a new access token. The
// refresh token itself is not rotated; it stays usable until its expiry or
// an explicit logout.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := a.sessionStore.GetByToken(ctx, refreshToken)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrSessionInvalid()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get session by token",
			"error", err.Error())
		return "", fmt.Errorf("failed to get session by token: %w", err)
	}

	if session.ExpiresAt.Before(a.now()) {
		return "", apierrors.NewErrSessionExpired()
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(session.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout deletes the session holding refreshToken. A token with no matching
// session is a no-op, so replaying a logout still succeeds.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.sessionStore.DeleteByToken(ctx, refreshToken); err != nil {
		a.logger.Error("Auth service: failed to delete session",
			"error", err.Error())
		return fmt.Errorf("failed to delete session by token: %w", err)
	}

	a.logger.Info("Auth service: session deleted")

	return nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
