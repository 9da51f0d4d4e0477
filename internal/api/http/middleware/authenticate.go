package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens, loads the user and injects it into
// the request context before any protected handler runs.
type Authenticate struct {
	tokenParser    TokenParser
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, userStore model.UserStore, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenParser:    tokenParser,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handler wraps next with bearer token authentication.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenString string
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		user, err := m.authenticateUser(r.Context(), tokenString)
		if err != nil {
			m.respondError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserToContext(r.Context(), user)))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (model.User, error) {
	if tokenString == "" {
		return model.User{}, apierrors.NewErrMissingAccessToken()
	}

	userID, err := m.tokenParser.ParseAccessToken(tokenString)
	if err != nil || userID == uuid.Nil {
		return model.User{}, apierrors.NewErrInvalidAccessToken()
	}

	user, err := m.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		m.logger.Error("Authenticate middleware: failed to load user",
			"user_id", userID.String(),
			"error", err.Error())
		return model.User{}, err
	}

	return user, nil
}

func (m *Authenticate) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Server error, please try again later!"

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
		message = apiErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
