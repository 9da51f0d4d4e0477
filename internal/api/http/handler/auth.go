package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// refreshCookieName is the cookie carrying the refresh token. It is
// HTTP-only and never readable by client scripts.
const refreshCookieName = "refreshToken"

// AuthService defines registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) error
	Login(ctx context.Context, username, password string) (model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r registerRequest) validate() map[string]string {
	fields := map[string]string{}
	if len(r.Username) < 3 {
		fields["username"] = "username must contain at least 3 characters"
	}
	if len(r.Password) < 6 {
		fields["password"] = "password must contain at least 6 characters"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "invalid email address"
	}
	if r.FirstName == "" {
		fields["firstName"] = "firstName is required"
	}
	if r.LastName == "" {
		fields["lastName"] = "lastName is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account. Tokens are not issued here; the
// client logs in afterwards.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, apierrors.NewErrMissingFields())
		return
	}

	if fields := req.validate(); fields != nil {
		respondValidation(w, fields)
		return
	}

	err := h.authService.Register(r.Context(), model.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		respondError(h.logger, w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"username", req.Username)

	respondMessage(w, http.StatusCreated, "Registration successful!")
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// Login verifies credentials, returns the access token in the body and sets
// the refresh token cookie.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, apierrors.NewErrMissingFields())
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	setRefreshCookie(w, result.RefreshToken, result.RefreshExpiresAt)

	h.logger.Info("Auth handler: login completed",
		"username", req.Username)

	respondJSON(w, http.StatusOK, loginResponse{
		Message:     fmt.Sprintf("User %s logged in successfully!", result.User.DisplayName),
		AccessToken: result.AccessToken,
	})
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Refresh exchanges the refresh token cookie for a new access token.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		respondError(h.logger, w, apierrors.NewErrRefreshTokenMissing())
		return
	}

	accessToken, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
}

// Logout deletes the session for the presented cookie and clears it. The
// delete is a no-op when no session matches, so the call still succeeds.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		respondError(h.logger, w, apierrors.NewErrLogoutTokenMissing())
		return
	}

	if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
		respondError(h.logger, w, err)
		return
	}

	clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func setRefreshCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
