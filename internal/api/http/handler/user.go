package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// maxAvatarSize bounds the multipart form memory for avatar uploads.
const maxAvatarSize = 10 << 20

// UserService defines profile operations.
type UserService interface {
	UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) (model.User, error)
}

// User handles HTTP endpoints for the authenticated user's profile.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type userResponse struct {
	User userJSON `json:"user"`
}

// Me returns the authenticated user attached by the request gate.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	respondJSON(w, http.StatusOK, userResponse{User: toUserJSON(user)})
}

type updateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	AvatarURL   *string `json:"avatarUrl"`
}

// UpdateProfile applies the string fields present in the body to the
// authenticated user's profile.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string]string{"_": "invalid request body"})
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), model.UpdateProfileParams{
		UserID:      user.ID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, userResponse{User: toUserJSON(updated)})
}

// UploadAvatar stores the uploaded "avatar" form file and returns the
// updated profile.
func (h *User) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(h.logger, w, apierrors.NewErrUserNotFound())
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		respondError(h.logger, w, apierrors.NewErrNoFileUploaded())
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondError(h.logger, w, apierrors.NewErrNoFileUploaded())
		return
	}
	defer file.Close()

	updated, err := h.userService.UploadAvatar(r.Context(), user.ID, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("User handler: avatar upload failed",
			"user_id", user.ID.String(),
			"error", err.Error())
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, userResponse{User: toUserJSON(updated)})
}

// Test is a lightweight authenticated liveness probe.
func (h *User) Test(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
