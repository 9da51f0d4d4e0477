package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

// User manages profile updates and avatar storage.
type User struct {
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

// UpdateProfile applies the non-nil fields of params to the user's profile.
func (s *User) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, params.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.DisplayName != nil {
		user.DisplayName = *params.DisplayName
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Phone != nil {
		user.Phone = *params.Phone
	}
	if params.AvatarURL != nil {
		user.AvatarURL = *params.AvatarURL
	}

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			return model.User{}, apierrors.NewErrEmailTaken()
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// UploadAvatar stores an uploaded image in object storage and records its
// key and URL on the user, removing the previous avatar object if any.
func (s *User) UploadAvatar(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.AvatarKey != "" {
		// Best effort; a dangling object is not worth failing the upload.
		if err := s.storage.Delete(ctx, user.AvatarKey); err != nil {
			s.logger.Error("User service: failed to delete previous avatar",
				"user_id", userID.String(),
				"key", user.AvatarKey,
				"error", err.Error())
		}
	}

	key := fmt.Sprintf("avatars/%s", uuid.New())
	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return model.User{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user.AvatarKey = key
	user.AvatarURL = s.storage.URL(key)

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}
