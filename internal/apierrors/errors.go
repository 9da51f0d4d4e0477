// Package apierrors defines the caller-visible error taxonomy. Every failure
// a handler may surface is one of these; anything else is an internal error
// and is never shown to clients.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError carries a user-safe message and the HTTP status it maps to.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with an arbitrary status and message.
func New(status int, format string, args ...any) *APIError {
	return &APIError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// NewErrMissingFields reports an incomplete register/login body.
func NewErrMissingFields() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "All required fields must be filled!"}
}

// NewErrUsernameTaken reports a register conflict on the username field.
func NewErrUsernameTaken() *APIError {
	return &APIError{Status: http.StatusConflict, Message: "Username already exists"}
}

// NewErrEmailTaken reports a register conflict on the email field.
func NewErrEmailTaken() *APIError {
	return &APIError{Status: http.StatusConflict, Message: "Email already exists"}
}

// NewErrInvalidCredentials is the deliberately generic login failure: the
// same message regardless of whether the username or the password was wrong.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Invalid username or password!"}
}

// NewErrRefreshTokenMissing reports a refresh call without a cookie.
func NewErrRefreshTokenMissing() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Token does not exist."}
}

// NewErrSessionInvalid reports a refresh token with no matching session.
func NewErrSessionInvalid() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Invalid or expired token!"}
}

// NewErrSessionExpired reports a matching session whose expiry has passed.
func NewErrSessionExpired() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Token has expired!"}
}

// NewErrLogoutTokenMissing reports a logout call without a cookie.
func NewErrLogoutTokenMissing() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Token not found!"}
}

// NewErrMissingAccessToken reports a protected request without a bearer token.
func NewErrMissingAccessToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Access token not found!"}
}

// NewErrInvalidAccessToken reports a malformed, badly signed or expired
// bearer token. The reason is not distinguished to the caller.
func NewErrInvalidAccessToken() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Access token expired or invalid!"}
}

// NewErrUserNotFound reports that a resolved user id no longer exists.
func NewErrUserNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "User not found."}
}

// NewErrWorkspaceNotFound reports a missing workspace.
func NewErrWorkspaceNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Workspace not found"}
}

// NewErrBoardNotFound reports a missing board.
func NewErrBoardNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Board not found"}
}

// NewErrForbidden reports an access check failure on a workspace or board.
func NewErrForbidden() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Forbidden"}
}

// NewErrOnlyOwnerCanUpdate reports a board update by a non-owner.
func NewErrOnlyOwnerCanUpdate() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Only owner can update board"}
}

// NewErrOnlyOwnerCanDelete reports a board delete by a non-owner.
func NewErrOnlyOwnerCanDelete() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Only owner can delete board"}
}

// NewErrInvalidWorkspaceID reports a board create without a usable workspace id.
func NewErrInvalidWorkspaceID() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "workspace is required and must be a valid workspace id"}
}

// NewErrInvalidMemberID reports a member list entry that is not a valid id.
func NewErrInvalidMemberID(raw string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("Invalid member id: %s", raw)}
}

// NewErrInvalidID reports an unparseable path id.
func NewErrInvalidID() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid id"}
}

// NewErrNoFileUploaded reports an avatar upload without a file part.
func NewErrNoFileUploaded() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "No file uploaded"}
}
