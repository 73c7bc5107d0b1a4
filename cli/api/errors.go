package api

import (
	"errors"
	"fmt"

	"github.com/nutriveg/nutriveg-cli/cli/helpers"
)

// Session-level failures handled centrally by the client. Both clear the
// persisted credentials before they are returned.
var (
	ErrSessionExpired   = errors.New("session expired, please log in again")
	ErrPermissionDenied = errors.New("this action is restricted to nutritionists")
)

// Call-level markers the platform reports inside otherwise ordinary
// responses.
var (
	// ErrNotOwner: deleting or editing content published by someone else.
	ErrNotOwner = errors.New("you do not own this content")
	// ErrAlreadyRated: a user may rate each recipe only once.
	ErrAlreadyRated = errors.New("recipe already rated by this user")
	// ErrInvalidCredentials: login rejected.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailInUse: registration with an email that already has an account.
	ErrEmailInUse = errors.New("email address already registered")
)

type sessionError struct {
	cause error
}

func (e *sessionError) Error() string { return e.cause.Error() }

func (e *sessionError) Is(target error) bool {
	return target == e.cause || target == helpers.ErrAuth
}

// APIError is an error response passed through for the caller to handle.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("API error (status %d)", e.Status)
}

// errorBody is the platform's error payload shape; some endpoints use
// "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
