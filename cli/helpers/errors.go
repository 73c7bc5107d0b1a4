package helpers

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for the broad failure classes commands care about.
var (
	// ErrNetwork represents a connectivity failure.
	ErrNetwork = errors.New("network error")

	// ErrAuth represents an authentication failure.
	ErrAuth = errors.New("authentication error")
)

// NetworkError wraps a connectivity failure with the operation it hit.
type NetworkError struct {
	Operation string
	Cause     error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("network error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("network error during %s", e.Operation)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// AuthError represents a failed or rejected session.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// NewNetworkError creates a network error for an operation.
func NewNetworkError(operation string, cause error) error {
	return &NetworkError{Operation: operation, Cause: cause}
}

// NewAuthError creates an authentication error.
func NewAuthError(reason string) error {
	return &AuthError{Reason: reason}
}

// IsNetworkError reports whether err looks like a connectivity failure.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable")
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	return err != nil && errors.Is(err, ErrAuth)
}
