// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

// RemoteError represents a failed backend call. Message is safe to show to
// the user: it carries the server-provided message when one exists and a
// generic fallback otherwise, never transport-level detail.
type RemoteError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote call failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote call failed: %s", e.Message)
}

// UserMessage extracts a user-facing message from any error returned by the
// client, falling back to the provided default.
func UserMessage(err error, fallback string) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return fallback
}

// errorBody matches the error payload shapes the backend produces
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
