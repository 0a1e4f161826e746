// Package remote holds the pieces of the Remote Access Layer contract that
// are shared by every store: the typed error and the body error codes.
// The per-store request interfaces live next to the stores that use them.
package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in the response body.
const (
	CodeAlreadyExists      = "AlreadyExists"
	CodeNotFound           = "NotFound"
	CodeInvalidCredentials = "InvalidCredentials"
	CodeForbidden          = "Forbidden"
	CodeBadRequest         = "BadRequest"
	CodePlanLimitExceeded  = "PlanLimitExceeded"
	CodeUnauthorized       = "Unauthorized"
)

// ErrUnavailable wraps failures where no response was received.
var ErrUnavailable = errors.New("remote unavailable")

// Error is a non-2xx response.
type Error struct {
	Status  int
	Code    string
	Message string
	Method  string
	Path    string
	// Authenticated is true when the request carried a session token.
	Authenticated bool
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, e.Code, msg)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, msg)
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if rerr, ok := AsError(err); ok {
		return rerr.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
