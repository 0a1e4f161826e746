package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpggio/termstate/internal/domain/client"
	"github.com/rpggio/termstate/internal/domain/invite"
	"github.com/rpggio/termstate/internal/domain/project"
	"github.com/rpggio/termstate/internal/domain/session"
	"github.com/rpggio/termstate/internal/domain/taxonomy"
	"github.com/rpggio/termstate/internal/domain/team"
	"github.com/rpggio/termstate/internal/domain/term"
	"github.com/rpggio/termstate/internal/domain/translation"
	"github.com/rpggio/termstate/internal/remote"
)

// APIError represents a tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	errNotSignedIn = &APIError{Code: "UNAUTHENTICATED", Message: "not signed in", RecoveryHint: "Call login first"}
	errNoProject   = &APIError{Code: "NO_PROJECT", Message: "no project selected", RecoveryHint: "Call select_project first"}
)

// MapError turns a failed action into a tool error. message is the text the
// failing store recorded for it and wins over the generic one.
func MapError(err error, message string) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	out := classify(err)
	if message != "" {
		out.Message = message
	}
	return out
}

func classify(err error) *APIError {
	switch {
	case errors.Is(err, project.ErrNoCurrentProject):
		return &APIError{Code: errNoProject.Code, Message: errNoProject.Message, RecoveryHint: errNoProject.RecoveryHint}
	case errors.Is(err, term.ErrInvalidInput),
		errors.Is(err, translation.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, session.ErrUnknownProvider),
		errors.Is(err, taxonomy.ErrInvalidInput),
		errors.Is(err, team.ErrInvalidRole),
		errors.Is(err, invite.ErrInvalidInput),
		errors.Is(err, client.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check the tool arguments"}
	case errors.Is(err, remote.ErrUnavailable):
		return &APIError{Code: "UNAVAILABLE", Message: "server unreachable", RecoveryHint: "Retry later"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &APIError{Code: "CANCELLED", Message: err.Error()}
	}

	rerr, ok := remote.AsError(err)
	if !ok {
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
	switch {
	case rerr.Status == http.StatusUnauthorized:
		return &APIError{Code: "UNAUTHENTICATED", Message: rerr.Message, RecoveryHint: "Call login again"}
	case rerr.Status == http.StatusForbidden:
		return &APIError{Code: "FORBIDDEN", Message: rerr.Message}
	case rerr.Status == http.StatusNotFound:
		return &APIError{Code: "NOT_FOUND", Message: rerr.Message, RecoveryHint: "Check ID spelling"}
	case rerr.Status == http.StatusConflict, rerr.Code == remote.CodeAlreadyExists:
		return &APIError{Code: "ALREADY_EXISTS", Message: rerr.Message}
	case rerr.Status == http.StatusPaymentRequired, rerr.Code == remote.CodePlanLimitExceeded:
		return &APIError{Code: "PLAN_LIMIT", Message: rerr.Message, RecoveryHint: "Upgrade the project plan"}
	case rerr.Status == http.StatusBadRequest:
		return &APIError{Code: "INVALID_INPUT", Message: rerr.Message}
	default:
		return &APIError{Code: "REMOTE_ERROR", Message: rerr.Error()}
	}
}
