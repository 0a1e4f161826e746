// Package apperr turns remote failures into the messages stores display, and
// decides when a failure ends the session.
package apperr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rpggio/termstate/internal/remote"
)

// Context is the kind of operation that failed. The same status reads
// differently depending on it.
type Context string

const (
	ContextLogin       Context = "login"
	ContextSignup      Context = "signup"
	ContextProvider    Context = "provider"
	ContextAccount     Context = "account"
	ContextPassword    Context = "password"
	ContextReset       Context = "reset_password"
	ContextProject     Context = "project"
	ContextTerm        Context = "term"
	ContextTranslation Context = "translation"
	ContextLocale      Context = "locale"
	ContextLabel       Context = "label"
	ContextTag         Context = "tag"
	ContextUserLookup  Context = "user_lookup"
	ContextInvite      Context = "invite"
	ContextClient      Context = "client"
)

const (
	MsgUnexpected     = "An unexpected error occurred. Please try again."
	MsgUnreachable    = "Could not reach the server. Check your connection and try again."
	MsgCancelled      = "The request was cancelled."
	MsgSessionExpired = "Your session has expired. Please sign in again."
	MsgForbidden      = "You do not have permission to perform this action."
	MsgPlanLimit      = "You have reached the limits of your current plan."
	MsgRateLimited    = "Too many requests. Please wait a moment and try again."
	MsgServer         = "The server encountered an error. Please try again later."
	MsgBadRequest     = "The request was not valid."
)

var notFound = map[Context]string{
	ContextProject:     "Project not found.",
	ContextTerm:        "Term not found.",
	ContextTranslation: "Translation not found.",
	ContextLocale:      "Locale not found.",
	ContextLabel:       "Label not found.",
	ContextTag:         "Tag not found.",
	ContextUserLookup:  "User not found.",
	ContextInvite:      "There is no user to invite with this email.",
	ContextClient:      "API client not found.",
	ContextAccount:     "User not found.",
	ContextReset:       "This password reset link is invalid or has expired.",
}

var alreadyExists = map[Context]string{
	ContextSignup:     "An account with this email already exists.",
	ContextProject:    "A project with this name already exists.",
	ContextTerm:       "This term already exists.",
	ContextLocale:     "This locale is already enabled for the project.",
	ContextLabel:      "A label with this value already exists.",
	ContextTag:        "A tag with this value already exists.",
	ContextInvite:     "This email has already been invited.",
	ContextUserLookup: "This user is already a member of the project.",
	ContextClient:     "An API client with this name already exists.",
	ContextAccount:    "This email is already in use.",
}

// Classify returns the message a store records for err. It returns "" for a
// nil error.
func Classify(err error, c Context) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return MsgCancelled
	}
	rerr, ok := remote.AsError(err)
	if !ok {
		if errors.Is(err, remote.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
			return MsgUnreachable
		}
		return MsgUnexpected
	}

	switch rerr.Code {
	case remote.CodeAlreadyExists:
		return existsMessage(c)
	case remote.CodePlanLimitExceeded:
		return MsgPlanLimit
	case remote.CodeInvalidCredentials:
		return credentialsMessage(c)
	}

	switch status := rerr.Status; {
	case status == http.StatusBadRequest:
		if rerr.Message != "" {
			return sentence(rerr.Message)
		}
		return MsgBadRequest
	case status == http.StatusUnauthorized:
		return credentialsMessage(c)
	case status == http.StatusPaymentRequired:
		return MsgPlanLimit
	case status == http.StatusForbidden:
		return MsgForbidden
	case status == http.StatusNotFound:
		if msg, ok := notFound[c]; ok {
			return msg
		}
		return "The requested item was not found."
	case status == http.StatusConflict:
		return existsMessage(c)
	case status == http.StatusTooManyRequests:
		return MsgRateLimited
	case status >= 500:
		return MsgServer
	}
	return MsgUnexpected
}

func existsMessage(c Context) string {
	if msg, ok := alreadyExists[c]; ok {
		return msg
	}
	return "This item already exists."
}

func credentialsMessage(c Context) string {
	switch c {
	case ContextLogin:
		return "Invalid email or password."
	case ContextProvider:
		return "Could not sign in with this provider."
	case ContextPassword:
		return "Your current password is incorrect."
	case ContextReset:
		return notFound[ContextReset]
	}
	return MsgSessionExpired
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
