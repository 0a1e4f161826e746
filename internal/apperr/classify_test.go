package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/stretchr/testify/require"
)

func status(code int) error {
	return &remote.Error{Status: code, Method: http.MethodGet, Path: "/x", Authenticated: true}
}

func TestClassify_NotFoundDependsOnContext(t *testing.T) {
	err := status(http.StatusNotFound)
	require.Equal(t, "User not found.", apperr.Classify(err, apperr.ContextUserLookup))
	require.Equal(t, "There is no user to invite with this email.", apperr.Classify(err, apperr.ContextInvite))
	require.Equal(t, "The requested item was not found.", apperr.Classify(err, apperr.Context("other")))
}

func TestClassify_BodyCodeWinsOverStatus(t *testing.T) {
	err := &remote.Error{Status: http.StatusBadRequest, Code: remote.CodeAlreadyExists}
	require.Equal(t, "This term already exists.", apperr.Classify(err, apperr.ContextTerm))

	err = &remote.Error{Status: http.StatusForbidden, Code: remote.CodePlanLimitExceeded}
	require.Equal(t, apperr.MsgPlanLimit, apperr.Classify(err, apperr.ContextTerm))
}

func TestClassify_Statuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		ctx  apperr.Context
		want string
	}{
		{"nil", nil, apperr.ContextTerm, ""},
		{"login 401", status(http.StatusUnauthorized), apperr.ContextLogin, "Invalid email or password."},
		{"password 401", status(http.StatusUnauthorized), apperr.ContextPassword, "Your current password is incorrect."},
		{"other 401", status(http.StatusUnauthorized), apperr.ContextTerm, apperr.MsgSessionExpired},
		{"forbidden", status(http.StatusForbidden), apperr.ContextProject, apperr.MsgForbidden},
		{"conflict", status(http.StatusConflict), apperr.ContextSignup, "An account with this email already exists."},
		{"server", status(http.StatusBadGateway), apperr.ContextTerm, apperr.MsgServer},
		{"bad request message", &remote.Error{Status: http.StatusBadRequest, Message: "value must not be empty"}, apperr.ContextTerm, "value must not be empty."},
		{"unreachable", fmt.Errorf("get: %w", remote.ErrUnavailable), apperr.ContextTerm, apperr.MsgUnreachable},
		{"cancelled", context.Canceled, apperr.ContextTerm, apperr.MsgCancelled},
		{"unknown", errors.New("boom"), apperr.ContextTerm, apperr.MsgUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, apperr.Classify(tc.err, tc.ctx))
		})
	}
}

func TestRequiresReauth(t *testing.T) {
	updateMe := &remote.Error{Status: http.StatusUnauthorized, Method: http.MethodPatch, Path: "/api/v1/users/me", Authenticated: true}
	changePassword := &remote.Error{Status: http.StatusUnauthorized, Method: http.MethodPost, Path: "/api/v1/auth/change-password", Authenticated: true}
	anonymous := &remote.Error{Status: http.StatusUnauthorized, Method: http.MethodPost, Path: "/api/v1/auth/token"}

	require.True(t, apperr.RequiresReauth(fmt.Errorf("update me: %w", updateMe)))
	require.False(t, apperr.RequiresReauth(changePassword))
	require.False(t, apperr.RequiresReauth(anonymous))
	require.False(t, apperr.RequiresReauth(status(http.StatusForbidden)))
}

func TestGuard(t *testing.T) {
	err := &remote.Error{Status: http.StatusUnauthorized, Path: "/api/v1/users/me", Authenticated: true}

	require.Equal(t, []action.Action{action.Logout{Reason: action.ReasonExpired}}, apperr.Guard(action.UpdateMe{}, err))
	require.Nil(t, apperr.Guard(action.Logout{}, err))
	require.Nil(t, apperr.Guard(action.ChangePassword{}, &remote.Error{Status: http.StatusUnauthorized, Path: "/api/v1/auth/change-password", Authenticated: true}))
}
