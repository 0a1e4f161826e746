package remote_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rpggio/termstate/internal/remote"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := &remote.Error{Status: http.StatusConflict, Code: remote.CodeAlreadyExists, Method: "POST", Path: "/projects/p1/terms"}
	require.Equal(t, "POST /projects/p1/terms: 409 AlreadyExists: Conflict", err.Error())

	err = &remote.Error{Status: http.StatusNotFound, Message: "missing", Method: "GET", Path: "/users/me"}
	require.Equal(t, "GET /users/me: 404: missing", err.Error())
}

func TestStatusOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading terms: %w", &remote.Error{Status: http.StatusNotFound})
	require.Equal(t, http.StatusNotFound, remote.StatusOf(err))
	require.True(t, remote.IsNotFound(err))

	require.Zero(t, remote.StatusOf(errors.New("plain")))
	require.False(t, remote.IsNotFound(nil))
}
