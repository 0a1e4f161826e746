package scope_test

import (
	"context"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/rpggio/termstate/internal/state"
	"github.com/stretchr/testify/require"
)

func TestTeardown(t *testing.T) {
	require.True(t, scope.Teardown(action.SetCurrentProject{ProjectID: "p"}))
	require.True(t, scope.Teardown(action.ClearCurrentProject{}))
	require.True(t, scope.Teardown(action.Logout{}))
	require.False(t, scope.Teardown(action.GetProjects{}))
	require.False(t, scope.Teardown(action.RefreshProjectStats{}))
}

func TestRun_FailureSetsMessageAndStopsLoading(t *testing.T) {
	c := state.New(func() []string { return nil })
	op := c.Begin()
	require.True(t, c.Snapshot().IsLoading)

	notFound := &remote.Error{Status: 404, Code: remote.CodeNotFound}
	r := scope.Run(c, op, apperr.ContextTerm, func(context.Context) ([]action.Action, error) {
		return []action.Action{action.Navigate{Target: "/404"}}, notFound
	})
	next, err := r.Run(context.Background())
	require.ErrorIs(t, err, notFound)
	require.Len(t, next, 1)

	snap := c.Snapshot()
	require.False(t, snap.IsLoading)
	require.Equal(t, "Term not found.", snap.ErrorMessage)
}

func TestRun_SuccessStopsLoading(t *testing.T) {
	c := state.New(func() []string { return nil })
	op := c.Begin()
	r := scope.Run(c, op, apperr.ContextTerm, func(context.Context) ([]action.Action, error) {
		c.Apply(op, func(s *[]string) { *s = []string{"a"} })
		return nil, nil
	})
	_, err := r.Run(context.Background())
	require.NoError(t, err)
	require.False(t, c.Snapshot().IsLoading)
	require.Equal(t, []string{"a"}, c.Snapshot().Data)
}

func TestClearMessages_Scoped(t *testing.T) {
	c := state.New(func() int { return 0 })
	c.SetError("boom")

	_, ok := scope.ClearMessages(c, action.ScopeTerms, action.ClearMessages{Scope: action.ScopeTags})
	require.False(t, ok)
	require.Equal(t, "boom", c.Snapshot().ErrorMessage)

	_, ok = scope.ClearMessages(c, action.ScopeTerms, action.ClearMessages{})
	require.True(t, ok)
	require.Empty(t, c.Snapshot().ErrorMessage)
}
