// Package scope holds what the stores share: the project-scope teardown rule
// and the loading/error discipline around remote calls.
package scope

import (
	"context"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/state"
)

// Teardown reports whether a leaves or switches the project scope. Project
// scoped stores reset to their defaults when it does.
func Teardown(a action.Action) bool {
	switch a.(type) {
	case action.SetCurrentProject, action.ClearCurrentProject, action.Logout:
		return true
	}
	return false
}

// Run returns a Reaction that executes fn for op. The store stops loading
// when fn returns, whatever the outcome; a failure is classified into the
// store's error message and returned to the dispatcher along with any
// follow-ups fn produced.
func Run[S any](c *state.Container[S], op state.Op, ec apperr.Context, fn func(ctx context.Context) ([]action.Action, error)) dispatch.Reaction {
	return dispatch.Reaction{Run: func(ctx context.Context) ([]action.Action, error) {
		defer c.End(op)
		next, err := fn(ctx)
		if err != nil {
			c.Fail(op, apperr.Classify(err, ec))
			return next, err
		}
		return next, nil
	}}
}

// ClearMessages handles a ClearMessages action for a store registered under
// s. It reports false when the action targets another store.
func ClearMessages[S any](c *state.Container[S], s action.Scope, a action.ClearMessages) (dispatch.Reaction, bool) {
	if !s.Matches(a.Scope) {
		return dispatch.Done, false
	}
	c.ClearMessages()
	return dispatch.Done, true
}
