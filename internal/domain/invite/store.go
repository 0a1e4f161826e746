package invite

import (
	"context"
	"strings"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

// Store caches the pending invitations of the current project.
type Store struct {
	c      *state.Container[State]
	api    API
	logger *zap.Logger
}

// NewStore creates an invite store.
func NewStore(api API, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{c: state.New(defaults), api: api, logger: logger.Named("invite")}
}

func (s *Store) Snapshot() state.Snapshot[State] { return s.c.Snapshot() }

func (s *Store) Subscribe(fn func(state.Snapshot[State])) state.Token { return s.c.Subscribe(fn) }

func (s *Store) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// Handle implements dispatch.Handler.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	if scope.Teardown(a) {
		s.c.Reset()
		return dispatch.Done, true
	}

	switch a := a.(type) {
	case action.GetInvites:
		op := s.c.BeginLatest("list")
		return s.run(op, func(ctx context.Context) error {
			invites, err := s.api.ListInvites(ctx, a.ProjectID)
			if err != nil {
				return err
			}
			s.c.Apply(op, func(st *State) { st.Invites = invites })
			return nil
		}), true
	case action.CreateInvite:
		if strings.TrimSpace(a.Email) == "" || !a.Role.Valid() {
			return s.rejected(), true
		}
		op := s.c.Begin()
		return s.run(op, func(ctx context.Context) error {
			inv, err := s.api.CreateInvite(ctx, a.ProjectID, a.Email, a.Role)
			if err != nil {
				return err
			}
			s.c.Apply(op, func(st *State) { st.Invites = state.Prepend(st.Invites, *inv) })
			return nil
		}), true
	case action.UpdateInvite:
		if !a.Role.Valid() {
			return s.rejected(), true
		}
		op := s.c.Begin()
		return s.run(op, func(ctx context.Context) error {
			inv, err := s.api.UpdateInvite(ctx, a.ProjectID, a.InviteID, a.Role)
			if err != nil {
				return err
			}
			s.c.Apply(op, func(st *State) { st.Invites = state.Replace(st.Invites, *inv, byID(inv.ID)) })
			return nil
		}), true
	case action.RemoveInvite:
		op := s.c.Begin()
		return s.run(op, func(ctx context.Context) error {
			if err := s.api.RemoveInvite(ctx, a.ProjectID, a.InviteID); err != nil {
				return err
			}
			s.c.Apply(op, func(st *State) { st.Invites = state.Remove(st.Invites, byID(a.InviteID)) })
			return nil
		}), true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeInvites, a)
	}
	return dispatch.Done, false
}

func (s *Store) run(op state.Op, fn func(ctx context.Context) error) dispatch.Reaction {
	return scope.Run(s.c, op, apperr.ContextInvite, func(ctx context.Context) ([]action.Action, error) {
		return nil, fn(ctx)
	})
}

func (s *Store) rejected() dispatch.Reaction {
	s.c.SetError(msgInvalidInput)
	return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
		return nil, ErrInvalidInput
	}}
}

func byID(id string) func(model.ProjectInvite) bool {
	return func(inv model.ProjectInvite) bool { return inv.ID == id }
}
