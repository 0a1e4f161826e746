package client

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

// Store caches the API clients of the current project.
type Store struct {
	c      *state.Container[State]
	api    API
	logger *zap.Logger
}

// NewStore creates a client store.
func NewStore(api API, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{c: state.New(defaults), api: api, logger: logger.Named("client")}
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
	case action.GetClients:
		return s.list(a.ProjectID), true
	case action.CreateClient:
		if strings.TrimSpace(a.Name) == "" || !a.Role.Valid() {
			return s.rejected(), true
		}
		return s.create(a), true
	case action.UpdateClient:
		if !a.Role.Valid() {
			return s.rejected(), true
		}
		return s.update(a), true
	case action.RemoveClient:
		return s.remove(a.ProjectID, a.ClientID), true
	case action.RegenerateClientSecret:
		return s.regenerate(a.ProjectID, a.ClientID), true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeClients, a)
	}
	return dispatch.Done, false
}

func (s *Store) list(projectID string) dispatch.Reaction {
	op := s.c.BeginLatest("list")
	return scope.Run(s.c, op, apperr.ContextClient, func(ctx context.Context) ([]action.Action, error) {
		clients, err := s.api.ListClients(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Clients = clients })
		return nil, nil
	})
}

func (s *Store) create(a action.CreateClient) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextClient, func(ctx context.Context) ([]action.Action, error) {
		cl, err := s.api.CreateClient(ctx, a.ProjectID, a.Name, a.Role)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Clients = state.Prepend(st.Clients, *cl) })
		s.logger.Info("client created", zap.String("client_id", cl.ID))
		return nil, nil
	})
}

// update keeps a secret that is still on display; the update response never
// carries one.
func (s *Store) update(a action.UpdateClient) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextClient, func(ctx context.Context) ([]action.Action, error) {
		cl, err := s.api.UpdateClient(ctx, a.ProjectID, a.ClientID, a.Name, a.Role)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			st.Clients = state.Map(st.Clients, func(cur model.ProjectClient) model.ProjectClient {
				if cur.ID != cl.ID {
					return cur
				}
				next := *cl
				if next.Secret == "" {
					next.Secret = cur.Secret
				}
				return next
			})
		})
		return nil, nil
	})
}

func (s *Store) remove(projectID, clientID string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextClient, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.RemoveClient(ctx, projectID, clientID); err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Clients = state.Remove(st.Clients, byID(clientID)) })
		return nil, nil
	})
}

func (s *Store) regenerate(projectID, clientID string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextClient, func(ctx context.Context) ([]action.Action, error) {
		cl, err := s.api.RegenerateClientSecret(ctx, projectID, clientID)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Clients = state.Replace(st.Clients, *cl, byID(cl.ID)) })
		return nil, nil
	})
}

func (s *Store) rejected() dispatch.Reaction {
	s.c.SetError(msgInvalidInput)
	return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
		return nil, ErrInvalidInput
	}}
}

func byID(id string) func(model.ProjectClient) bool {
	return func(c model.ProjectClient) bool { return c.ID == id }
}
