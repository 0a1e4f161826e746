package team

import (
	"context"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

// Store caches the collaborators of the current project.
type Store struct {
	c       *state.Container[State]
	api     API
	session Session
	logger  *zap.Logger
}

// NewStore creates a team store. session identifies which member is the
// signed-in user.
func NewStore(api API, session Session, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		c:       state.New(defaults),
		api:     api,
		session: session,
		logger:  logger.Named("team"),
	}
}

func (s *Store) Snapshot() state.Snapshot[State] { return s.c.Snapshot() }

func (s *Store) Subscribe(fn func(state.Snapshot[State])) state.Token { return s.c.Subscribe(fn) }

func (s *Store) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// Handle implements dispatch.Handler. Switching projects resets the store
// and loads the members of the new project.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	if scope.Teardown(a) {
		s.c.Reset()
		if sc, ok := a.(action.SetCurrentProject); ok {
			return s.list(sc.ProjectID), true
		}
		return dispatch.Done, true
	}

	switch a := a.(type) {
	case action.GetProjectUsers:
		return s.list(a.ProjectID), true
	case action.UpdateProjectUser:
		return s.update(a), true
	case action.RemoveProjectUser:
		return s.remove(a.ProjectID, a.UserID), true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeTeam, a)
	}
	return dispatch.Done, false
}

// list marks the signed-in user while applying the fetched members. The
// lookup happens once per fetch.
func (s *Store) list(projectID string) dispatch.Reaction {
	op := s.c.BeginLatest("list")
	return scope.Run(s.c, op, apperr.ContextUserLookup, func(ctx context.Context) ([]action.Action, error) {
		users, err := s.api.ListProjectUsers(ctx, projectID)
		if err != nil {
			return nil, err
		}
		self := s.session.CurrentUserID()
		users = state.Map(users, func(u model.ProjectUser) model.ProjectUser {
			u.IsSelf = self != "" && u.UserID == self
			return u
		})
		s.c.Apply(op, func(st *State) { st.Users = users })
		return nil, nil
	})
}

func (s *Store) update(a action.UpdateProjectUser) dispatch.Reaction {
	if !a.Role.Valid() {
		s.c.SetError(msgInvalidRole)
		return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
			return nil, ErrInvalidRole
		}}
	}

	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextUserLookup, func(ctx context.Context) ([]action.Action, error) {
		u, err := s.api.UpdateProjectUser(ctx, a.ProjectID, a.UserID, a.Role)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			st.Users = state.Map(st.Users, func(cur model.ProjectUser) model.ProjectUser {
				if cur.UserID != u.UserID {
					return cur
				}
				next := *u
				next.IsSelf = cur.IsSelf
				return next
			})
		})
		return nil, nil
	})
}

// remove drops a member. Removing yourself leaves the project.
func (s *Store) remove(projectID, userID string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextUserLookup, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.RemoveProjectUser(ctx, projectID, userID); err != nil {
			return nil, err
		}
		var wasSelf bool
		s.c.Apply(op, func(st *State) {
			if u, ok := state.Find(st.Users, byUser(userID)); ok {
				wasSelf = u.IsSelf
			}
			st.Users = state.Remove(st.Users, byUser(userID))
		})
		if !wasSelf {
			return nil, nil
		}
		s.logger.Info("left project", zap.String("project_id", projectID))
		return []action.Action{
			action.ClearCurrentProject{},
			action.Navigate{Target: nav.Landing},
			action.GetProjects{},
		}, nil
	})
}

func byUser(id string) func(model.ProjectUser) bool {
	return func(u model.ProjectUser) bool { return u.UserID == id }
}
