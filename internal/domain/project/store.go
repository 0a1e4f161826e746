package project

import (
	"context"
	"strings"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

const (
	keyList    = "list"
	keyCurrent = "current"
	keyStats   = "stats"
)

// Store caches the visible projects, the current project and its stats.
type Store struct {
	c      *state.Container[State]
	api    API
	logger *zap.Logger
}

// NewStore creates a project store.
func NewStore(api API, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		c:      state.New(defaults),
		api:    api,
		logger: logger.Named("project"),
	}
}

// Snapshot returns the current project state.
func (s *Store) Snapshot() state.Snapshot[State] { return s.c.Snapshot() }
func (s *Store) Subscribe(fn func(state.Snapshot[State])) state.Token { return s.c.Subscribe(fn) }
func (s *Store) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// CurrentID returns the id of the current project, or "".
func (s *Store) CurrentID() string {
	return s.c.Snapshot().Data.CurrentID()
}

// Handle implements dispatch.Handler.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	switch a := a.(type) {
	case action.GetProjects:
		return s.list(), true
	case action.CreateProject:
		return s.create(a), true
	case action.UpdateProject:
		return s.update(a), true
	case action.DeleteProject:
		return s.remove(a.ProjectID), true
	case action.SetCurrentProject:
		return s.setCurrent(a.ProjectID), true
	case action.ClearCurrentProject:
		s.c.Invalidate(keyCurrent)
		s.c.Invalidate(keyStats)
		s.c.Mutate(func(st *State) {
			st.Current = nil
			st.Stats = nil
		})
		return dispatch.Done, true
	case action.RefreshProjectStats:
		return s.refreshStats(a.ProjectID), true
	case action.Logout:
		s.c.Reset()
		return dispatch.Done, true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeProjects, a)
	}
	return dispatch.Done, false
}

func (s *Store) list() dispatch.Reaction {
	op := s.c.BeginLatest(keyList)
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		projects, err := s.api.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Projects = projects })
		return nil, nil
	})
}

func (s *Store) create(a action.CreateProject) dispatch.Reaction {
	if strings.TrimSpace(a.Name) == "" {
		s.c.SetError(msgNameRequired)
		return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
			return nil, ErrInvalidInput
		}}
	}

	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		p, err := s.api.CreateProject(ctx, a.Name, a.Description)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Projects = state.Prepend(st.Projects, *p) })
		s.logger.Info("project created", zap.String("project_id", p.ID))
		return []action.Action{action.SetCurrentProject{ProjectID: p.ID}}, nil
	})
}

func (s *Store) update(a action.UpdateProject) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		p, err := s.api.UpdateProject(ctx, a.ProjectID, a.Name, a.Description)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			st.Projects = state.Replace(st.Projects, *p, byID(p.ID))
			if st.Current != nil && st.Current.ID == p.ID {
				updated := *p
				if updated.Plan == nil {
					updated.Plan = st.Current.Plan
				}
				st.Current = &updated
			}
		})
		return nil, nil
	})
}

func (s *Store) remove(id string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.DeleteProject(ctx, id); err != nil {
			return nil, err
		}
		var wasCurrent bool
		s.c.Apply(op, func(st *State) {
			st.Projects = state.Remove(st.Projects, byID(id))
			if st.CurrentID() == id {
				wasCurrent = true
				st.Current = nil
				st.Stats = nil
			}
		})
		s.logger.Info("project deleted", zap.String("project_id", id))
		if wasCurrent {
			return []action.Action{action.ClearCurrentProject{}}, nil
		}
		return nil, nil
	})
}

// setCurrent clears the current project before anything is fetched, so that
// no data of the previous project is visible while the next one loads.
func (s *Store) setCurrent(id string) dispatch.Reaction {
	s.c.Invalidate(keyStats)
	s.c.Mutate(func(st *State) {
		st.Current = nil
		st.Stats = nil
	})

	op := s.c.BeginLatest(keyCurrent)
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		p, err := s.api.GetProject(ctx, id)
		if err != nil {
			return notFound(err), err
		}
		plan, err := s.api.GetProjectPlan(ctx, id)
		if err != nil {
			return notFound(err), err
		}
		current := *p
		current.Plan = plan
		if !s.c.Apply(op, func(st *State) { st.Current = &current }) {
			return nil, nil
		}
		return []action.Action{action.RefreshProjectStats{ProjectID: id}}, nil
	})
}

func (s *Store) refreshStats(id string) dispatch.Reaction {
	if id == "" {
		id = s.CurrentID()
	}
	if id == "" {
		s.logger.Debug("stats refresh skipped", zap.Error(ErrNoCurrentProject))
		return dispatch.Done
	}

	op := s.c.BeginLatest(keyStats)
	return scope.Run(s.c, op, apperr.ContextProject, func(ctx context.Context) ([]action.Action, error) {
		stats, err := s.api.GetProjectStats(ctx, id)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			if st.CurrentID() != id {
				return
			}
			st.Stats = stats
			current := *st.Current
			current.TermsCount = stats.Project.Terms
			current.LocalesCount = stats.Project.Locales
			st.Current = &current
			st.Projects = state.Map(st.Projects, func(p model.Project) model.Project {
				if p.ID == id {
					p.TermsCount = current.TermsCount
					p.LocalesCount = current.LocalesCount
				}
				return p
			})
		})
		return nil, nil
	})
}

func notFound(err error) []action.Action {
	if remote.IsNotFound(err) {
		return []action.Action{action.Navigate{Target: nav.NotFound}}
	}
	return nil
}

func byID(id string) func(model.Project) bool {
	return func(p model.Project) bool { return p.ID == id }
}
