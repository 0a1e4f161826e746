// Package taxonomy implements the store shared by labels and tags. Both are
// project-scoped markers with the same lifecycle and the same attach/detach
// routes; the label and tag packages map their own actions onto it.
package taxonomy

import (
	"context"
	"strings"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

const keyList = "list"

// Store caches the markers of the current project.
type Store[T Item] struct {
	c      *state.Container[State[T]]
	api    API[T]
	cfg    Config
	logger *zap.Logger
}

// NewStore creates a taxonomy store.
func NewStore[T Item](api API[T], cfg Config, logger *zap.Logger) *Store[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[T]{
		c:      state.New(func() State[T] { return State[T]{Items: []T{}} }),
		api:    api,
		cfg:    cfg,
		logger: logger.Named(cfg.Name),
	}
}

func (s *Store[T]) Snapshot() state.Snapshot[State[T]] { return s.c.Snapshot() }

func (s *Store[T]) Subscribe(fn func(state.Snapshot[State[T]])) state.Token {
	return s.c.Subscribe(fn)
}

func (s *Store[T]) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// Reset restores the empty defaults.
func (s *Store[T]) Reset() dispatch.Reaction {
	s.c.Reset()
	return dispatch.Done
}

// ClearMessages handles a ClearMessages action.
func (s *Store[T]) ClearMessages(a action.ClearMessages) (dispatch.Reaction, bool) {
	return scope.ClearMessages(s.c, s.cfg.Scope, a)
}

// List loads the markers of a project.
func (s *Store[T]) List(projectID string) dispatch.Reaction {
	op := s.c.BeginLatest(keyList)
	return scope.Run(s.c, op, s.cfg.ErrContext, func(ctx context.Context) ([]action.Action, error) {
		items, err := s.api.List(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State[T]) { st.Items = items })
		return nil, nil
	})
}

// Create adds a marker and prepends it.
func (s *Store[T]) Create(projectID, value, color string) dispatch.Reaction {
	if strings.TrimSpace(value) == "" {
		s.c.SetError(msgValueRequired)
		return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
			return nil, ErrInvalidInput
		}}
	}

	op := s.c.Begin()
	return scope.Run(s.c, op, s.cfg.ErrContext, func(ctx context.Context) ([]action.Action, error) {
		item, err := s.api.Create(ctx, projectID, value, color)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State[T]) { st.Items = state.Prepend(st.Items, *item) })
		return nil, nil
	})
}

// Update replaces a marker and cascades updated(item) so that copies
// embedded elsewhere follow.
func (s *Store[T]) Update(projectID string, item T, updated func(T) action.Action) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, s.cfg.ErrContext, func(ctx context.Context) ([]action.Action, error) {
		res, err := s.api.Update(ctx, projectID, item)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State[T]) { st.Items = Refresh(st.Items, *res) })
		return []action.Action{updated(*res)}, nil
	})
}

// Remove deletes a marker and cascades removed.
func (s *Store[T]) Remove(projectID, id string, removed action.Action) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, s.cfg.ErrContext, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.Remove(ctx, projectID, id); err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State[T]) { st.Items = Detach(st.Items, id) })
		s.logger.Debug("removed", zap.String("id", id))
		return []action.Action{removed}, nil
	})
}

// AttachTerm links a marker to a term. Consumers patch their copy before
// the call settles.
func (s *Store[T]) AttachTerm(projectID, id, termID string) dispatch.Reaction {
	return s.link(func(ctx context.Context) error {
		return s.api.AttachTerm(ctx, projectID, id, termID)
	})
}

// DetachTerm unlinks a marker from a term.
func (s *Store[T]) DetachTerm(projectID, id, termID string) dispatch.Reaction {
	return s.link(func(ctx context.Context) error {
		return s.api.DetachTerm(ctx, projectID, id, termID)
	})
}

// AttachTranslation links a marker to the translation of a term in one locale.
func (s *Store[T]) AttachTranslation(projectID, id, termID, localeCode string) dispatch.Reaction {
	return s.link(func(ctx context.Context) error {
		return s.api.AttachTranslation(ctx, projectID, id, termID, localeCode)
	})
}

// DetachTranslation unlinks a marker from a translation.
func (s *Store[T]) DetachTranslation(projectID, id, termID, localeCode string) dispatch.Reaction {
	return s.link(func(ctx context.Context) error {
		return s.api.DetachTranslation(ctx, projectID, id, termID, localeCode)
	})
}

func (s *Store[T]) link(call func(ctx context.Context) error) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, s.cfg.ErrContext, func(ctx context.Context) ([]action.Action, error) {
		if err := call(ctx); err != nil {
			return nil, err
		}
		s.c.Apply(op, func(*State[T]) {})
		return nil, nil
	})
}
