package term

import (
	"context"
	"strings"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/domain/taxonomy"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

// Store caches the terms of the current project.
type Store struct {
	c      *state.Container[State]
	api    API
	logger *zap.Logger
}

// NewStore creates a term store.
func NewStore(api API, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		c:      state.New(defaults),
		api:    api,
		logger: logger.Named("term"),
	}
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
	case action.GetTerms:
		return s.list(a.ProjectID), true
	case action.CreateTerm:
		return s.create(a), true
	case action.UpdateTerm:
		return s.update(a), true
	case action.DeleteTerm:
		return s.remove(a.ProjectID, a.TermID), true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeTerms, a)

	// Markers are patched before the remote call settles and reverted if
	// it fails.
	case action.LabelTerm:
		return s.patchMarkers(a.TermID, editLabels(taxonomy.Edit[model.Label]{Item: a.Label})), true
	case action.UnlabelTerm:
		return s.patchMarkers(a.TermID, editLabels(taxonomy.Edit[model.Label]{Item: a.Label, Detach: true})), true
	case action.TagTerm:
		return s.patchMarkers(a.TermID, editTags(taxonomy.Edit[model.Tag]{Item: a.Tag})), true
	case action.UntagTerm:
		return s.patchMarkers(a.TermID, editTags(taxonomy.Edit[model.Tag]{Item: a.Tag, Detach: true})), true

	case action.LabelUpdated:
		s.eachTerm(func(t *model.Term) { t.Labels = taxonomy.Refresh(t.Labels, a.Label) })
		return dispatch.Done, true
	case action.LabelRemoved:
		s.eachTerm(func(t *model.Term) { t.Labels = taxonomy.Detach(t.Labels, a.LabelID) })
		return dispatch.Done, true
	case action.TagUpdated:
		s.eachTerm(func(t *model.Term) { t.Tags = taxonomy.Refresh(t.Tags, a.Tag) })
		return dispatch.Done, true
	case action.TagRemoved:
		s.eachTerm(func(t *model.Term) { t.Tags = taxonomy.Detach(t.Tags, a.TagID) })
		return dispatch.Done, true
	}
	return dispatch.Done, false
}

func (s *Store) list(projectID string) dispatch.Reaction {
	op := s.c.BeginLatest("list")
	return scope.Run(s.c, op, apperr.ContextTerm, func(ctx context.Context) ([]action.Action, error) {
		terms, err := s.api.ListTerms(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Terms = terms })
		return nil, nil
	})
}

func (s *Store) create(a action.CreateTerm) dispatch.Reaction {
	if strings.TrimSpace(a.Value) == "" {
		s.c.SetError(msgValueRequired)
		return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
			return nil, ErrInvalidInput
		}}
	}

	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextTerm, func(ctx context.Context) ([]action.Action, error) {
		t, err := s.api.CreateTerm(ctx, a.ProjectID, a.Value, a.Context)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Terms = state.Prepend(st.Terms, *t) })
		return []action.Action{action.RefreshProjectStats{ProjectID: a.ProjectID}}, nil
	})
}

func (s *Store) update(a action.UpdateTerm) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextTerm, func(ctx context.Context) ([]action.Action, error) {
		t, err := s.api.UpdateTerm(ctx, a.ProjectID, a.TermID, a.Value, a.Context)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Terms = state.Replace(st.Terms, *t, byID(t.ID)) })
		return nil, nil
	})
}

func (s *Store) remove(projectID, termID string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextTerm, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.DeleteTerm(ctx, projectID, termID); err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.Terms = state.Remove(st.Terms, byID(termID)) })
		return []action.Action{
			action.TermDeleted{ProjectID: projectID, TermID: termID},
			action.RefreshProjectStats{ProjectID: projectID},
		}, nil
	})
}

// markerPatch edits the markers of a term and returns the inverse edit.
type markerPatch func(*model.Term) func(*model.Term)

func editLabels(e taxonomy.Edit[model.Label]) markerPatch {
	return func(t *model.Term) func(*model.Term) {
		var undo func([]model.Label) []model.Label
		t.Labels, undo = e.Apply(t.Labels)
		return func(t *model.Term) { t.Labels = undo(t.Labels) }
	}
}

func editTags(e taxonomy.Edit[model.Tag]) markerPatch {
	return func(t *model.Term) func(*model.Term) {
		var undo func([]model.Tag) []model.Tag
		t.Tags, undo = e.Apply(t.Tags)
		return func(t *model.Term) { t.Tags = undo(t.Tags) }
	}
}

// patchMarkers applies patch to the cached term and returns a Reaction that
// undoes that one edit if the remote call fails. Other marker edits and
// value updates made meanwhile are kept.
func (s *Store) patchMarkers(termID string, patch markerPatch) dispatch.Reaction {
	var undo func(*model.Term)
	s.c.Mutate(func(st *State) {
		cur, found := state.Find(st.Terms, byID(termID))
		if !found {
			return
		}
		undo = patch(&cur)
		st.Terms = state.Replace(st.Terms, cur, byID(termID))
	})
	if undo == nil {
		return dispatch.Done
	}

	return dispatch.Reaction{Revert: func() {
		s.logger.Debug("reverting markers", zap.String("term_id", termID))
		s.c.Mutate(func(st *State) {
			st.Terms = state.Map(st.Terms, func(t model.Term) model.Term {
				if t.ID == termID {
					undo(&t)
				}
				return t
			})
		})
	}}
}

func (s *Store) eachTerm(patch func(*model.Term)) {
	s.c.Mutate(func(st *State) {
		st.Terms = state.Map(st.Terms, func(t model.Term) model.Term {
			patch(&t)
			return t
		})
	})
}

func byID(id string) func(model.Term) bool {
	return func(t model.Term) bool { return t.ID == id }
}
