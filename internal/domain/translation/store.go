package translation

import (
	"context"
	"fmt"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/domain/taxonomy"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

// Store caches locales and translations of the current project, and the
// reference locale shown next to the working one.
type Store struct {
	c      *state.Container[State]
	api    API
	prefs  prefs.Store
	logger *zap.Logger
}

// NewStore creates a translation store. Reference locale choices are kept
// in p.
func NewStore(api API, p prefs.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		c:      state.New(defaults),
		api:    api,
		prefs:  p,
		logger: logger.Named("translation"),
	}
}

func (s *Store) Snapshot() state.Snapshot[State] { return s.c.Snapshot() }

func (s *Store) Subscribe(fn func(state.Snapshot[State])) state.Token { return s.c.Subscribe(fn) }

func (s *Store) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// Handle implements dispatch.Handler.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	if scope.Teardown(a) {
		known := s.c.Snapshot().Data.KnownLocales
		s.c.ResetWith(func(st *State) { st.KnownLocales = known })
		return dispatch.Done, true
	}

	switch a := a.(type) {
	case action.GetKnownLocales:
		return s.knownLocales(), true
	case action.GetProjectLocales:
		return s.projectLocales(a.ProjectID), true
	case action.AddProjectLocale:
		return s.addLocale(a.ProjectID, a.LocaleCode), true
	case action.DeleteProjectLocale:
		return s.deleteLocale(a.ProjectID, a.LocaleCode), true
	case action.GetTranslations:
		return s.load(a.ProjectID, a.LocaleCode), true
	case action.UpdateTranslation:
		return s.update(a), true
	case action.SelectReferenceLocale:
		return s.selectReference(a.ProjectID, a.LocaleCode), true
	case action.LoadReferenceLocale:
		return s.restoreReference(a.ProjectID), true
	case action.ClearReferenceLocale:
		return s.selectReference(a.ProjectID, ""), true
	case action.TermDeleted:
		s.each(func(tr model.Translation) (model.Translation, bool) { return tr, tr.TermID != a.TermID })
		return dispatch.Done, true
	case action.ClearMessages:
		return scope.ClearMessages(s.c, action.ScopeTranslations, a)

	case action.LabelTranslation:
		return s.patchMarkers(a.LocaleCode, a.TermID, editLabels(taxonomy.Edit[model.Label]{Item: a.Label})), true
	case action.UnlabelTranslation:
		return s.patchMarkers(a.LocaleCode, a.TermID, editLabels(taxonomy.Edit[model.Label]{Item: a.Label, Detach: true})), true
	case action.TagTranslation:
		return s.patchMarkers(a.LocaleCode, a.TermID, editTags(taxonomy.Edit[model.Tag]{Item: a.Tag})), true
	case action.UntagTranslation:
		return s.patchMarkers(a.LocaleCode, a.TermID, editTags(taxonomy.Edit[model.Tag]{Item: a.Tag, Detach: true})), true

	case action.LabelUpdated:
		s.each(func(tr model.Translation) (model.Translation, bool) {
			tr.Labels = taxonomy.Refresh(tr.Labels, a.Label)
			return tr, true
		})
		return dispatch.Done, true
	case action.LabelRemoved:
		s.each(func(tr model.Translation) (model.Translation, bool) {
			tr.Labels = taxonomy.Detach(tr.Labels, a.LabelID)
			return tr, true
		})
		return dispatch.Done, true
	case action.TagUpdated:
		s.each(func(tr model.Translation) (model.Translation, bool) {
			tr.Tags = taxonomy.Refresh(tr.Tags, a.Tag)
			return tr, true
		})
		return dispatch.Done, true
	case action.TagRemoved:
		s.each(func(tr model.Translation) (model.Translation, bool) {
			tr.Tags = taxonomy.Detach(tr.Tags, a.TagID)
			return tr, true
		})
		return dispatch.Done, true
	}
	return dispatch.Done, false
}

// knownLocales loads the global catalog once per session.
func (s *Store) knownLocales() dispatch.Reaction {
	if len(s.c.Snapshot().Data.KnownLocales) > 0 {
		return dispatch.Done
	}
	op := s.c.BeginLatest("known")
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		locales, err := s.api.ListKnownLocales(ctx)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.KnownLocales = locales })
		return nil, nil
	})
}

func (s *Store) projectLocales(projectID string) dispatch.Reaction {
	op := s.c.BeginLatest("locales")
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		locales, err := s.api.ListProjectLocales(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) { st.ProjectLocales = locales })
		return nil, nil
	})
}

func (s *Store) addLocale(projectID, code string) dispatch.Reaction {
	if code == "" {
		return s.rejected()
	}
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		pl, err := s.api.AddProjectLocale(ctx, projectID, code)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			st.ProjectLocales = state.Upsert(st.ProjectLocales, *pl, byCode(pl.Locale.Code))
		})
		return []action.Action{action.RefreshProjectStats{ProjectID: projectID}}, nil
	})
}

func (s *Store) deleteLocale(projectID, code string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		if err := s.api.DeleteProjectLocale(ctx, projectID, code); err != nil {
			return nil, err
		}
		var wasReference bool
		s.c.Apply(op, func(st *State) {
			st.ProjectLocales = state.Remove(st.ProjectLocales, byCode(code))
			st.Translations = withoutLocale(st.Translations, code)
			if st.ReferenceLocale == code {
				wasReference = true
				st.ReferenceLocale = ""
			}
		})
		if wasReference {
			if err := s.prefs.Delete(ctx, prefs.ReferenceLocaleKey(projectID)); err != nil {
				s.logger.Warn("failed to forget reference locale", zap.Error(err))
			}
		}
		return []action.Action{action.RefreshProjectStats{ProjectID: projectID}}, nil
	})
}

func (s *Store) load(projectID, code string) dispatch.Reaction {
	if code == "" {
		return s.rejected()
	}
	op := s.c.BeginLatest("translations:" + code)
	return scope.Run(s.c, op, apperr.ContextTranslation, func(ctx context.Context) ([]action.Action, error) {
		return nil, s.fetch(ctx, op, projectID, code)
	})
}

func (s *Store) fetch(ctx context.Context, op state.Op, projectID, code string) error {
	list, err := s.api.ListTranslations(ctx, projectID, code)
	if err != nil {
		return err
	}
	s.c.Apply(op, func(st *State) { st.Translations = withLocale(st.Translations, code, list) })
	return nil
}

func (s *Store) update(a action.UpdateTranslation) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextTranslation, func(ctx context.Context) ([]action.Action, error) {
		tr, err := s.api.UpdateTranslation(ctx, a.ProjectID, a.LocaleCode, a.TermID, a.Value)
		if err != nil {
			return nil, err
		}
		updated := *tr
		if updated.LocaleCode == "" {
			updated.LocaleCode = a.LocaleCode
		}
		s.c.Apply(op, func(st *State) {
			list := state.Upsert(st.Translations[a.LocaleCode], updated, byTerm(updated.TermID))
			st.Translations = withLocale(st.Translations, a.LocaleCode, list)
		})
		return []action.Action{action.RefreshProjectStats{ProjectID: a.ProjectID}}, nil
	})
}

// selectReference records code as the reference locale and loads its
// translations. An empty code clears the choice.
func (s *Store) selectReference(projectID, code string) dispatch.Reaction {
	s.c.Mutate(func(st *State) { st.ReferenceLocale = code })

	op := s.c.BeginLatest("translations:" + code)
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		key := prefs.ReferenceLocaleKey(projectID)
		if code == "" {
			if err := s.prefs.Delete(ctx, key); err != nil {
				return nil, fmt.Errorf("forgetting reference locale: %w", err)
			}
			s.c.Apply(op, func(*State) {})
			return nil, nil
		}
		if err := s.prefs.Set(ctx, key, code); err != nil {
			return nil, fmt.Errorf("saving reference locale: %w", err)
		}
		return nil, s.fetch(ctx, op, projectID, code)
	})
}

// restoreReference applies the remembered reference locale of a project, if
// any.
func (s *Store) restoreReference(projectID string) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, apperr.ContextLocale, func(ctx context.Context) ([]action.Action, error) {
		code, ok, err := s.prefs.Get(ctx, prefs.ReferenceLocaleKey(projectID))
		if err != nil {
			return nil, fmt.Errorf("reading reference locale: %w", err)
		}
		if !ok || code == "" {
			return nil, nil
		}
		if !s.c.Apply(op, func(st *State) { st.ReferenceLocale = code }) {
			return nil, nil
		}
		return nil, s.fetch(ctx, op, projectID, code)
	})
}

type markerPatch func(*model.Translation) func(*model.Translation)

func editLabels(e taxonomy.Edit[model.Label]) markerPatch {
	return func(tr *model.Translation) func(*model.Translation) {
		var undo func([]model.Label) []model.Label
		tr.Labels, undo = e.Apply(tr.Labels)
		return func(tr *model.Translation) { tr.Labels = undo(tr.Labels) }
	}
}

func editTags(e taxonomy.Edit[model.Tag]) markerPatch {
	return func(tr *model.Translation) func(*model.Translation) {
		var undo func([]model.Tag) []model.Tag
		tr.Tags, undo = e.Apply(tr.Tags)
		return func(tr *model.Translation) { tr.Tags = undo(tr.Tags) }
	}
}

// patchMarkers applies patch to one cached translation and returns a
// Reaction undoing that edit alone.
func (s *Store) patchMarkers(code, termID string, patch markerPatch) dispatch.Reaction {
	var undo func(*model.Translation)
	s.c.Mutate(func(st *State) {
		cur, found := state.Find(st.Translations[code], byTerm(termID))
		if !found {
			return
		}
		undo = patch(&cur)
		st.Translations = withLocale(st.Translations, code, state.Replace(st.Translations[code], cur, byTerm(termID)))
	})
	if undo == nil {
		return dispatch.Done
	}

	return dispatch.Reaction{Revert: func() {
		s.c.Mutate(func(st *State) {
			list, ok := st.Translations[code]
			if !ok {
				return
			}
			list = state.Map(list, func(tr model.Translation) model.Translation {
				if tr.TermID == termID {
					undo(&tr)
				}
				return tr
			})
			st.Translations = withLocale(st.Translations, code, list)
		})
	}}
}

// each rewrites every cached translation; fn drops a translation by
// returning false.
func (s *Store) each(fn func(model.Translation) (model.Translation, bool)) {
	s.c.Mutate(func(st *State) {
		out := make(map[string][]model.Translation, len(st.Translations))
		for code, list := range st.Translations {
			next := make([]model.Translation, 0, len(list))
			for _, tr := range list {
				if tr, keep := fn(tr); keep {
					next = append(next, tr)
				}
			}
			out[code] = next
		}
		st.Translations = out
	})
}

func (s *Store) rejected() dispatch.Reaction {
	s.c.SetError(msgLocaleRequired)
	return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
		return nil, ErrInvalidInput
	}}
}

func byCode(code string) func(model.ProjectLocale) bool {
	return func(pl model.ProjectLocale) bool { return pl.Locale.Code == code }
}

func byTerm(termID string) func(model.Translation) bool {
	return func(tr model.Translation) bool { return tr.TermID == termID }
}
