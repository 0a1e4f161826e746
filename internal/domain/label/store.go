// Package label is the label store.
package label

import (
	"context"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/domain/taxonomy"
	"github.com/rpggio/termstate/internal/model"
	"go.uber.org/zap"
)

// API is the label part of the Remote Access Layer.
type API = taxonomy.API[model.Label]

// Store caches the labels of the current project.
type Store struct {
	*taxonomy.Store[model.Label]
}

// NewStore creates a label store.
func NewStore(api API, logger *zap.Logger) *Store {
	return &Store{taxonomy.NewStore(api, taxonomy.Config{
		Name:       "label",
		Scope:      action.ScopeLabels,
		ErrContext: apperr.ContextLabel,
	}, logger)}
}

// Handle implements dispatch.Handler.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	if scope.Teardown(a) {
		return s.Reset(), true
	}
	switch a := a.(type) {
	case action.GetLabels:
		return s.List(a.ProjectID), true
	case action.CreateLabel:
		return s.Create(a.ProjectID, a.Value, a.Color), true
	case action.UpdateLabel:
		return s.Update(a.ProjectID, a.Label, func(l model.Label) action.Action {
			return action.LabelUpdated{Label: l}
		}), true
	case action.RemoveLabel:
		return s.Remove(a.ProjectID, a.LabelID, action.LabelRemoved{LabelID: a.LabelID}), true
	case action.LabelTerm:
		return s.AttachTerm(a.ProjectID, a.Label.ID, a.TermID), true
	case action.UnlabelTerm:
		return s.DetachTerm(a.ProjectID, a.Label.ID, a.TermID), true
	case action.LabelTranslation:
		return s.AttachTranslation(a.ProjectID, a.Label.ID, a.TermID, a.LocaleCode), true
	case action.UnlabelTranslation:
		return s.DetachTranslation(a.ProjectID, a.Label.ID, a.TermID, a.LocaleCode), true
	case action.ClearMessages:
		return s.ClearMessages(a)
	}
	return dispatch.Done, false
}
