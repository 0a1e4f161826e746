// Package tag is the tag store.
package tag

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

// API is the tag part of the Remote Access Layer.
type API = taxonomy.API[model.Tag]

// Store caches the tags of the current project.
type Store struct {
	*taxonomy.Store[model.Tag]
}

// NewStore creates a tag store.
func NewStore(api API, logger *zap.Logger) *Store {
	return &Store{taxonomy.NewStore(api, taxonomy.Config{
		Name:       "tag",
		Scope:      action.ScopeTags,
		ErrContext: apperr.ContextTag,
	}, logger)}
}

// Handle implements dispatch.Handler.
func (s *Store) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	if scope.Teardown(a) {
		return s.Reset(), true
	}
	switch a := a.(type) {
	case action.GetTags:
		return s.List(a.ProjectID), true
	case action.CreateTag:
		return s.Create(a.ProjectID, a.Value, a.Color), true
	case action.UpdateTag:
		return s.Update(a.ProjectID, a.Tag, func(t model.Tag) action.Action {
			return action.TagUpdated{Tag: t}
		}), true
	case action.RemoveTag:
		return s.Remove(a.ProjectID, a.TagID, action.TagRemoved{TagID: a.TagID}), true
	case action.TagTerm:
		return s.AttachTerm(a.ProjectID, a.Tag.ID, a.TermID), true
	case action.UntagTerm:
		return s.DetachTerm(a.ProjectID, a.Tag.ID, a.TermID), true
	case action.TagTranslation:
		return s.AttachTranslation(a.ProjectID, a.Tag.ID, a.TermID, a.LocaleCode), true
	case action.UntagTranslation:
		return s.DetachTranslation(a.ProjectID, a.Tag.ID, a.TermID, a.LocaleCode), true
	case action.ClearMessages:
		return s.ClearMessages(a)
	}
	return dispatch.Done, false
}
