package translation

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the translation store calls.
type API interface {
	ListKnownLocales(ctx context.Context) ([]model.Locale, error)
	ListProjectLocales(ctx context.Context, projectID string) ([]model.ProjectLocale, error)
	AddProjectLocale(ctx context.Context, projectID, localeCode string) (*model.ProjectLocale, error)
	DeleteProjectLocale(ctx context.Context, projectID, localeCode string) error
	ListTranslations(ctx context.Context, projectID, localeCode string) ([]model.Translation, error)
	UpdateTranslation(ctx context.Context, projectID, localeCode, termID, value string) (*model.Translation, error)
}
