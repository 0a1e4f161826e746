package term

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the term store calls.
type API interface {
	ListTerms(ctx context.Context, projectID string) ([]model.Term, error)
	CreateTerm(ctx context.Context, projectID, value, termContext string) (*model.Term, error)
	UpdateTerm(ctx context.Context, projectID, termID, value, termContext string) (*model.Term, error)
	DeleteTerm(ctx context.Context, projectID, termID string) error
}
