package team

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the team store calls.
type API interface {
	ListProjectUsers(ctx context.Context, projectID string) ([]model.ProjectUser, error)
	UpdateProjectUser(ctx context.Context, projectID, userID string, role model.Role) (*model.ProjectUser, error)
	RemoveProjectUser(ctx context.Context, projectID, userID string) error
}

// Session resolves the signed-in user.
type Session interface {
	CurrentUserID() string
}
