package invite

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the invite store calls.
type API interface {
	ListInvites(ctx context.Context, projectID string) ([]model.ProjectInvite, error)
	CreateInvite(ctx context.Context, projectID, email string, role model.Role) (*model.ProjectInvite, error)
	UpdateInvite(ctx context.Context, projectID, inviteID string, role model.Role) (*model.ProjectInvite, error)
	RemoveInvite(ctx context.Context, projectID, inviteID string) error
}
