package client

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the client store calls.
type API interface {
	ListClients(ctx context.Context, projectID string) ([]model.ProjectClient, error)
	CreateClient(ctx context.Context, projectID, name string, role model.Role) (*model.ProjectClient, error)
	UpdateClient(ctx context.Context, projectID, clientID, name string, role model.Role) (*model.ProjectClient, error)
	RemoveClient(ctx context.Context, projectID, clientID string) error
	RegenerateClientSecret(ctx context.Context, projectID, clientID string) (*model.ProjectClient, error)
}
