package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/termstate/internal/model"
)

type roleBody struct {
	Role model.Role `json:"role"`
}

func (c *Client) ListProjectUsers(ctx context.Context, projectID string) ([]model.ProjectUser, error) {
	return get[[]model.ProjectUser](ctx, c, http.MethodGet, nil, "projects", projectID, "users")
}

func (c *Client) UpdateProjectUser(ctx context.Context, projectID, userID string, role model.Role) (*model.ProjectUser, error) {
	return ptr[model.ProjectUser](ctx, c, http.MethodPatch, roleBody{role}, "projects", projectID, "users", userID)
}

func (c *Client) RemoveProjectUser(ctx context.Context, projectID, userID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, "users", userID)
}

type inviteBody struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func (c *Client) ListInvites(ctx context.Context, projectID string) ([]model.ProjectInvite, error) {
	return get[[]model.ProjectInvite](ctx, c, http.MethodGet, nil, "projects", projectID, "invites")
}

func (c *Client) CreateInvite(ctx context.Context, projectID, email string, role model.Role) (*model.ProjectInvite, error) {
	return ptr[model.ProjectInvite](ctx, c, http.MethodPost, inviteBody{email, role}, "projects", projectID, "invites")
}

func (c *Client) UpdateInvite(ctx context.Context, projectID, inviteID string, role model.Role) (*model.ProjectInvite, error) {
	return ptr[model.ProjectInvite](ctx, c, http.MethodPatch, roleBody{role}, "projects", projectID, "invites", inviteID)
}

func (c *Client) RemoveInvite(ctx context.Context, projectID, inviteID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, "invites", inviteID)
}

type clientBody struct {
	Name string     `json:"name,omitempty"`
	Role model.Role `json:"role"`
}

func (c *Client) ListClients(ctx context.Context, projectID string) ([]model.ProjectClient, error) {
	return get[[]model.ProjectClient](ctx, c, http.MethodGet, nil, "projects", projectID, "clients")
}

func (c *Client) CreateClient(ctx context.Context, projectID, name string, role model.Role) (*model.ProjectClient, error) {
	return ptr[model.ProjectClient](ctx, c, http.MethodPost, clientBody{name, role}, "projects", projectID, "clients")
}

func (c *Client) UpdateClient(ctx context.Context, projectID, clientID, name string, role model.Role) (*model.ProjectClient, error) {
	return ptr[model.ProjectClient](ctx, c, http.MethodPatch, clientBody{name, role}, "projects", projectID, "clients", clientID)
}

func (c *Client) RemoveClient(ctx context.Context, projectID, clientID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, "clients", clientID)
}

// RegenerateClientSecret issues a new secret; the response is the only place
// it can be read.
func (c *Client) RegenerateClientSecret(ctx context.Context, projectID, clientID string) (*model.ProjectClient, error) {
	return ptr[model.ProjectClient](ctx, c, http.MethodPost, nil, "projects", projectID, "clients", clientID, "secret")
}
