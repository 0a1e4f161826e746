package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/termstate/internal/model"
)

type projectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	return get[[]model.Project](ctx, c, http.MethodGet, nil, "projects")
}

func (c *Client) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return ptr[model.Project](ctx, c, http.MethodGet, nil, "projects", id)
}

func (c *Client) GetProjectPlan(ctx context.Context, id string) (*model.Plan, error) {
	return ptr[model.Plan](ctx, c, http.MethodGet, nil, "projects", id, "plan")
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	return ptr[model.Project](ctx, c, http.MethodPost, projectBody{name, description}, "projects")
}

func (c *Client) UpdateProject(ctx context.Context, id, name, description string) (*model.Project, error) {
	return ptr[model.Project](ctx, c, http.MethodPatch, projectBody{name, description}, "projects", id)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", id)
}

func (c *Client) GetProjectStats(ctx context.Context, id string) (*model.ProjectStats, error) {
	return ptr[model.ProjectStats](ctx, c, http.MethodGet, nil, "projects", id, "stats")
}
