package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/termstate/internal/model"
)

type termBody struct {
	Value   string `json:"value"`
	Context string `json:"context,omitempty"`
}

func (c *Client) ListTerms(ctx context.Context, projectID string) ([]model.Term, error) {
	return get[[]model.Term](ctx, c, http.MethodGet, nil, "projects", projectID, "terms")
}

func (c *Client) CreateTerm(ctx context.Context, projectID, value, termContext string) (*model.Term, error) {
	return ptr[model.Term](ctx, c, http.MethodPost, termBody{value, termContext}, "projects", projectID, "terms")
}

func (c *Client) UpdateTerm(ctx context.Context, projectID, termID, value, termContext string) (*model.Term, error) {
	return ptr[model.Term](ctx, c, http.MethodPatch, termBody{value, termContext}, "projects", projectID, "terms", termID)
}

func (c *Client) DeleteTerm(ctx context.Context, projectID, termID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, "terms", termID)
}
