package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/termstate/internal/model"
)

// Markers is the client of one taxonomy, labels or tags. Both share their
// route layout under /projects/{id}/<kind>.
type Markers[T interface{ Key() string }] struct {
	c    *Client
	kind string
}

// Labels returns the label client.
func (c *Client) Labels() *Markers[model.Label] {
	return &Markers[model.Label]{c: c, kind: "labels"}
}

// Tags returns the tag client.
func (c *Client) Tags() *Markers[model.Tag] {
	return &Markers[model.Tag]{c: c, kind: "tags"}
}

type markerBody struct {
	Value string `json:"value"`
	Color string `json:"color"`
}

func (m *Markers[T]) List(ctx context.Context, projectID string) ([]T, error) {
	return get[[]T](ctx, m.c, http.MethodGet, nil, "projects", projectID, m.kind)
}

func (m *Markers[T]) Create(ctx context.Context, projectID, value, color string) (*T, error) {
	return ptr[T](ctx, m.c, http.MethodPost, markerBody{value, color}, "projects", projectID, m.kind)
}

// Update sends the whole item; the server takes value and color from it.
func (m *Markers[T]) Update(ctx context.Context, projectID string, item T) (*T, error) {
	return ptr[T](ctx, m.c, http.MethodPatch, item, "projects", projectID, m.kind, item.Key())
}

func (m *Markers[T]) Remove(ctx context.Context, projectID, id string) error {
	return m.c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, m.kind, id)
}

func (m *Markers[T]) AttachTerm(ctx context.Context, projectID, id, termID string) error {
	return m.c.do(ctx, http.MethodPost, nil, nil, "projects", projectID, m.kind, id, "terms", termID)
}

func (m *Markers[T]) DetachTerm(ctx context.Context, projectID, id, termID string) error {
	return m.c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, m.kind, id, "terms", termID)
}

func (m *Markers[T]) AttachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error {
	return m.c.do(ctx, http.MethodPost, nil, nil, "projects", projectID, m.kind, id, "terms", termID, "translations", localeCode)
}

func (m *Markers[T]) DetachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error {
	return m.c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, m.kind, id, "terms", termID, "translations", localeCode)
}
