package taxonomy

import "context"

// Item is a taxonomy marker identified by Key.
type Item interface {
	Key() string
}

// API is the Remote Access Layer of one taxonomy. Labels and tags share it.
type API[T Item] interface {
	List(ctx context.Context, projectID string) ([]T, error)
	Create(ctx context.Context, projectID, value, color string) (*T, error)
	Update(ctx context.Context, projectID string, item T) (*T, error)
	Remove(ctx context.Context, projectID, id string) error
	AttachTerm(ctx context.Context, projectID, id, termID string) error
	DetachTerm(ctx context.Context, projectID, id, termID string) error
	AttachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error
	DetachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error
}
