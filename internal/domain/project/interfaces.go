package project

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the project store calls.
type API interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	GetProjectPlan(ctx context.Context, id string) (*model.Plan, error)
	CreateProject(ctx context.Context, name, description string) (*model.Project, error)
	UpdateProject(ctx context.Context, id, name, description string) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectStats(ctx context.Context, id string) (*model.ProjectStats, error)
}
