package project

import "github.com/rpggio/termstate/internal/model"

// State is the project store's data. Current and Stats are nil outside of a
// project.
type State struct {
	Projects []model.Project     `json:"projects"`
	Current  *model.Project      `json:"currentProject,omitempty"`
	Stats    *model.ProjectStats `json:"stats,omitempty"`
}

func defaults() State {
	return State{Projects: []model.Project{}}
}

// CurrentID returns the id of the current project, or "".
func (s State) CurrentID() string {
	if s.Current == nil {
		return ""
	}
	return s.Current.ID
}
