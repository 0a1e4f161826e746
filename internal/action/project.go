package action

type GetProjects struct{}

func (GetProjects) Type() string { return "[Projects] Get" }
func (GetProjects) isAction()    {}

type CreateProject struct {
	Name        string
	Description string
}

func (CreateProject) Type() string { return "[Projects] Create" }
func (CreateProject) isAction()    {}

type UpdateProject struct {
	ProjectID   string
	Name        string
	Description string
}

func (UpdateProject) Type() string { return "[Projects] Update" }
func (UpdateProject) isAction()    {}

type DeleteProject struct {
	ProjectID string
}

func (DeleteProject) Type() string { return "[Projects] Delete" }
func (DeleteProject) isAction()    {}

// SetCurrentProject switches the project scope. Every project-scoped store
// resets when it is submitted.
type SetCurrentProject struct {
	ProjectID string
}

func (SetCurrentProject) Type() string { return "[Projects] Set current" }
func (SetCurrentProject) isAction()    {}

// ClearCurrentProject leaves the project scope entirely.
type ClearCurrentProject struct{}

func (ClearCurrentProject) Type() string { return "[Projects] Clear current" }
func (ClearCurrentProject) isAction()    {}

// RefreshProjectStats recomputes the stats of the current project. An empty
// ProjectID means the current project.
type RefreshProjectStats struct {
	ProjectID string
}

func (RefreshProjectStats) Type() string { return "[Projects] Refresh stats" }
func (RefreshProjectStats) isAction()    {}
