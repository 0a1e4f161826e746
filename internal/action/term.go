package action

type GetTerms struct {
	ProjectID string
}

func (GetTerms) Type() string { return "[Terms] Get" }
func (GetTerms) isAction()    {}

type CreateTerm struct {
	ProjectID string
	Value     string
	Context   string
}

func (CreateTerm) Type() string { return "[Terms] Create" }
func (CreateTerm) isAction()    {}

type UpdateTerm struct {
	ProjectID string
	TermID    string
	Value     string
	Context   string
}

func (UpdateTerm) Type() string { return "[Terms] Update" }
func (UpdateTerm) isAction()    {}

type DeleteTerm struct {
	ProjectID string
	TermID    string
}

func (DeleteTerm) Type() string { return "[Terms] Delete" }
func (DeleteTerm) isAction()    {}

// TermDeleted is cascaded after the server confirmed a term deletion.
type TermDeleted struct {
	ProjectID string
	TermID    string
}

func (TermDeleted) Type() string { return "[Terms] Deleted" }
func (TermDeleted) isAction()    {}
