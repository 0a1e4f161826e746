package action

import "github.com/rpggio/termstate/internal/model"

type GetLabels struct {
	ProjectID string
}

func (GetLabels) Type() string { return "[Labels] Get" }
func (GetLabels) isAction()    {}

type CreateLabel struct {
	ProjectID string
	Value     string
	Color     string
}

func (CreateLabel) Type() string { return "[Labels] Create" }
func (CreateLabel) isAction()    {}

type UpdateLabel struct {
	ProjectID string
	Label     model.Label
}

func (UpdateLabel) Type() string { return "[Labels] Update" }
func (UpdateLabel) isAction()    {}

type RemoveLabel struct {
	ProjectID string
	LabelID   string
}

func (RemoveLabel) Type() string { return "[Labels] Remove" }
func (RemoveLabel) isAction()    {}

type LabelTerm struct {
	ProjectID string
	Label     model.Label
	TermID    string
}

func (LabelTerm) Type() string { return "[Labels] Label term" }
func (LabelTerm) isAction()    {}

type UnlabelTerm struct {
	ProjectID string
	Label     model.Label
	TermID    string
}

func (UnlabelTerm) Type() string { return "[Labels] Unlabel term" }
func (UnlabelTerm) isAction()    {}

type LabelTranslation struct {
	ProjectID  string
	Label      model.Label
	TermID     string
	LocaleCode string
}

func (LabelTranslation) Type() string { return "[Labels] Label translation" }
func (LabelTranslation) isAction()    {}

type UnlabelTranslation struct {
	ProjectID  string
	Label      model.Label
	TermID     string
	LocaleCode string
}

func (UnlabelTranslation) Type() string { return "[Labels] Unlabel translation" }
func (UnlabelTranslation) isAction()    {}

// LabelUpdated is cascaded so that stores embedding copies of the label can
// refresh them.
type LabelUpdated struct {
	Label model.Label
}

func (LabelUpdated) Type() string { return "[Labels] Updated" }
func (LabelUpdated) isAction()    {}

// LabelRemoved is cascaded so that stores embedding the label can drop it.
type LabelRemoved struct {
	LabelID string
}

func (LabelRemoved) Type() string { return "[Labels] Removed" }
func (LabelRemoved) isAction()    {}
