package action

import "github.com/rpggio/termstate/internal/model"

type GetTags struct {
	ProjectID string
}

func (GetTags) Type() string { return "[Tags] Get" }
func (GetTags) isAction()    {}

type CreateTag struct {
	ProjectID string
	Value     string
	Color     string
}

func (CreateTag) Type() string { return "[Tags] Create" }
func (CreateTag) isAction()    {}

type UpdateTag struct {
	ProjectID string
	Tag       model.Tag
}

func (UpdateTag) Type() string { return "[Tags] Update" }
func (UpdateTag) isAction()    {}

type RemoveTag struct {
	ProjectID string
	TagID     string
}

func (RemoveTag) Type() string { return "[Tags] Remove" }
func (RemoveTag) isAction()    {}

type TagTerm struct {
	ProjectID string
	Tag       model.Tag
	TermID    string
}

func (TagTerm) Type() string { return "[Tags] Tag term" }
func (TagTerm) isAction()    {}

type UntagTerm struct {
	ProjectID string
	Tag       model.Tag
	TermID    string
}

func (UntagTerm) Type() string { return "[Tags] Untag term" }
func (UntagTerm) isAction()    {}

type TagTranslation struct {
	ProjectID  string
	Tag        model.Tag
	TermID     string
	LocaleCode string
}

func (TagTranslation) Type() string { return "[Tags] Tag translation" }
func (TagTranslation) isAction()    {}

type UntagTranslation struct {
	ProjectID  string
	Tag        model.Tag
	TermID     string
	LocaleCode string
}

func (UntagTranslation) Type() string { return "[Tags] Untag translation" }
func (UntagTranslation) isAction()    {}

// TagUpdated is cascaded so that stores embedding copies of the tag can
// refresh them.
type TagUpdated struct {
	Tag model.Tag
}

func (TagUpdated) Type() string { return "[Tags] Updated" }
func (TagUpdated) isAction()    {}

// TagRemoved is cascaded so that stores embedding the tag can drop it.
type TagRemoved struct {
	TagID string
}

func (TagRemoved) Type() string { return "[Tags] Removed" }
func (TagRemoved) isAction()    {}
