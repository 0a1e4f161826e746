package action

import "github.com/rpggio/termstate/internal/model"

type GetProjectUsers struct {
	ProjectID string
}

func (GetProjectUsers) Type() string { return "[Team] Get users" }
func (GetProjectUsers) isAction()    {}

type UpdateProjectUser struct {
	ProjectID string
	UserID    string
	Role      model.Role
}

func (UpdateProjectUser) Type() string { return "[Team] Update user" }
func (UpdateProjectUser) isAction()    {}

type RemoveProjectUser struct {
	ProjectID string
	UserID    string
}

func (RemoveProjectUser) Type() string { return "[Team] Remove user" }
func (RemoveProjectUser) isAction()    {}

type GetInvites struct {
	ProjectID string
}

func (GetInvites) Type() string { return "[Invites] Get" }
func (GetInvites) isAction()    {}

type CreateInvite struct {
	ProjectID string
	Email     string
	Role      model.Role
}

func (CreateInvite) Type() string { return "[Invites] Create" }
func (CreateInvite) isAction()    {}

type UpdateInvite struct {
	ProjectID string
	InviteID  string
	Role      model.Role
}

func (UpdateInvite) Type() string { return "[Invites] Update" }
func (UpdateInvite) isAction()    {}

type RemoveInvite struct {
	ProjectID string
	InviteID  string
}

func (RemoveInvite) Type() string { return "[Invites] Remove" }
func (RemoveInvite) isAction()    {}
