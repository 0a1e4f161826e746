package action

import "github.com/rpggio/termstate/internal/model"

type GetClients struct {
	ProjectID string
}

func (GetClients) Type() string { return "[Clients] Get" }
func (GetClients) isAction()    {}

type CreateClient struct {
	ProjectID string
	Name      string
	Role      model.Role
}

func (CreateClient) Type() string { return "[Clients] Create" }
func (CreateClient) isAction()    {}

type UpdateClient struct {
	ProjectID string
	ClientID  string
	Name      string
	Role      model.Role
}

func (UpdateClient) Type() string { return "[Clients] Update" }
func (UpdateClient) isAction()    {}

type RemoveClient struct {
	ProjectID string
	ClientID  string
}

func (RemoveClient) Type() string { return "[Clients] Remove" }
func (RemoveClient) isAction()    {}

// RegenerateClientSecret replaces a client's secret. The new secret is only
// visible in the response.
type RegenerateClientSecret struct {
	ProjectID string
	ClientID  string
}

func (RegenerateClientSecret) Type() string { return "[Clients] Regenerate secret" }
func (RegenerateClientSecret) isAction()    {}
