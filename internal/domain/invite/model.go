package invite

import "github.com/rpggio/termstate/internal/model"

// State is the invite store's data.
type State struct {
	Invites []model.ProjectInvite `json:"invites"`
}

func defaults() State {
	return State{Invites: []model.ProjectInvite{}}
}
