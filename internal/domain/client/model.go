package client

import "github.com/rpggio/termstate/internal/model"

// State is the client store's data. A client's Secret is only set right
// after creation or regeneration, until the next list load.
type State struct {
	Clients []model.ProjectClient `json:"clients"`
}

func defaults() State {
	return State{Clients: []model.ProjectClient{}}
}
