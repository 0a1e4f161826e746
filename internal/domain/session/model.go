package session

import "github.com/rpggio/termstate/internal/model"

// Phase is the lifecycle position of the session.
type Phase string

const (
	PhaseAnonymous     Phase = "anonymous"
	PhaseChecking      Phase = "checking"
	PhaseAuthenticated Phase = "authenticated"
)

// State is the session store's data.
type State struct {
	Session   model.Session        `json:"session"`
	Phase     Phase                `json:"phase"`
	Providers []model.AuthProvider `json:"providers"`
}

func defaults() State {
	return State{Phase: PhaseAnonymous, Providers: []model.AuthProvider{}}
}
