package team

import "github.com/rpggio/termstate/internal/model"

// State is the team store's data.
type State struct {
	Users []model.ProjectUser `json:"users"`
}

func defaults() State {
	return State{Users: []model.ProjectUser{}}
}

// Self returns the signed-in user's membership.
func (s State) Self() (model.ProjectUser, bool) {
	for _, u := range s.Users {
		if u.IsSelf {
			return u, true
		}
	}
	return model.ProjectUser{}, false
}
