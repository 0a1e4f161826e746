package term

import "github.com/rpggio/termstate/internal/model"

// State is the term store's data, in server order with new terms first.
type State struct {
	Terms []model.Term `json:"terms"`
}

func defaults() State {
	return State{Terms: []model.Term{}}
}
