package taxonomy

import (
	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
)

// State is the data of a taxonomy store.
type State[T Item] struct {
	Items []T `json:"items"`
}

// Config names a taxonomy.
type Config struct {
	// Name is used for the logger.
	Name string
	// Scope selects ClearMessages actions.
	Scope action.Scope
	// ErrContext classifies remote failures.
	ErrContext apperr.Context
}
