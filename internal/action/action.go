// Package action defines every intent the stores understand. Action is a
// closed sum type: handlers select the cases they care about with a type
// switch and ignore the rest.
package action

// Action is implemented only by the types in this package.
type Action interface {
	// Type is a stable, human-readable discriminant used in logs and traces.
	Type() string
	isAction()
}

// Scope selects which store a ClearMessages action targets.
type Scope string

const (
	ScopeAll          Scope = ""
	ScopeSession      Scope = "session"
	ScopeProjects     Scope = "projects"
	ScopeTerms        Scope = "terms"
	ScopeTranslations Scope = "translations"
	ScopeLabels       Scope = "labels"
	ScopeTags         Scope = "tags"
	ScopeTeam         Scope = "team"
	ScopeInvites      Scope = "invites"
	ScopeClients      Scope = "clients"
)

// Matches reports whether a store registered under s should react to a
// ClearMessages targeting target.
func (s Scope) Matches(target Scope) bool {
	return target == ScopeAll || target == s
}

// ClearMessages clears the error message of one store, or all of them.
type ClearMessages struct {
	Scope Scope
}

func (ClearMessages) Type() string { return "[Common] Clear messages" }
func (ClearMessages) isAction()    {}

// Navigate asks the navigation adapter to move to an in-app location.
type Navigate struct {
	Target string
}

func (Navigate) Type() string { return "[Router] Navigate" }
func (Navigate) isAction()    {}

// OpenExternal asks the navigation adapter to open an external page.
type OpenExternal struct {
	URL string
}

func (OpenExternal) Type() string { return "[Router] Open external" }
func (OpenExternal) isAction()    {}
