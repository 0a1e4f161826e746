package apperr

import (
	"net/http"
	"strings"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/remote"
)

// reauthExempt lists endpoints whose 401 reflects user input rather than an
// invalid session.
var reauthExempt = []string{
	"/auth/change-password",
}

// RequiresReauth reports whether err means the session token is no longer
// accepted: a 401 to an authenticated request outside the exempt endpoints.
func RequiresReauth(err error) bool {
	rerr, ok := remote.AsError(err)
	if !ok || rerr.Status != http.StatusUnauthorized || !rerr.Authenticated {
		return false
	}
	for _, suffix := range reauthExempt {
		if strings.HasSuffix(rerr.Path, suffix) {
			return false
		}
	}
	return true
}

// Guard is a dispatch failure hook that tears the session down when a
// request was rejected for authentication reasons.
func Guard(a action.Action, err error) []action.Action {
	if _, ok := a.(action.Logout); ok {
		return nil
	}
	if !RequiresReauth(err) {
		return nil
	}
	return []action.Action{action.Logout{Reason: action.ReasonExpired}}
}
