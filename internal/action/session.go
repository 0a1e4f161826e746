package action

// LogoutReason explains why a session ended.
type LogoutReason string

const (
	ReasonUser           LogoutReason = "user"
	ReasonExpired        LogoutReason = "expired"
	ReasonAccountDeleted LogoutReason = "account_deleted"
)

// InitSession inspects the persisted token without calling the server.
type InitSession struct{}

func (InitSession) Type() string { return "[Auth] Init" }
func (InitSession) isAction()    {}

type Login struct {
	Email    string
	Password string
}

func (Login) Type() string { return "[Auth] Login" }
func (Login) isAction()    {}

type Signup struct {
	Name     string
	Email    string
	Password string
}

func (Signup) Type() string { return "[Auth] Signup" }
func (Signup) isAction()    {}

type GetAuthProviders struct{}

func (GetAuthProviders) Type() string { return "[Auth] Get providers" }
func (GetAuthProviders) isAction()    {}

// ProviderRedirect opens the provider's authorization page.
type ProviderRedirect struct {
	Provider string
}

func (ProviderRedirect) Type() string { return "[Auth] Provider redirect" }
func (ProviderRedirect) isAction()    {}

// ProviderCallback exchanges an authorization code for a session token.
type ProviderCallback struct {
	Provider string
	Code     string
}

func (ProviderCallback) Type() string { return "[Auth] Provider callback" }
func (ProviderCallback) isAction()    {}

// MustLogin records where to return after sign in and sends the user to the
// login page.
type MustLogin struct {
	RedirectTo string
}

func (MustLogin) Type() string { return "[Auth] Must login" }
func (MustLogin) isAction()    {}

// Logout is the session teardown action. Every store resets on it.
type Logout struct {
	Reason LogoutReason
}

func (Logout) Type() string { return "[Auth] Logout" }
func (Logout) isAction()    {}

type GetMe struct{}

func (GetMe) Type() string { return "[Auth] Get me" }
func (GetMe) isAction()    {}

type UpdateMe struct {
	Name  string
	Email string
}

func (UpdateMe) Type() string { return "[Auth] Update me" }
func (UpdateMe) isAction()    {}

type DeleteMe struct{}

func (DeleteMe) Type() string { return "[Auth] Delete me" }
func (DeleteMe) isAction()    {}

type ForgotPassword struct {
	Email string
}

func (ForgotPassword) Type() string { return "[Auth] Forgot password" }
func (ForgotPassword) isAction()    {}

type ResetPassword struct {
	Email    string
	Token    string
	Password string
}

func (ResetPassword) Type() string { return "[Auth] Reset password" }
func (ResetPassword) isAction()    {}

type ChangePassword struct {
	OldPassword string
	NewPassword string
}

func (ChangePassword) Type() string { return "[Auth] Change password" }
func (ChangePassword) isAction()    {}
