package model

// User is the authenticated account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session holds authentication state. RedirectTarget is set by a prior
// must-login interception and consumed by the next successful sign in.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
	Token           string `json:"-"`
	RedirectTarget  string `json:"redirectTarget,omitempty"`
}

// AuthProvider is an external identity provider enabled on the server.
type AuthProvider struct {
	Slug        string `json:"slug"`
	ClientID    string `json:"clientId"`
	URL         string `json:"url"`
	RedirectURL string `json:"redirectUrl"`
}

// ProjectUser is a collaborator of the current project.
type ProjectUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	IsSelf bool   `json:"-"`
}

// ProjectInvite is an invitation that has not been accepted yet.
type ProjectInvite struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ProjectClient is a machine credential. Secret is only returned at creation
// and when the secret is regenerated.
type ProjectClient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Secret string `json:"secret,omitempty"`
}
