package model

// Role is a member's permission level within a project.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Project is a translation project visible to the current user.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Role         Role   `json:"role"`
	TermsCount   int    `json:"termsCount"`
	LocalesCount int    `json:"localesCount"`
	Plan         *Plan  `json:"plan,omitempty"`
}

// Plan is the usage plan attached to a project.
type Plan struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	MaxStrings int    `json:"maxStrings"`
}

// Progress summarizes translation completion.
type Progress struct {
	Progress   float64 `json:"progress"`
	Translated int     `json:"translated"`
	Total      int     `json:"total"`
}

// ProjectProgress is the project-wide aggregate.
type ProjectProgress struct {
	Progress
	Terms   int `json:"terms"`
	Locales int `json:"locales"`
}

// ProjectStats is recomputed as a whole; it is never partially patched.
type ProjectStats struct {
	Project ProjectProgress     `json:"projectStats"`
	Locales map[string]Progress `json:"localeStats"`
}
