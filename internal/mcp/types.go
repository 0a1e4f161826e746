package mcp

import (
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/view"
)

type LoginInput struct {
	Email    string `json:"email" jsonschema:"account email"`
	Password string `json:"password" jsonschema:"account password"`
}

type NoInput struct{}

type SelectProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"project to open"`
}

type ListTermsInput struct {
	Search  string `json:"search,omitempty" jsonschema:"case-insensitive match on value or context"`
	Refresh bool   `json:"refresh,omitempty" jsonschema:"refetch terms from the server first"`
}

type CreateTermInput struct {
	Value   string `json:"value" jsonschema:"source string"`
	Context string `json:"context,omitempty" jsonschema:"hint for translators"`
}

type DeleteTermInput struct {
	TermID string `json:"term_id" jsonschema:"term to delete"`
}

type TranslationViewInput struct {
	Locale             string   `json:"locale" jsonschema:"working locale code, e.g. fr"`
	FilterUntranslated bool     `json:"filter_untranslated,omitempty" jsonschema:"only rows without a value"`
	Search             string   `json:"search,omitempty" jsonschema:"case-insensitive match on term, context or value"`
	LabelIDs           []string `json:"label_ids,omitempty" jsonschema:"only rows carrying one of these labels"`
}

type UpdateTranslationInput struct {
	Locale string `json:"locale" jsonschema:"locale code"`
	TermID string `json:"term_id" jsonschema:"term being translated"`
	Value  string `json:"value" jsonschema:"new translation, empty to clear"`
}

type LocaleInput struct {
	Locale string `json:"locale" jsonschema:"locale code, e.g. de"`
}

type ReferenceLocaleInput struct {
	Locale string `json:"locale,omitempty" jsonschema:"reference locale code; omit to clear"`
}

type SessionOutput struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type LogoutOutput struct {
	SignedOut bool `json:"signed_out"`
}

type ProjectOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Role         string `json:"role"`
	TermsCount   int    `json:"terms_count"`
	LocalesCount int    `json:"locales_count"`
	Plan         string `json:"plan,omitempty"`
}

type ListProjectsOutput struct {
	Projects         []ProjectOutput `json:"projects"`
	CurrentProjectID string          `json:"current_project_id,omitempty"`
}

type SelectProjectOutput struct {
	Project         ProjectOutput `json:"project"`
	Terms           int           `json:"terms"`
	Locales         []string      `json:"locales"`
	ReferenceLocale string        `json:"reference_locale,omitempty"`
}

type TermOutput struct {
	ID      string   `json:"id"`
	Value   string   `json:"value"`
	Context string   `json:"context,omitempty"`
	Labels  []string `json:"labels"`
}

type ListTermsOutput struct {
	Terms []TermOutput `json:"terms"`
}

type DeleteTermOutput struct {
	Deleted string `json:"deleted"`
}

type RowOutput struct {
	TermID   string   `json:"term_id"`
	Term     string   `json:"term"`
	Context  string   `json:"context,omitempty"`
	Value    string   `json:"value"`
	ValueRef string   `json:"value_ref,omitempty"`
	Labels   []string `json:"labels"`
}

type TranslationViewOutput struct {
	Locale          string      `json:"locale"`
	ReferenceLocale string      `json:"reference_locale,omitempty"`
	Rows            []RowOutput `json:"rows"`
}

type TranslationOutput struct {
	TermID string `json:"term_id"`
	Locale string `json:"locale"`
	Value  string `json:"value"`
}

type LocaleOutput struct {
	Locale  string   `json:"locale"`
	Locales []string `json:"locales"`
}

type ReferenceLocaleOutput struct {
	ReferenceLocale string `json:"reference_locale"`
}

type ProgressOutput struct {
	Progress   float64 `json:"progress"`
	Translated int     `json:"translated"`
	Total      int     `json:"total"`
}

type StatsOutput struct {
	Progress   float64                   `json:"progress"`
	Translated int                       `json:"translated"`
	Total      int                       `json:"total"`
	Terms      int                       `json:"terms"`
	Locales    map[string]ProgressOutput `json:"locales"`
}

type MemberOutput struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	IsSelf bool   `json:"is_self,omitempty"`
}

type InviteOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TeamOutput struct {
	Members []MemberOutput `json:"members"`
	Invites []InviteOutput `json:"invites"`
}

func projectOutput(p model.Project) ProjectOutput {
	out := ProjectOutput{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Role:         string(p.Role),
		TermsCount:   p.TermsCount,
		LocalesCount: p.LocalesCount,
	}
	if p.Plan != nil {
		out.Plan = p.Plan.Code
	}
	return out
}

func termOutput(t model.Term) TermOutput {
	return TermOutput{ID: t.ID, Value: t.Value, Context: t.Context, Labels: labelValues(t.Labels)}
}

func rowOutput(r view.Row) RowOutput {
	return RowOutput{
		TermID:   r.Term.ID,
		Term:     r.Term.Value,
		Context:  r.Term.Context,
		Value:    r.Value,
		ValueRef: r.ValueRef,
		Labels:   labelValues(r.Term.Labels),
	}
}

func progressOutput(p model.Progress) ProgressOutput {
	return ProgressOutput{Progress: p.Progress, Translated: p.Translated, Total: p.Total}
}

func labelValues(labels []model.Label) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.Value)
	}
	return out
}
