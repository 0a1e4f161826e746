package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/app"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/view"
)

// tools adapts tool calls to actions. Every call submits actions and answers
// from the store snapshots the actions left behind.
type tools struct {
	app    *app.App
	logger *zap.Logger
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "login", Description: "Sign in with email and password"}, t.login)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "logout", Description: "Sign out and drop every cached project"}, t.logout)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_projects", Description: "List projects visible to the signed-in user"}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "select_project", Description: "Open a project and load its terms, locales and labels"}, t.selectProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_terms", Description: "List terms of the selected project"}, t.listTerms)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "create_term", Description: "Add a source term to the selected project"}, t.createTerm)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "delete_term", Description: "Delete a term and its translations"}, t.deleteTerm)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "add_locale", Description: "Enable a locale for the selected project"}, t.addLocale)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "translation_view", Description: "Terms with their value in a locale and in the reference locale"}, t.translationView)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "update_translation", Description: "Set the translation of a term in a locale"}, t.updateTranslation)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "select_reference_locale", Description: "Choose the locale shown next to translations; remembered per project"}, t.selectReferenceLocale)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "project_stats", Description: "Translation progress of the selected project"}, t.projectStats)
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "team", Description: "Members and pending invites of the selected project"}, t.team)
}

func (t *tools) login(ctx context.Context, _ *sdkmcp.CallToolRequest, in LoginInput) (*sdkmcp.CallToolResult, SessionOutput, error) {
	if err := t.submit(ctx, action.Login{Email: in.Email, Password: in.Password}, t.sessionMessage); err != nil {
		return nil, SessionOutput{}, err
	}
	sess := t.app.Session.Snapshot().Data.Session
	if !sess.IsAuthenticated || sess.User == nil {
		return nil, SessionOutput{}, errNotSignedIn
	}
	t.logger.Info("signed in", zap.String("user_id", sess.User.ID))
	return nil, SessionOutput{UserID: sess.User.ID, Name: sess.User.Name, Email: sess.User.Email}, nil
}

func (t *tools) logout(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoInput) (*sdkmcp.CallToolResult, LogoutOutput, error) {
	if err := t.submit(ctx, action.Logout{Reason: action.ReasonUser}, t.sessionMessage); err != nil {
		return nil, LogoutOutput{}, err
	}
	return nil, LogoutOutput{SignedOut: !t.app.Session.IsAuthenticated()}, nil
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoInput) (*sdkmcp.CallToolResult, ListProjectsOutput, error) {
	if err := t.submit(ctx, action.GetProjects{}, t.projectMessage); err != nil {
		return nil, ListProjectsOutput{}, err
	}
	snap := t.app.Projects.Snapshot()
	out := ListProjectsOutput{
		Projects:         make([]ProjectOutput, 0, len(snap.Data.Projects)),
		CurrentProjectID: t.app.CurrentProjectID(),
	}
	for _, p := range snap.Data.Projects {
		out.Projects = append(out.Projects, projectOutput(p))
	}
	return nil, out, nil
}

func (t *tools) selectProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in SelectProjectInput) (*sdkmcp.CallToolResult, SelectProjectOutput, error) {
	if err := t.app.OpenProject(ctx, in.ProjectID); err != nil {
		return nil, SelectProjectOutput{}, MapError(err, firstNonEmpty(
			t.projectMessage(),
			t.app.Terms.Snapshot().ErrorMessage,
			t.translationMessage(),
			t.app.Labels.Snapshot().ErrorMessage,
		))
	}
	current := t.app.Projects.Snapshot().Data.Current
	if current == nil {
		return nil, SelectProjectOutput{}, errNoProject
	}
	trs := t.app.Translations.Snapshot().Data
	return nil, SelectProjectOutput{
		Project:         projectOutput(*current),
		Terms:           len(t.app.Terms.Snapshot().Data.Terms),
		Locales:         localeCodes(trs.ProjectLocales),
		ReferenceLocale: trs.ReferenceLocale,
	}, nil
}

func (t *tools) listTerms(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListTermsInput) (*sdkmcp.CallToolResult, ListTermsOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, ListTermsOutput{}, err
	}
	if in.Refresh {
		if err := t.submit(ctx, action.GetTerms{ProjectID: projectID}, t.termMessage); err != nil {
			return nil, ListTermsOutput{}, err
		}
	}

	needle := strings.ToLower(in.Search)
	out := ListTermsOutput{Terms: []TermOutput{}}
	for _, term := range t.app.Terms.Snapshot().Data.Terms {
		if needle != "" &&
			!strings.Contains(strings.ToLower(term.Value), needle) &&
			!strings.Contains(strings.ToLower(term.Context), needle) {
			continue
		}
		out.Terms = append(out.Terms, termOutput(term))
	}
	return nil, out, nil
}

func (t *tools) createTerm(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateTermInput) (*sdkmcp.CallToolResult, TermOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, TermOutput{}, err
	}
	if err := t.submit(ctx, action.CreateTerm{ProjectID: projectID, Value: in.Value, Context: in.Context}, t.termMessage); err != nil {
		return nil, TermOutput{}, err
	}
	for _, term := range t.app.Terms.Snapshot().Data.Terms {
		if term.Value == in.Value && term.Context == in.Context {
			return nil, termOutput(term), nil
		}
	}
	// The project was switched while the term was being created.
	return nil, TermOutput{}, errNoProject
}

func (t *tools) deleteTerm(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteTermInput) (*sdkmcp.CallToolResult, DeleteTermOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, DeleteTermOutput{}, err
	}
	if err := t.submit(ctx, action.DeleteTerm{ProjectID: projectID, TermID: in.TermID}, t.termMessage); err != nil {
		return nil, DeleteTermOutput{}, err
	}
	return nil, DeleteTermOutput{Deleted: in.TermID}, nil
}

func (t *tools) addLocale(ctx context.Context, _ *sdkmcp.CallToolRequest, in LocaleInput) (*sdkmcp.CallToolResult, LocaleOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, LocaleOutput{}, err
	}
	if err := t.submit(ctx, action.AddProjectLocale{ProjectID: projectID, LocaleCode: in.Locale}, t.translationMessage); err != nil {
		return nil, LocaleOutput{}, err
	}
	return nil, LocaleOutput{
		Locale:  in.Locale,
		Locales: localeCodes(t.app.Translations.Snapshot().Data.ProjectLocales),
	}, nil
}

func (t *tools) translationView(ctx context.Context, _ *sdkmcp.CallToolRequest, in TranslationViewInput) (*sdkmcp.CallToolResult, TranslationViewOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, TranslationViewOutput{}, err
	}
	if _, loaded := t.app.Translations.Snapshot().Data.Translations[in.Locale]; !loaded {
		if err := t.submit(ctx, action.GetTranslations{ProjectID: projectID, LocaleCode: in.Locale}, t.translationMessage); err != nil {
			return nil, TranslationViewOutput{}, err
		}
	}

	live := t.app.TranslationView(in.Locale, view.Options{
		FilterUntranslated: in.FilterUntranslated,
		Search:             in.Search,
		LabelIDs:           in.LabelIDs,
	}, nil)
	rows := live.Rows()
	live.Close()

	out := TranslationViewOutput{
		Locale:          in.Locale,
		ReferenceLocale: t.app.Translations.Snapshot().Data.ReferenceLocale,
		Rows:            make([]RowOutput, 0, len(rows)),
	}
	if out.ReferenceLocale == in.Locale {
		out.ReferenceLocale = ""
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, rowOutput(r))
	}
	return nil, out, nil
}

func (t *tools) updateTranslation(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateTranslationInput) (*sdkmcp.CallToolResult, TranslationOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, TranslationOutput{}, err
	}
	act := action.UpdateTranslation{ProjectID: projectID, LocaleCode: in.Locale, TermID: in.TermID, Value: in.Value}
	if err := t.submit(ctx, act, t.translationMessage); err != nil {
		return nil, TranslationOutput{}, err
	}
	return nil, TranslationOutput{TermID: in.TermID, Locale: in.Locale, Value: in.Value}, nil
}

func (t *tools) selectReferenceLocale(ctx context.Context, _ *sdkmcp.CallToolRequest, in ReferenceLocaleInput) (*sdkmcp.CallToolResult, ReferenceLocaleOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, ReferenceLocaleOutput{}, err
	}
	var act action.Action = action.SelectReferenceLocale{ProjectID: projectID, LocaleCode: in.Locale}
	if in.Locale == "" {
		act = action.ClearReferenceLocale{ProjectID: projectID}
	}
	if err := t.submit(ctx, act, t.translationMessage); err != nil {
		return nil, ReferenceLocaleOutput{}, err
	}
	return nil, ReferenceLocaleOutput{ReferenceLocale: t.app.Translations.Snapshot().Data.ReferenceLocale}, nil
}

func (t *tools) projectStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoInput) (*sdkmcp.CallToolResult, StatsOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, StatsOutput{}, err
	}
	if err := t.submit(ctx, action.RefreshProjectStats{ProjectID: projectID}, t.projectMessage); err != nil {
		return nil, StatsOutput{}, err
	}

	out := StatsOutput{Locales: map[string]ProgressOutput{}}
	stats := t.app.Projects.Snapshot().Data.Stats
	if stats == nil {
		return nil, out, nil
	}
	out.Progress = stats.Project.Progress.Progress
	out.Translated = stats.Project.Translated
	out.Total = stats.Project.Total
	out.Terms = stats.Project.Terms
	for code, p := range stats.Locales {
		out.Locales[code] = progressOutput(p)
	}
	return nil, out, nil
}

func (t *tools) team(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoInput) (*sdkmcp.CallToolResult, TeamOutput, error) {
	projectID, err := t.currentProject()
	if err != nil {
		return nil, TeamOutput{}, err
	}
	if err := t.submit(ctx, action.GetProjectUsers{ProjectID: projectID}, func() string {
		return t.app.Team.Snapshot().ErrorMessage
	}); err != nil {
		return nil, TeamOutput{}, err
	}
	if err := t.submit(ctx, action.GetInvites{ProjectID: projectID}, func() string {
		return t.app.Invites.Snapshot().ErrorMessage
	}); err != nil {
		return nil, TeamOutput{}, err
	}

	users := t.app.Team.Snapshot().Data.Users
	invites := t.app.Invites.Snapshot().Data.Invites
	out := TeamOutput{
		Members: make([]MemberOutput, 0, len(users)),
		Invites: make([]InviteOutput, 0, len(invites)),
	}
	for _, u := range users {
		out.Members = append(out.Members, MemberOutput{
			UserID: u.UserID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   string(u.Role),
			IsSelf: u.IsSelf,
		})
	}
	for _, inv := range invites {
		out.Invites = append(out.Invites, InviteOutput{ID: inv.ID, Email: inv.Email, Role: string(inv.Role)})
	}
	return nil, out, nil
}

// submit runs act to completion. message reads the failing store's text.
func (t *tools) submit(ctx context.Context, act action.Action, message func() string) error {
	if err := t.app.Submit(ctx, act); err != nil {
		t.logger.Debug("tool action failed", zap.String("action", act.Type()), zap.Error(err))
		return MapError(err, message())
	}
	return nil
}

func (t *tools) currentProject() (string, error) {
	id := t.app.CurrentProjectID()
	if id == "" {
		return "", errNoProject
	}
	return id, nil
}

func (t *tools) sessionMessage() string     { return t.app.Session.Snapshot().ErrorMessage }
func (t *tools) projectMessage() string     { return t.app.Projects.Snapshot().ErrorMessage }
func (t *tools) termMessage() string        { return t.app.Terms.Snapshot().ErrorMessage }
func (t *tools) translationMessage() string { return t.app.Translations.Snapshot().ErrorMessage }

func localeCodes(locales []model.ProjectLocale) []string {
	out := make([]string, 0, len(locales))
	for _, l := range locales {
		out = append(out, l.Locale.Code)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
