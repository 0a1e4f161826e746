package testserver

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote"
)

const tokenTTL = time.Hour

func (ts *TestServer) routes(mux chi.Router) {
	// Auth
	ts.handle(mux, "POST /auth/token", true, ts.login)
	ts.handle(mux, "POST /auth/token/{provider}", true, ts.providerToken)
	ts.handle(mux, "POST /auth/signup", true, ts.signup)
	ts.handle(mux, "GET /auth/providers", true, func(*http.Request, *account) (any, error) {
		return []model.AuthProvider{Provider}, nil
	})
	ts.handle(mux, "POST /auth/forgot-password", true, func(*http.Request, *account) (any, error) { return nil, nil })
	ts.handle(mux, "POST /auth/reset-password", true, ts.resetPassword)
	ts.handle(mux, "POST /auth/change-password", false, ts.changePassword)

	// Account
	ts.handle(mux, "GET /users/me", false, func(_ *http.Request, u *account) (any, error) { return u.user, nil })
	ts.handle(mux, "PATCH /users/me", false, ts.updateMe)
	ts.handle(mux, "DELETE /users/me", false, ts.deleteMe)

	// Projects
	ts.handle(mux, "GET /projects", false, ts.listProjects)
	ts.handle(mux, "POST /projects", false, ts.createProject)
	ts.handle(mux, "GET /projects/{pid}", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return p.project, nil
	}))
	ts.handle(mux, "PATCH /projects/{pid}", false, ts.inProject(ts.updateProject))
	ts.handle(mux, "DELETE /projects/{pid}", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		delete(ts.projects, p.project.ID)
		return nil, nil
	}))
	ts.handle(mux, "GET /projects/{pid}/plan", false, ts.inProject(func(*http.Request, *account, *projectData) (any, error) {
		return DefaultPlan, nil
	}))
	ts.handle(mux, "GET /projects/{pid}/stats", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return p.stats(), nil
	}))

	// Terms
	ts.handle(mux, "GET /projects/{pid}/terms", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return nonNil(p.terms), nil
	}))
	ts.handle(mux, "POST /projects/{pid}/terms", false, ts.inProject(ts.createTerm))
	ts.handle(mux, "PATCH /projects/{pid}/terms/{tid}", false, ts.inProject(ts.updateTerm))
	ts.handle(mux, "DELETE /projects/{pid}/terms/{tid}", false, ts.inProject(ts.deleteTerm))

	// Locales and translations
	ts.handle(mux, "GET /locales", false, func(*http.Request, *account) (any, error) { return KnownLocales, nil })
	ts.handle(mux, "GET /projects/{pid}/translations", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return nonNil(p.locales), nil
	}))
	ts.handle(mux, "POST /projects/{pid}/translations", false, ts.inProject(ts.addLocale))
	ts.handle(mux, "DELETE /projects/{pid}/translations/{code}", false, ts.inProject(ts.deleteLocale))
	ts.handle(mux, "GET /projects/{pid}/translations/{code}", false, ts.inProject(ts.listTranslations))
	ts.handle(mux, "PATCH /projects/{pid}/translations/{code}", false, ts.inProject(ts.updateTranslation))

	// Labels and tags
	markerRoutes(ts, mux, "labels", labelSet)
	markerRoutes(ts, mux, "tags", tagSet)

	// Members
	ts.handle(mux, "GET /projects/{pid}/users", false, ts.inProject(ts.listUsers))
	ts.handle(mux, "PATCH /projects/{pid}/users/{uid}", false, ts.inProject(ts.updateUser))
	ts.handle(mux, "DELETE /projects/{pid}/users/{uid}", false, ts.inProject(ts.removeUser))
	ts.handle(mux, "GET /projects/{pid}/invites", false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return nonNil(p.invites), nil
	}))
	ts.handle(mux, "POST /projects/{pid}/invites", false, ts.inProject(ts.createInvite))
	ts.handle(mux, "PATCH /projects/{pid}/invites/{iid}", false, ts.inProject(ts.updateInvite))
	ts.handle(mux, "DELETE /projects/{pid}/invites/{iid}", false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
		p.invites = slices.DeleteFunc(p.invites, func(i model.ProjectInvite) bool { return i.ID == chi.URLParam(r, "iid") })
		return nil, nil
	}))
	ts.handle(mux, "GET /projects/{pid}/clients", false, ts.inProject(ts.listClients))
	ts.handle(mux, "POST /projects/{pid}/clients", false, ts.inProject(ts.createClient))
	ts.handle(mux, "PATCH /projects/{pid}/clients/{cid}", false, ts.inProject(ts.updateClient))
	ts.handle(mux, "DELETE /projects/{pid}/clients/{cid}", false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
		p.clients = slices.DeleteFunc(p.clients, func(c model.ProjectClient) bool { return c.ID == chi.URLParam(r, "cid") })
		return nil, nil
	}))
	ts.handle(mux, "POST /projects/{pid}/clients/{cid}/secret", false, ts.inProject(ts.regenerateSecret))
}

// inProject resolves {pid} among the projects u belongs to.
func (ts *TestServer) inProject(h func(*http.Request, *account, *projectData) (any, error)) handler {
	return func(r *http.Request, u *account) (any, error) {
		p, ok := ts.projects[chi.URLParam(r, "pid")]
		if !ok {
			return nil, errNotFound
		}
		if _, member := p.members[u.user.ID]; !member {
			return nil, errNotFound
		}
		return h(r, u, p)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ts *TestServer) login(r *http.Request, _ *account) (any, error) {
	var in credentials
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	a := ts.findByEmail(in.Email)
	if a == nil || a.password != in.Password {
		return nil, fail(http.StatusUnauthorized, remote.CodeInvalidCredentials, "invalid credentials")
	}
	return map[string]string{"accessToken": ts.issue(a.user.ID, tokenTTL)}, nil
}

func (ts *TestServer) signup(r *http.Request, _ *account) (any, error) {
	var in credentials
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if in.Email == "" || in.Password == "" {
		return nil, errBadRequest
	}
	if ts.findByEmail(in.Email) != nil {
		return nil, exists("User")
	}
	a := ts.addUser(in.Name, in.Email, in.Password)
	return map[string]string{"accessToken": ts.issue(a.user.ID, tokenTTL)}, nil
}

// providerToken accepts codes of the form "code-<email>" and signs that
// account in, creating it on first use.
func (ts *TestServer) providerToken(r *http.Request, _ *account) (any, error) {
	if chi.URLParam(r, "provider") != Provider.Slug {
		return nil, errNotFound
	}
	var in struct {
		Code string `json:"code"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	email, ok := strings.CutPrefix(in.Code, "code-")
	if !ok || email == "" {
		return nil, fail(http.StatusUnauthorized, remote.CodeInvalidCredentials, "invalid code")
	}
	a := ts.findByEmail(email)
	if a == nil {
		a = ts.addUser(email, email, uuid.NewString())
	}
	return map[string]string{"accessToken": ts.issue(a.user.ID, tokenTTL)}, nil
}

func (ts *TestServer) resetPassword(r *http.Request, _ *account) (any, error) {
	var in credentials
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	a := ts.findByEmail(in.Email)
	if a == nil {
		return nil, errNotFound
	}
	a.password = in.Password
	return nil, nil
}

func (ts *TestServer) changePassword(r *http.Request, u *account) (any, error) {
	var in struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if in.OldPassword != u.password {
		return nil, fail(http.StatusUnauthorized, remote.CodeInvalidCredentials, "wrong password")
	}
	u.password = in.NewPassword
	return nil, nil
}

func (ts *TestServer) updateMe(r *http.Request, u *account) (any, error) {
	var in credentials
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.user.Name = in.Name
	}
	if in.Email != "" {
		u.user.Email = in.Email
	}
	return u.user, nil
}

func (ts *TestServer) deleteMe(_ *http.Request, u *account) (any, error) {
	delete(ts.accounts, u.user.ID)
	for _, p := range ts.projects {
		delete(p.members, u.user.ID)
	}
	return nil, nil
}

func (ts *TestServer) listProjects(_ *http.Request, u *account) (any, error) {
	out := []model.Project{}
	for _, p := range ts.projects {
		if role, ok := p.members[u.user.ID]; ok {
			out = append(out, p.view(role))
		}
	}
	slices.SortFunc(out, func(a, b model.Project) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

type projectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (ts *TestServer) createProject(r *http.Request, u *account) (any, error) {
	var in projectBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errBadRequest
	}
	for _, p := range ts.projects {
		if _, ok := p.members[u.user.ID]; ok && p.project.Name == in.Name {
			return nil, exists("Project")
		}
	}
	return ts.addProject(u.user.ID, in.Name, in.Description).view(model.RoleAdmin), nil
}

func (ts *TestServer) updateProject(r *http.Request, u *account, p *projectData) (any, error) {
	var in projectBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	p.project.Name = in.Name
	p.project.Description = in.Description
	return p.view(p.members[u.user.ID]), nil
}

func (p *projectData) view(role model.Role) model.Project {
	out := p.project
	out.Role = role
	out.TermsCount = len(p.terms)
	out.LocalesCount = len(p.locales)
	return out
}

func (p *projectData) stats() model.ProjectStats {
	stats := model.ProjectStats{Locales: make(map[string]model.Progress, len(p.locales))}
	total := len(p.terms)
	var translated int
	for _, l := range p.locales {
		var n int
		for _, tr := range p.translations[l.Locale.Code] {
			if tr.Value != "" {
				n++
			}
		}
		translated += n
		stats.Locales[l.Locale.Code] = progress(n, total)
	}
	stats.Project = model.ProjectProgress{
		Progress: progress(translated, total*len(p.locales)),
		Terms:    total,
		Locales:  len(p.locales),
	}
	return stats
}

func progress(done, total int) model.Progress {
	out := model.Progress{Translated: done, Total: total}
	if total > 0 {
		out.Progress = float64(done) / float64(total)
	}
	return out
}

type termBody struct {
	Value   string `json:"value"`
	Context string `json:"context"`
}

func (ts *TestServer) createTerm(r *http.Request, _ *account, p *projectData) (any, error) {
	var in termBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if len(p.terms) >= DefaultPlan.MaxStrings {
		return nil, fail(http.StatusPaymentRequired, remote.CodePlanLimitExceeded, "plan limit reached")
	}
	for _, t := range p.terms {
		if t.Value == in.Value && t.Context == in.Context {
			return nil, exists("Term")
		}
	}
	t := model.Term{ID: uuid.NewString(), Value: in.Value, Context: in.Context, Labels: []model.Label{}}
	p.terms = append([]model.Term{t}, p.terms...)
	return t, nil
}

func (ts *TestServer) updateTerm(r *http.Request, _ *account, p *projectData) (any, error) {
	var in termBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	i := slices.IndexFunc(p.terms, func(t model.Term) bool { return t.ID == chi.URLParam(r, "tid") })
	if i < 0 {
		return nil, errNotFound
	}
	p.terms[i].Value = in.Value
	p.terms[i].Context = in.Context
	return p.terms[i], nil
}

func (ts *TestServer) deleteTerm(r *http.Request, _ *account, p *projectData) (any, error) {
	id := chi.URLParam(r, "tid")
	before := len(p.terms)
	p.terms = slices.DeleteFunc(p.terms, func(t model.Term) bool { return t.ID == id })
	if len(p.terms) == before {
		return nil, errNotFound
	}
	for _, byTerm := range p.translations {
		delete(byTerm, id)
	}
	return nil, nil
}

func (ts *TestServer) addLocale(r *http.Request, _ *account, p *projectData) (any, error) {
	var in struct {
		Code string `json:"code"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	i := slices.IndexFunc(KnownLocales, func(l model.Locale) bool { return l.Code == in.Code })
	if i < 0 {
		return nil, errNotFound
	}
	if slices.ContainsFunc(p.locales, func(l model.ProjectLocale) bool { return l.Locale.Code == in.Code }) {
		return nil, exists("Locale")
	}
	pl := model.ProjectLocale{ID: uuid.NewString(), Locale: KnownLocales[i]}
	p.locales = append(p.locales, pl)
	p.translations[in.Code] = make(map[string]model.Translation)
	return pl, nil
}

func (ts *TestServer) deleteLocale(r *http.Request, _ *account, p *projectData) (any, error) {
	code := chi.URLParam(r, "code")
	before := len(p.locales)
	p.locales = slices.DeleteFunc(p.locales, func(l model.ProjectLocale) bool { return l.Locale.Code == code })
	if len(p.locales) == before {
		return nil, errNotFound
	}
	delete(p.translations, code)
	return nil, nil
}

func (ts *TestServer) listTranslations(r *http.Request, _ *account, p *projectData) (any, error) {
	byTerm, ok := p.translations[chi.URLParam(r, "code")]
	if !ok {
		return nil, errNotFound
	}
	out := make([]model.Translation, 0, len(byTerm))
	for _, t := range p.terms {
		if tr, ok := byTerm[t.ID]; ok {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (ts *TestServer) updateTranslation(r *http.Request, _ *account, p *projectData) (any, error) {
	code := chi.URLParam(r, "code")
	byTerm, ok := p.translations[code]
	if !ok {
		return nil, errNotFound
	}
	var in struct {
		TermID string `json:"termId"`
		Value  string `json:"value"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(p.terms, func(t model.Term) bool { return t.ID == in.TermID }) {
		return nil, errNotFound
	}
	tr, ok := byTerm[in.TermID]
	if !ok {
		tr = model.Translation{TermID: in.TermID, LocaleCode: code, Labels: []model.Label{}}
	}
	tr.Value = in.Value
	byTerm[in.TermID] = tr
	return tr, nil
}

func (ts *TestServer) listUsers(_ *http.Request, _ *account, p *projectData) (any, error) {
	out := []model.ProjectUser{}
	for id, role := range p.members {
		a, ok := ts.accounts[id]
		if !ok {
			continue
		}
		out = append(out, model.ProjectUser{UserID: id, Name: a.user.Name, Email: a.user.Email, Role: role})
	}
	slices.SortFunc(out, func(a, b model.ProjectUser) int { return strings.Compare(a.Email, b.Email) })
	return out, nil
}

type roleBody struct {
	Role model.Role `json:"role"`
}

func (ts *TestServer) updateUser(r *http.Request, _ *account, p *projectData) (any, error) {
	var in roleBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	id := chi.URLParam(r, "uid")
	a, ok := ts.accounts[id]
	if _, member := p.members[id]; !ok || !member {
		return nil, errNotFound
	}
	p.members[id] = in.Role
	return model.ProjectUser{UserID: id, Name: a.user.Name, Email: a.user.Email, Role: in.Role}, nil
}

func (ts *TestServer) removeUser(r *http.Request, _ *account, p *projectData) (any, error) {
	id := chi.URLParam(r, "uid")
	if _, ok := p.members[id]; !ok {
		return nil, errNotFound
	}
	delete(p.members, id)
	return nil, nil
}

// createInvite only invites registered accounts.
func (ts *TestServer) createInvite(r *http.Request, _ *account, p *projectData) (any, error) {
	var in struct {
		Email string     `json:"email"`
		Role  model.Role `json:"role"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	if ts.findByEmail(in.Email) == nil {
		return nil, errNotFound
	}
	if slices.ContainsFunc(p.invites, func(i model.ProjectInvite) bool { return strings.EqualFold(i.Email, in.Email) }) {
		return nil, exists("Invite")
	}
	inv := model.ProjectInvite{ID: uuid.NewString(), Email: in.Email, Role: in.Role}
	p.invites = append(p.invites, inv)
	return inv, nil
}

func (ts *TestServer) updateInvite(r *http.Request, _ *account, p *projectData) (any, error) {
	var in roleBody
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	i := slices.IndexFunc(p.invites, func(i model.ProjectInvite) bool { return i.ID == chi.URLParam(r, "iid") })
	if i < 0 {
		return nil, errNotFound
	}
	p.invites[i].Role = in.Role
	return p.invites[i], nil
}

func (ts *TestServer) listClients(_ *http.Request, _ *account, p *projectData) (any, error) {
	out := make([]model.ProjectClient, len(p.clients))
	for i, c := range p.clients {
		c.Secret = ""
		out[i] = c
	}
	return out, nil
}

func (ts *TestServer) createClient(r *http.Request, _ *account, p *projectData) (any, error) {
	var in struct {
		Name string     `json:"name"`
		Role model.Role `json:"role"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	c := model.ProjectClient{ID: uuid.NewString(), Name: in.Name, Role: in.Role, Secret: uuid.NewString()}
	p.clients = append(p.clients, c)
	return c, nil
}

func (ts *TestServer) updateClient(r *http.Request, _ *account, p *projectData) (any, error) {
	var in struct {
		Name string     `json:"name"`
		Role model.Role `json:"role"`
	}
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	i := slices.IndexFunc(p.clients, func(c model.ProjectClient) bool { return c.ID == chi.URLParam(r, "cid") })
	if i < 0 {
		return nil, errNotFound
	}
	if in.Name != "" {
		p.clients[i].Name = in.Name
	}
	p.clients[i].Role = in.Role
	out := p.clients[i]
	out.Secret = ""
	return out, nil
}

func (ts *TestServer) regenerateSecret(r *http.Request, _ *account, p *projectData) (any, error) {
	i := slices.IndexFunc(p.clients, func(c model.ProjectClient) bool { return c.ID == chi.URLParam(r, "cid") })
	if i < 0 {
		return nil, errNotFound
	}
	p.clients[i].Secret = uuid.NewString()
	return p.clients[i], nil
}
