// Package mocks provides testify mocks for the Remote Access Layer
// interfaces declared by the stores.
package mocks

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
	"github.com/stretchr/testify/mock"
)

// SessionAPI is a mock for session.API.
type SessionAPI struct {
	mock.Mock
}

func (m *SessionAPI) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *SessionAPI) Signup(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *SessionAPI) ExchangeProviderCode(ctx context.Context, provider, code, redirectURL string) (string, error) {
	args := m.Called(ctx, provider, code, redirectURL)
	return args.String(0), args.Error(1)
}

func (m *SessionAPI) ListAuthProviders(ctx context.Context) ([]model.AuthProvider, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]model.AuthProvider); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionAPI) GetMe(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionAPI) UpdateMe(ctx context.Context, name, email string) (*model.User, error) {
	args := m.Called(ctx, name, email)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionAPI) DeleteMe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *SessionAPI) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *SessionAPI) ResetPassword(ctx context.Context, email, token, password string) error {
	return m.Called(ctx, email, token, password).Error(0)
}

func (m *SessionAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return m.Called(ctx, oldPassword, newPassword).Error(0)
}

// ProjectAPI is a mock for project.API.
type ProjectAPI struct {
	mock.Mock
}

func (m *ProjectAPI) ListProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]model.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) GetProject(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) GetProjectPlan(ctx context.Context, id string) (*model.Plan, error) {
	args := m.Called(ctx, id)
	if plan, ok := args.Get(0).(*model.Plan); ok {
		return plan, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	args := m.Called(ctx, name, description)
	if p, ok := args.Get(0).(*model.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) UpdateProject(ctx context.Context, id, name, description string) (*model.Project, error) {
	args := m.Called(ctx, id, name, description)
	if p, ok := args.Get(0).(*model.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectAPI) GetProjectStats(ctx context.Context, id string) (*model.ProjectStats, error) {
	args := m.Called(ctx, id)
	if stats, ok := args.Get(0).(*model.ProjectStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

// TermAPI is a mock for term.API.
type TermAPI struct {
	mock.Mock
}

func (m *TermAPI) ListTerms(ctx context.Context, projectID string) ([]model.Term, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]model.Term); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TermAPI) CreateTerm(ctx context.Context, projectID, value, termContext string) (*model.Term, error) {
	args := m.Called(ctx, projectID, value, termContext)
	if t, ok := args.Get(0).(*model.Term); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TermAPI) UpdateTerm(ctx context.Context, projectID, termID, value, termContext string) (*model.Term, error) {
	args := m.Called(ctx, projectID, termID, value, termContext)
	if t, ok := args.Get(0).(*model.Term); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TermAPI) DeleteTerm(ctx context.Context, projectID, termID string) error {
	return m.Called(ctx, projectID, termID).Error(0)
}

// TranslationAPI is a mock for translation.API.
type TranslationAPI struct {
	mock.Mock
}

func (m *TranslationAPI) ListKnownLocales(ctx context.Context) ([]model.Locale, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]model.Locale); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TranslationAPI) ListProjectLocales(ctx context.Context, projectID string) ([]model.ProjectLocale, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]model.ProjectLocale); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TranslationAPI) AddProjectLocale(ctx context.Context, projectID, localeCode string) (*model.ProjectLocale, error) {
	args := m.Called(ctx, projectID, localeCode)
	if pl, ok := args.Get(0).(*model.ProjectLocale); ok {
		return pl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TranslationAPI) DeleteProjectLocale(ctx context.Context, projectID, localeCode string) error {
	return m.Called(ctx, projectID, localeCode).Error(0)
}

func (m *TranslationAPI) ListTranslations(ctx context.Context, projectID, localeCode string) ([]model.Translation, error) {
	args := m.Called(ctx, projectID, localeCode)
	if list, ok := args.Get(0).([]model.Translation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TranslationAPI) UpdateTranslation(ctx context.Context, projectID, localeCode, termID, value string) (*model.Translation, error) {
	args := m.Called(ctx, projectID, localeCode, termID, value)
	if tr, ok := args.Get(0).(*model.Translation); ok {
		return tr, args.Error(1)
	}
	return nil, args.Error(1)
}

// TaxonomyAPI is a mock for taxonomy.API, used for both labels and tags.
type TaxonomyAPI[T any] struct {
	mock.Mock
}

func (m *TaxonomyAPI[T]) List(ctx context.Context, projectID string) ([]T, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]T); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyAPI[T]) Create(ctx context.Context, projectID, value, color string) (*T, error) {
	args := m.Called(ctx, projectID, value, color)
	if item, ok := args.Get(0).(*T); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyAPI[T]) Update(ctx context.Context, projectID string, item T) (*T, error) {
	args := m.Called(ctx, projectID, item)
	if updated, ok := args.Get(0).(*T); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyAPI[T]) Remove(ctx context.Context, projectID, id string) error {
	return m.Called(ctx, projectID, id).Error(0)
}

func (m *TaxonomyAPI[T]) AttachTerm(ctx context.Context, projectID, id, termID string) error {
	return m.Called(ctx, projectID, id, termID).Error(0)
}

func (m *TaxonomyAPI[T]) DetachTerm(ctx context.Context, projectID, id, termID string) error {
	return m.Called(ctx, projectID, id, termID).Error(0)
}

func (m *TaxonomyAPI[T]) AttachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error {
	return m.Called(ctx, projectID, id, termID, localeCode).Error(0)
}

func (m *TaxonomyAPI[T]) DetachTranslation(ctx context.Context, projectID, id, termID, localeCode string) error {
	return m.Called(ctx, projectID, id, termID, localeCode).Error(0)
}

// TeamAPI is a mock for team.API.
type TeamAPI struct {
	mock.Mock
}

func (m *TeamAPI) ListProjectUsers(ctx context.Context, projectID string) ([]model.ProjectUser, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]model.ProjectUser); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamAPI) UpdateProjectUser(ctx context.Context, projectID, userID string, role model.Role) (*model.ProjectUser, error) {
	args := m.Called(ctx, projectID, userID, role)
	if u, ok := args.Get(0).(*model.ProjectUser); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamAPI) RemoveProjectUser(ctx context.Context, projectID, userID string) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

// InviteAPI is a mock for invite.API.
type InviteAPI struct {
	mock.Mock
}

func (m *InviteAPI) ListInvites(ctx context.Context, projectID string) ([]model.ProjectInvite, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]model.ProjectInvite); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) CreateInvite(ctx context.Context, projectID, email string, role model.Role) (*model.ProjectInvite, error) {
	args := m.Called(ctx, projectID, email, role)
	if inv, ok := args.Get(0).(*model.ProjectInvite); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) UpdateInvite(ctx context.Context, projectID, inviteID string, role model.Role) (*model.ProjectInvite, error) {
	args := m.Called(ctx, projectID, inviteID, role)
	if inv, ok := args.Get(0).(*model.ProjectInvite); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InviteAPI) RemoveInvite(ctx context.Context, projectID, inviteID string) error {
	return m.Called(ctx, projectID, inviteID).Error(0)
}

// ClientAPI is a mock for client.API.
type ClientAPI struct {
	mock.Mock
}

func (m *ClientAPI) ListClients(ctx context.Context, projectID string) ([]model.ProjectClient, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]model.ProjectClient); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientAPI) CreateClient(ctx context.Context, projectID, name string, role model.Role) (*model.ProjectClient, error) {
	args := m.Called(ctx, projectID, name, role)
	if c, ok := args.Get(0).(*model.ProjectClient); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientAPI) UpdateClient(ctx context.Context, projectID, clientID, name string, role model.Role) (*model.ProjectClient, error) {
	args := m.Called(ctx, projectID, clientID, name, role)
	if c, ok := args.Get(0).(*model.ProjectClient); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientAPI) RemoveClient(ctx context.Context, projectID, clientID string) error {
	return m.Called(ctx, projectID, clientID).Error(0)
}

func (m *ClientAPI) RegenerateClientSecret(ctx context.Context, projectID, clientID string) (*model.ProjectClient, error) {
	args := m.Called(ctx, projectID, clientID)
	if c, ok := args.Get(0).(*model.ProjectClient); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
