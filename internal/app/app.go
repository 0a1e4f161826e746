// Package app assembles the stores, the dispatcher and the HTTP client into
// one client-side cache.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/client"
	"github.com/rpggio/termstate/internal/domain/invite"
	"github.com/rpggio/termstate/internal/domain/label"
	"github.com/rpggio/termstate/internal/domain/project"
	"github.com/rpggio/termstate/internal/domain/session"
	"github.com/rpggio/termstate/internal/domain/tag"
	"github.com/rpggio/termstate/internal/domain/team"
	"github.com/rpggio/termstate/internal/domain/term"
	"github.com/rpggio/termstate/internal/domain/translation"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/transport"
	"github.com/rpggio/termstate/internal/view"
)

// Config wires an App.
type Config struct {
	BaseURL             string
	Timeout             time.Duration
	LocalesTTL          time.Duration
	ProviderRedirectURL string
	// Prefs persists the token and per-project choices. Defaults to memory.
	Prefs prefs.Store
	// Navigator receives navigation actions. Nil only logs them.
	Navigator nav.Navigator
}

// App owns every store. Stores are read through their fields; all changes go
// through Submit or Dispatch.
type App struct {
	Dispatcher *dispatch.Dispatcher
	API        *transport.Client

	Session      *session.Store
	Projects     *project.Store
	Terms        *term.Store
	Translations *translation.Store
	Labels       *label.Store
	Tags         *tag.Store
	Team         *team.Store
	Invites      *invite.Store
	Clients      *client.Store

	logger *zap.Logger
}

// New builds an App. Nothing is fetched until Start.
func New(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := cfg.Prefs
	if p == nil {
		p = prefs.NewMemory()
	}

	a := &App{logger: logger}
	api, err := transport.NewClient(transport.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		LocalesTTL: cfg.LocalesTTL,
		Tokens:     transport.TokenFunc(func() string { return a.Session.Token() }),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	a.API = api

	a.Session = session.NewStore(api, p, session.Config{ProviderRedirectURL: cfg.ProviderRedirectURL}, logger)
	a.Projects = project.NewStore(api, logger)
	a.Terms = term.NewStore(api, logger)
	a.Translations = translation.NewStore(api, p, logger)
	a.Labels = label.NewStore(api.Labels(), logger)
	a.Tags = tag.NewStore(api.Tags(), logger)
	a.Team = team.NewStore(api, a.Session, logger)
	a.Invites = invite.NewStore(api, logger)
	a.Clients = client.NewStore(api, logger)

	a.Dispatcher = dispatch.New(logger)
	a.Dispatcher.Register(
		a.Session,
		a.Projects,
		a.Terms,
		a.Translations,
		a.Labels,
		a.Tags,
		a.Team,
		a.Invites,
		a.Clients,
		nav.NewHandler(cfg.Navigator, logger),
	)
	a.Dispatcher.OnFailure(apperr.Guard)
	return a, nil
}

// Start restores the persisted session.
func (a *App) Start(ctx context.Context) error {
	return a.Submit(ctx, action.InitSession{})
}

// Submit dispatches act and waits for it and its cascades.
func (a *App) Submit(ctx context.Context, act action.Action) error {
	return a.Dispatcher.Submit(ctx, act)
}

// Dispatch starts act without waiting.
func (a *App) Dispatch(ctx context.Context, act action.Action) *dispatch.Pending {
	return a.Dispatcher.Dispatch(ctx, act)
}

// CurrentProjectID returns the selected project, or "".
func (a *App) CurrentProjectID() string {
	return a.Projects.CurrentID()
}

// OpenProject selects projectID and loads what the editor needs: terms,
// locales, labels and the remembered reference locale.
func (a *App) OpenProject(ctx context.Context, projectID string) error {
	if err := a.Submit(ctx, action.SetCurrentProject{ProjectID: projectID}); err != nil {
		return err
	}
	for _, act := range []action.Action{
		action.GetTerms{ProjectID: projectID},
		action.GetProjectLocales{ProjectID: projectID},
		action.GetLabels{ProjectID: projectID},
		action.LoadReferenceLocale{ProjectID: projectID},
	} {
		if err := a.Submit(ctx, act); err != nil {
			return err
		}
	}
	return nil
}

// TranslationView follows the terms and translations of locale. Close the
// result when done.
func (a *App) TranslationView(locale string, opts view.Options, onChange func([]view.Row)) *view.Live {
	return view.NewLive(a.Terms, a.Translations, locale, opts, onChange)
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}
