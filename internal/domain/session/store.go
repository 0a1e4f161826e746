package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/scope"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/state"
	"go.uber.org/zap"
)

// Config tunes the session store.
type Config struct {
	// ProviderRedirectURL is where identity providers send the user back.
	ProviderRedirectURL string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Store keeps authentication state and the persisted token.
type Store struct {
	c      *state.Container[State]
	api    API
	tokens prefs.Store
	cfg    Config
	logger *zap.Logger
}

// NewStore creates a session store.
func NewStore(api API, tokens prefs.Store, cfg Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		c:      state.New(defaults),
		api:    api,
		tokens: tokens,
		cfg:    cfg,
		logger: logger.Named("session"),
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() state.Snapshot[State] { return s.c.Snapshot() }

// Subscribe registers fn for state changes.
func (s *Store) Subscribe(fn func(state.Snapshot[State])) state.Token { return s.c.Subscribe(fn) }

// Unsubscribe removes a subscription.
func (s *Store) Unsubscribe(t state.Token) { s.c.Unsubscribe(t) }

// Token returns the current session token. The transport reads it on every
// request.
func (s *Store) Token() string {
	return s.c.Snapshot().Data.Session.Token
}

// CurrentUserID returns the signed-in user's id, or "".
func (s *Store) CurrentUserID() string {
	if u := s.c.Snapshot().Data.Session.User; u != nil {
		return u.ID
	}
	return ""
}

// IsAuthenticated reports whether a valid session is established.
func (s *Store) IsAuthenticated() bool {
	return s.c.Snapshot().Data.Session.IsAuthenticated
}

// Handle implements dispatch.Handler.
func (s *Store) Handle(ctx context.Context, a action.Action) (dispatch.Reaction, bool) {
	switch a := a.(type) {
	case action.InitSession:
		return s.init(ctx), true
	case action.Login:
		if strings.TrimSpace(a.Email) == "" || a.Password == "" {
			return s.rejected(msgCredentialsRequired, ErrInvalidInput), true
		}
		return s.signIn(apperr.ContextLogin, func(ctx context.Context) (string, error) {
			return s.api.Login(ctx, a.Email, a.Password)
		}), true
	case action.Signup:
		if strings.TrimSpace(a.Email) == "" || a.Password == "" {
			return s.rejected(msgCredentialsRequired, ErrInvalidInput), true
		}
		return s.signIn(apperr.ContextSignup, func(ctx context.Context) (string, error) {
			return s.api.Signup(ctx, a.Name, a.Email, a.Password)
		}), true
	case action.ProviderCallback:
		return s.signIn(apperr.ContextProvider, func(ctx context.Context) (string, error) {
			return s.api.ExchangeProviderCode(ctx, a.Provider, a.Code, s.cfg.ProviderRedirectURL)
		}), true
	case action.ProviderRedirect:
		return s.providerRedirect(a.Provider), true
	case action.GetAuthProviders:
		return s.run(apperr.ContextProvider, func(ctx context.Context, op state.Op) ([]action.Action, error) {
			providers, err := s.api.ListAuthProviders(ctx)
			if err != nil {
				return nil, err
			}
			s.c.Apply(op, func(st *State) { st.Providers = providers })
			return nil, nil
		}), true
	case action.MustLogin:
		s.c.Mutate(func(st *State) { st.Session.RedirectTarget = a.RedirectTo })
		return dispatch.Then(action.Navigate{Target: nav.Login}), true
	case action.Logout:
		return s.logout(ctx, a.Reason), true
	case action.GetMe:
		return s.run(apperr.ContextAccount, s.fetchUser), true
	case action.UpdateMe:
		return s.run(apperr.ContextAccount, func(ctx context.Context, op state.Op) ([]action.Action, error) {
			user, err := s.api.UpdateMe(ctx, a.Name, a.Email)
			if err != nil {
				return nil, err
			}
			s.c.Apply(op, func(st *State) { st.Session.User = user })
			return nil, nil
		}), true
	case action.DeleteMe:
		return s.run(apperr.ContextAccount, func(ctx context.Context, _ state.Op) ([]action.Action, error) {
			if err := s.api.DeleteMe(ctx); err != nil {
				return nil, err
			}
			return []action.Action{action.Logout{Reason: action.ReasonAccountDeleted}}, nil
		}), true
	case action.ForgotPassword:
		return s.run(apperr.ContextAccount, func(ctx context.Context, op state.Op) ([]action.Action, error) {
			if err := s.api.ForgotPassword(ctx, a.Email); err != nil {
				return nil, err
			}
			s.c.Apply(op, func(*State) {})
			return nil, nil
		}), true
	case action.ResetPassword:
		return s.run(apperr.ContextReset, func(ctx context.Context, op state.Op) ([]action.Action, error) {
			if err := s.api.ResetPassword(ctx, a.Email, a.Token, a.Password); err != nil {
				return nil, err
			}
			s.c.Apply(op, func(*State) {})
			return []action.Action{action.Navigate{Target: nav.Login}}, nil
		}), true
	case action.ChangePassword:
		return s.run(apperr.ContextPassword, func(ctx context.Context, op state.Op) ([]action.Action, error) {
			if err := s.api.ChangePassword(ctx, a.OldPassword, a.NewPassword); err != nil {
				return nil, err
			}
			s.c.Apply(op, func(*State) {})
			return nil, nil
		}), true
	case action.ClearMessages:
		if !action.ScopeSession.Matches(a.Scope) {
			return dispatch.Done, false
		}
		s.c.ClearMessages()
		return dispatch.Done, true
	}
	return dispatch.Done, false
}

func (s *Store) run(c apperr.Context, fn func(ctx context.Context, op state.Op) ([]action.Action, error)) dispatch.Reaction {
	op := s.c.Begin()
	return scope.Run(s.c, op, c, func(ctx context.Context) ([]action.Action, error) {
		return fn(ctx, op)
	})
}

// rejected records message and fails the action without a remote call.
func (s *Store) rejected(message string, err error) dispatch.Reaction {
	s.c.SetError(message)
	return dispatch.Reaction{Run: func(context.Context) ([]action.Action, error) {
		return nil, err
	}}
}

func (s *Store) init(ctx context.Context) dispatch.Reaction {
	token, ok, err := s.tokens.Get(ctx, prefs.TokenKey)
	if err != nil {
		s.logger.Warn("failed to read persisted token", zap.Error(err))
	}
	if err != nil || !ok || token == "" {
		s.c.Mutate(func(st *State) { st.Phase = PhaseAnonymous })
		return dispatch.Done
	}
	if tokenExpired(token, s.cfg.Now()) {
		s.logger.Info("persisted token expired")
		return dispatch.Then(action.Logout{Reason: action.ReasonExpired})
	}

	s.c.Mutate(func(st *State) {
		st.Phase = PhaseChecking
		st.Session.Token = token
	})
	return s.run(apperr.ContextAccount, func(ctx context.Context, op state.Op) ([]action.Action, error) {
		user, err := s.api.GetMe(ctx)
		if err != nil {
			return nil, err
		}
		s.c.Apply(op, func(st *State) {
			st.Session.User = user
			st.Session.IsAuthenticated = true
			st.Phase = PhaseAuthenticated
		})
		return nil, nil
	})
}

// signIn runs exchange, persists the returned token, loads the user and
// navigates to the pending redirect target or the landing page.
func (s *Store) signIn(c apperr.Context, exchange func(ctx context.Context) (string, error)) dispatch.Reaction {
	return s.run(c, func(ctx context.Context, op state.Op) ([]action.Action, error) {
		token, err := exchange(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.tokens.Set(ctx, prefs.TokenKey, token); err != nil {
			return nil, fmt.Errorf("persisting token: %w", err)
		}
		s.c.Apply(op, func(st *State) {
			st.Session.Token = token
			st.Session.IsAuthenticated = true
			st.Phase = PhaseAuthenticated
		})

		user, err := s.api.GetMe(ctx)
		if err != nil {
			return nil, err
		}

		target := nav.Landing
		s.c.Apply(op, func(st *State) {
			st.Session.User = user
			if st.Session.RedirectTarget != "" {
				target = st.Session.RedirectTarget
			}
			st.Session.RedirectTarget = ""
		})
		s.logger.Info("signed in", zap.String("user_id", user.ID))
		return []action.Action{action.Navigate{Target: target}}, nil
	})
}

func (s *Store) fetchUser(ctx context.Context, op state.Op) ([]action.Action, error) {
	user, err := s.api.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	s.c.Apply(op, func(st *State) { st.Session.User = user })
	return nil, nil
}

func (s *Store) providerRedirect(slug string) dispatch.Reaction {
	provider, ok := state.Find(s.c.Snapshot().Data.Providers, func(p model.AuthProvider) bool {
		return p.Slug == slug
	})
	if !ok {
		return s.rejected(msgUnknownProvider, fmt.Errorf("%w: %s", ErrUnknownProvider, slug))
	}

	redirect := provider.RedirectURL
	if redirect == "" {
		redirect = s.cfg.ProviderRedirectURL
	}
	q := url.Values{}
	q.Set("client_id", provider.ClientID)
	q.Set("redirect_uri", redirect)
	q.Set("response_type", "code")
	q.Set("scope", "openid profile email")

	sep := "?"
	if strings.Contains(provider.URL, "?") {
		sep = "&"
	}
	return dispatch.Then(action.OpenExternal{URL: provider.URL + sep + q.Encode()})
}

func (s *Store) logout(ctx context.Context, reason action.LogoutReason) dispatch.Reaction {
	if err := s.tokens.Delete(ctx, prefs.TokenKey); err != nil {
		s.logger.Warn("failed to delete persisted token", zap.Error(err))
	}
	s.c.Reset()
	switch reason {
	case action.ReasonExpired:
		s.c.SetError(apperr.MsgSessionExpired)
	case action.ReasonAccountDeleted:
		s.c.SetError(msgAccountDeleted)
	}
	s.logger.Info("session ended", zap.String("reason", string(reason)))
	return dispatch.Then(action.Navigate{Target: nav.Login})
}
