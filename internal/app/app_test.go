package app_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/app"
	"github.com/rpggio/termstate/internal/domain/session"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/sqlite"
	"github.com/rpggio/termstate/internal/testserver"
	"github.com/rpggio/termstate/internal/view"
)

type fixture struct {
	ts     *testserver.TestServer
	app    *app.App
	nav    *nav.Recorder
	userID string
}

func setup(t *testing.T, p prefs.Store) *fixture {
	t.Helper()
	ts := testserver.New(t)
	userID := ts.AddUser("Ada", "ada@example.com", "secret")
	a, rec := newApp(t, ts, p)
	return &fixture{ts: ts, userID: userID, app: a, nav: rec}
}

func newApp(t *testing.T, ts *testserver.TestServer, p prefs.Store) (*app.App, *nav.Recorder) {
	t.Helper()
	rec := nav.NewRecorder()
	a, err := app.New(app.Config{BaseURL: ts.URL, Prefs: p, Navigator: rec}, nil)
	require.NoError(t, err)
	return a, rec
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	require.NoError(t, f.app.Submit(context.Background(), action.Login{Email: "ada@example.com", Password: "secret"}))
	require.True(t, f.app.Session.IsAuthenticated())
}

func TestLoginNavigatesToLanding(t *testing.T) {
	f := setup(t, nil)
	f.login(t)

	require.Equal(t, nav.Landing, f.nav.Last())
	require.Equal(t, f.userID, f.app.Session.CurrentUserID())
}

func TestWrongPasswordKeepsAnonymous(t *testing.T) {
	f := setup(t, nil)

	err := f.app.Submit(context.Background(), action.Login{Email: "ada@example.com", Password: "nope"})
	require.Error(t, err)
	snap := f.app.Session.Snapshot()
	require.False(t, snap.Data.Session.IsAuthenticated)
	require.Equal(t, "Invalid email or password.", snap.ErrorMessage)
	require.Empty(t, f.nav.History())
}

func TestSessionSurvivesRestart(t *testing.T) {
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.RunMigrations())
	p := sqlite.NewPreferenceStore(db)

	f := setup(t, p)
	f.login(t)

	restarted, _ := newApp(t, f.ts, p)
	require.NoError(t, restarted.Start(context.Background()))
	snap := restarted.Session.Snapshot()
	require.Equal(t, session.PhaseAuthenticated, snap.Data.Phase)
	require.Equal(t, "Ada", snap.Data.Session.User.Name)
}

func TestSwitchingProjectsClearsScopedStoresBeforeFetch(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	a := f.ts.AddProject(f.userID, "Alpha")
	b := f.ts.AddProject(f.userID, "Beta")
	carol := f.ts.AddUser("Carol", "carol@example.com", "pw")
	f.ts.AddMember(a, carol, model.RoleEditor)
	f.login(t)

	require.NoError(t, f.app.OpenProject(ctx, a))
	for _, act := range []action.Action{
		action.CreateTerm{ProjectID: a, Value: "hello"},
		action.AddProjectLocale{ProjectID: a, LocaleCode: "fr"},
		action.CreateLabel{ProjectID: a, Value: "ui", Color: "blue"},
		action.CreateTag{ProjectID: a, Value: "v1", Color: "gray"},
		action.CreateInvite{ProjectID: a, Email: "carol@example.com", Role: model.RoleViewer},
		action.CreateClient{ProjectID: a, Name: "ci", Role: model.RoleEditor},
		action.SelectReferenceLocale{ProjectID: a, LocaleCode: "fr"},
	} {
		require.NoError(t, f.app.Submit(ctx, act), act.Type())
	}
	require.Len(t, f.app.Team.Snapshot().Data.Users, 2)
	require.NotEmpty(t, f.app.Terms.Snapshot().Data.Terms)

	var (
		mu       sync.Mutex
		observed bool
		leaks    []string
	)
	f.ts.OnRequest(func(r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/projects/"+b {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		observed = true
		check := func(name string, empty bool) {
			if !empty {
				leaks = append(leaks, name)
			}
		}
		check("project", f.app.Projects.Snapshot().Data.Current == nil)
		check("terms", len(f.app.Terms.Snapshot().Data.Terms) == 0)
		tr := f.app.Translations.Snapshot().Data
		check("translations", len(tr.ProjectLocales) == 0 && len(tr.Translations) == 0 && tr.ReferenceLocale == "")
		check("labels", len(f.app.Labels.Snapshot().Data.Items) == 0)
		check("tags", len(f.app.Tags.Snapshot().Data.Items) == 0)
		for _, u := range f.app.Team.Snapshot().Data.Users {
			if u.UserID == carol {
				check("team", false)
			}
		}
		check("invites", len(f.app.Invites.Snapshot().Data.Invites) == 0)
		check("clients", len(f.app.Clients.Snapshot().Data.Clients) == 0)
	})

	require.NoError(t, f.app.Submit(ctx, action.SetCurrentProject{ProjectID: b}))

	mu.Lock()
	require.True(t, observed)
	require.Empty(t, leaks)
	mu.Unlock()
	require.Equal(t, b, f.app.CurrentProjectID())
	require.Len(t, f.app.Team.Snapshot().Data.Users, 1)
}

func TestUnauthorizedTearsDownExceptOnPasswordChange(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.login(t)
	p := f.ts.AddProject(f.userID, "Alpha")
	require.NoError(t, f.app.OpenProject(ctx, p))

	err := f.app.Submit(ctx, action.ChangePassword{OldPassword: "wrong", NewPassword: "new"})
	require.Error(t, err)
	require.True(t, f.app.Session.IsAuthenticated())
	require.Equal(t, p, f.app.CurrentProjectID())

	f.ts.RevokeSessions()
	err = f.app.Submit(ctx, action.UpdateMe{Name: "Ada L."})
	require.Error(t, err)

	require.False(t, f.app.Session.IsAuthenticated())
	require.NotEmpty(t, f.app.Session.Snapshot().ErrorMessage)
	require.Empty(t, f.app.CurrentProjectID())
	require.Empty(t, f.app.Terms.Snapshot().Data.Terms)
	require.Equal(t, nav.Login, f.nav.Last())
}

func TestTermLifecycleKeepsStatsCurrent(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.login(t)
	p := f.ts.AddProject(f.userID, "Alpha")
	require.NoError(t, f.app.OpenProject(ctx, p))

	require.NoError(t, f.app.Submit(ctx, action.CreateTerm{ProjectID: p, Value: "hello"}))
	require.NoError(t, f.app.Submit(ctx, action.CreateTerm{ProjectID: p, Value: "bye"}))
	require.NoError(t, f.app.Submit(ctx, action.AddProjectLocale{ProjectID: p, LocaleCode: "fr"}))

	current := f.app.Projects.Snapshot().Data.Current
	require.Equal(t, 2, current.TermsCount)
	require.Equal(t, 1, current.LocalesCount)
	require.Equal(t, "free", current.Plan.Code)

	terms := f.app.Terms.Snapshot().Data.Terms
	require.NoError(t, f.app.Submit(ctx, action.UpdateTranslation{ProjectID: p, LocaleCode: "fr", TermID: terms[0].ID, Value: "au revoir"}))
	stats := f.app.Projects.Snapshot().Data.Stats
	require.Equal(t, 1, stats.Locales["fr"].Translated)

	require.NoError(t, f.app.Submit(ctx, action.DeleteTerm{ProjectID: p, TermID: terms[0].ID}))
	require.Equal(t, 1, f.app.Projects.Snapshot().Data.Current.TermsCount)
	require.Empty(t, f.app.Translations.Snapshot().Data.Translations["fr"])
}

func TestTranslationViewFollowsEdits(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.login(t)
	p := f.ts.AddProject(f.userID, "Alpha")
	require.NoError(t, f.app.OpenProject(ctx, p))
	require.NoError(t, f.app.Submit(ctx, action.CreateTerm{ProjectID: p, Value: "hello"}))
	require.NoError(t, f.app.Submit(ctx, action.AddProjectLocale{ProjectID: p, LocaleCode: "de"}))

	live := f.app.TranslationView("de", view.Options{FilterUntranslated: true}, nil)
	defer live.Close()
	require.Len(t, live.Rows(), 1)

	termID := f.app.Terms.Snapshot().Data.Terms[0].ID
	require.NoError(t, f.app.Submit(ctx, action.UpdateTranslation{ProjectID: p, LocaleCode: "de", TermID: termID, Value: "hallo"}))
	require.Empty(t, live.Rows())
}

func TestLeavingProjectReturnsToLanding(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.login(t)
	p := f.ts.AddProject(f.userID, "Alpha")
	require.NoError(t, f.app.OpenProject(ctx, p))

	require.NoError(t, f.app.Submit(ctx, action.RemoveProjectUser{ProjectID: p, UserID: f.userID}))

	require.Empty(t, f.app.CurrentProjectID())
	require.Equal(t, nav.Landing, f.nav.Last())
	require.Empty(t, f.app.Projects.Snapshot().Data.Projects)
}

func TestExpiredPersistedTokenLogsOut(t *testing.T) {
	ts := testserver.New(t)
	userID := ts.AddUser("Ada", "ada@example.com", "secret")
	p := prefs.NewMemory()
	require.NoError(t, p.Set(context.Background(), prefs.TokenKey, ts.IssueToken(userID, -time.Minute)))

	a, rec := newApp(t, ts, p)
	require.NoError(t, a.Start(context.Background()))

	require.False(t, a.Session.IsAuthenticated())
	require.Equal(t, nav.Login, rec.Last())
	_, ok, err := p.Get(context.Background(), prefs.TokenKey)
	require.NoError(t, err)
	require.False(t, ok)
}
