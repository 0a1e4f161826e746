package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/termstate/internal/apperr"
	"github.com/rpggio/termstate/internal/domain/client"
	"github.com/rpggio/termstate/internal/domain/invite"
	"github.com/rpggio/termstate/internal/domain/label"
	"github.com/rpggio/termstate/internal/domain/project"
	"github.com/rpggio/termstate/internal/domain/session"
	"github.com/rpggio/termstate/internal/domain/tag"
	"github.com/rpggio/termstate/internal/domain/team"
	"github.com/rpggio/termstate/internal/domain/term"
	"github.com/rpggio/termstate/internal/domain/translation"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/rpggio/termstate/internal/transport"
)

var (
	_ session.API     = (*transport.Client)(nil)
	_ project.API     = (*transport.Client)(nil)
	_ term.API        = (*transport.Client)(nil)
	_ translation.API = (*transport.Client)(nil)
	_ team.API        = (*transport.Client)(nil)
	_ invite.API      = (*transport.Client)(nil)
	_ client.API      = (*transport.Client)(nil)
	_ label.API       = (*transport.Markers[model.Label])(nil)
	_ tag.API         = (*transport.Markers[model.Tag])(nil)
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T, handler http.HandlerFunc, token string) *transport.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := transport.NewClient(transport.Options{BaseURL: srv.URL, Tokens: staticToken(token)}, nil)
	require.NoError(t, err)
	return c
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func TestGetProject_UnwrapsEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/projects/p1", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeData(w, model.Project{ID: "p1", Name: "Site"})
	}, "tok")

	p, err := c.GetProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "Site", p.Name)
}

func TestLogin_SendsNoTokenAndReturnsAccessToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/token", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		writeData(w, map[string]string{"accessToken": "jwt"})
	}, "")

	tok, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "jwt", tok)
}

func TestErrorEnvelopeBecomesRemoteError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"AlreadyExists","message":"term exists"}}`))
	}, "tok")

	_, err := c.CreateTerm(context.Background(), "p1", "hello", "")
	rerr, ok := remote.AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, rerr.Status)
	require.Equal(t, remote.CodeAlreadyExists, rerr.Code)
	require.Equal(t, "term exists", rerr.Message)
	require.Equal(t, http.MethodPost, rerr.Method)
	require.Equal(t, "/projects/p1/terms", rerr.Path)
	require.True(t, rerr.Authenticated)
}

func TestUnauthorized_ReauthDependsOnRoute(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "tok")
	ctx := context.Background()

	_, err := c.GetMe(ctx)
	require.True(t, apperr.RequiresReauth(err))

	err = c.ChangePassword(ctx, "old", "new")
	require.Equal(t, http.StatusUnauthorized, remote.StatusOf(err))
	require.False(t, apperr.RequiresReauth(err))
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c, err := transport.NewClient(transport.Options{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.ListProjects(context.Background())
	require.True(t, errors.Is(err, remote.ErrUnavailable))
}

func TestKnownLocalesAreCached(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/locales", r.URL.Path)
		calls.Add(1)
		writeData(w, []model.Locale{{Code: "en"}, {Code: "fr"}})
	}, "")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		locales, err := c.ListKnownLocales(ctx)
		require.NoError(t, err)
		require.Len(t, locales, 2)
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestMarkerRoutes(t *testing.T) {
	var got []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}, "tok")
	ctx := context.Background()

	require.NoError(t, c.Labels().AttachTerm(ctx, "p1", "l1", "t1"))
	require.NoError(t, c.Tags().DetachTranslation(ctx, "p1", "g1", "t1", "pt-BR"))
	require.Equal(t, []string{
		"POST /api/v1/projects/p1/labels/l1/terms/t1",
		"DELETE /api/v1/projects/p1/tags/g1/terms/t1/translations/pt-BR",
	}, got)
}

func TestMissingDataIsAnError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}, "tok")

	_, err := c.GetProjectStats(context.Background(), "p1")
	require.Error(t, err)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := transport.NewClient(transport.Options{BaseURL: "/api"}, nil)
	require.Error(t, err)
}
