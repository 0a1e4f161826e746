// Package testserver runs an in-memory translation backend over HTTP for
// tests. It speaks the same envelope and routes as the real API.
package testserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote"
)

// DefaultPlan is attached to every project.
var DefaultPlan = model.Plan{Code: "free", Name: "Free", MaxStrings: 100}

// KnownLocales is the global locale catalogue.
var KnownLocales = []model.Locale{
	{Code: "en", Language: "English"},
	{Code: "fr", Language: "French"},
	{Code: "de", Language: "German"},
	{Code: "es", Language: "Spanish"},
	{Code: "pt-BR", Language: "Portuguese", Region: "Brazil"},
}

// Provider is the single identity provider the server advertises.
var Provider = model.AuthProvider{
	Slug:     "github",
	ClientID: "gh-client",
	URL:      "https://github.com/login/oauth/authorize",
}

type TestServer struct {
	Server *httptest.Server
	URL    string

	mu       sync.Mutex
	secret   []byte
	accounts map[string]*account
	projects map[string]*projectData
	hook     func(*http.Request)
}

type account struct {
	user     model.User
	password string
}

type projectData struct {
	project      model.Project
	members      map[string]model.Role
	terms        []model.Term
	locales      []model.ProjectLocale
	translations map[string]map[string]model.Translation
	labels       []model.Label
	tags         []model.Tag
	invites      []model.ProjectInvite
	clients      []model.ProjectClient
}

// New starts a server that is closed when t ends.
func New(t *testing.T) *TestServer {
	t.Helper()

	ts := &TestServer{
		secret:   []byte(uuid.NewString()),
		accounts: make(map[string]*account),
		projects: make(map[string]*projectData),
	}
	mux := chi.NewRouter()
	ts.routes(mux)
	ts.Server = httptest.NewServer(ts.observe(mux))
	ts.URL = ts.Server.URL

	t.Cleanup(ts.Server.Close)
	return ts
}

// AddUser registers an account and returns its id.
func (ts *TestServer) AddUser(name, email, password string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.addUser(name, email, password).user.ID
}

// AddProject creates a project owned by userID and returns its id.
func (ts *TestServer) AddProject(userID, name string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.addProject(userID, name, "").project.ID
}

// AddMember grants userID role on projectID.
func (ts *TestServer) AddMember(projectID, userID string, role model.Role) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if p, ok := ts.projects[projectID]; ok {
		p.members[userID] = role
	}
}

// IssueToken returns a session token for userID valid for ttl. A negative
// ttl yields an expired token.
func (ts *TestServer) IssueToken(userID string, ttl time.Duration) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.issue(userID, ttl)
}

// RevokeSessions invalidates every token issued so far.
func (ts *TestServer) RevokeSessions() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.secret = []byte(uuid.NewString())
}

// OnRequest installs fn to run before each request is served. fn runs
// outside the server lock.
func (ts *TestServer) OnRequest(fn func(*http.Request)) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.hook = fn
}

func (ts *TestServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		hook := ts.hook
		ts.mu.Unlock()
		if hook != nil {
			hook(r)
		}
		next.ServeHTTP(w, r)
	})
}

func (ts *TestServer) addUser(name, email, password string) *account {
	a := &account{
		user:     model.User{ID: uuid.NewString(), Name: name, Email: email},
		password: password,
	}
	ts.accounts[a.user.ID] = a
	return a
}

func (ts *TestServer) addProject(userID, name, description string) *projectData {
	p := &projectData{
		project: model.Project{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			Role:        model.RoleAdmin,
		},
		members:      map[string]model.Role{userID: model.RoleAdmin},
		translations: make(map[string]map[string]model.Translation),
	}
	ts.projects[p.project.ID] = p
	return p
}

func (ts *TestServer) issue(userID string, ttl time.Duration) string {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		panic(err)
	}
	return signed
}

func (ts *TestServer) findByEmail(email string) *account {
	for _, a := range ts.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return a
		}
	}
	return nil
}

// apiError is rendered as the error envelope.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func fail(status int, code, message string) error {
	return &apiError{status: status, code: code, message: message}
}

var (
	errUnauthorized = fail(http.StatusUnauthorized, remote.CodeUnauthorized, "unauthorized")
	errNotFound     = fail(http.StatusNotFound, remote.CodeNotFound, "not found")
	errBadRequest   = fail(http.StatusBadRequest, remote.CodeBadRequest, "bad request")
)

func exists(entity string) error {
	return fail(http.StatusConflict, remote.CodeAlreadyExists, entity+" already exists")
}

// handler serves one route. u is nil on public routes.
type handler func(r *http.Request, u *account) (any, error)

// handle registers h under /api/v1. Authenticated routes reject requests
// without a valid token before h runs. h runs under the server lock.
func (ts *TestServer) handle(mux chi.Router, pattern string, public bool, h handler) {
	method, route, _ := strings.Cut(pattern, " ")
	mux.MethodFunc(method, "/api/v1"+route, func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		defer ts.mu.Unlock()

		var u *account
		if !public {
			var err error
			if u, err = ts.authenticate(r); err != nil {
				writeError(w, err)
				return
			}
		}
		out, err := h(r, u)
		if err != nil {
			writeError(w, err)
			return
		}
		if out == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": out})
	})
}

func (ts *TestServer) authenticate(r *http.Request) (*account, error) {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" {
		return nil, errUnauthorized
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return ts.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errUnauthorized
	}
	a, ok := ts.accounts[claims.Subject]
	if !ok {
		return nil, errUnauthorized
	}
	return a, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		apiErr = &apiError{status: http.StatusInternalServerError, message: err.Error()}
	}
	body := map[string]any{"error": map[string]string{"code": apiErr.code, "message": apiErr.message}}
	writeJSON(w, apiErr.status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
