package testserver_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/testserver"
)

func get(t *testing.T, ts *testserver.TestServer, token, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1"+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRoutesResolvePathParams(t *testing.T) {
	ts := testserver.New(t)
	uid := ts.AddUser("Ada", "ada@example.com", "secret")
	pid := ts.AddProject(uid, "Website")
	token := ts.IssueToken(uid, time.Hour)

	resp := get(t, ts, token, "/projects/"+pid)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data model.Project `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, pid, body.Data.ID)

	require.Equal(t, http.StatusNotFound, get(t, ts, token, "/projects/missing").StatusCode)
}

func TestRoutesRequireToken(t *testing.T) {
	ts := testserver.New(t)
	uid := ts.AddUser("Ada", "ada@example.com", "secret")
	pid := ts.AddProject(uid, "Website")

	require.Equal(t, http.StatusUnauthorized, get(t, ts, "", "/projects/"+pid).StatusCode)
	require.Equal(t, http.StatusMethodNotAllowed, get(t, ts, "", "/auth/token").StatusCode)
}
