package main_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/termstate/internal/testserver"
)

// stdioSession wraps an MCP client session over the server binary's stdio.
type stdioSession struct {
	session *sdkmcp.ClientSession
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the server binary")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}
	bin := filepath.Join(t.TempDir(), "termstate")
	out, err := exec.Command(goBin, "build", "-o", bin, ".").CombinedOutput()
	require.NoError(t, err, string(out))
	return bin
}

func newStdioSession(t *testing.T, baseURL string) *stdioSession {
	t.Helper()
	binaryPath := buildBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"TERMSTATE_TRANSPORT_MODE=stdio",
		"TERMSTATE_PREFS_DRIVER=memory",
		"TERMSTATE_API_BASE_URL="+baseURL,
		"TERMSTATE_LOG_LEVEL=debug",
	)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		t.Fatalf("Failed to connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		cancel()
	})

	return &stdioSession{session: session}
}

func (s *stdioSession) callTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if args == nil {
		args = map[string]any{}
	}
	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)

	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	return data
}

func TestStdioFunctional_SignInAndTranslate(t *testing.T) {
	ts := testserver.New(t)
	userID := ts.AddUser("Ada", "ada@example.com", "secret")
	projectID := ts.AddProject(userID, "Website")

	s := newStdioSession(t, ts.URL)

	s.callTool(t, "login", map[string]any{"email": "ada@example.com", "password": "secret"})

	var projects struct {
		Projects []struct {
			ID string `json:"id"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(s.callTool(t, "list_projects", nil), &projects))
	require.Len(t, projects.Projects, 1)
	require.Equal(t, projectID, projects.Projects[0].ID)

	s.callTool(t, "select_project", map[string]any{"project_id": projectID})
	s.callTool(t, "add_locale", map[string]any{"locale": "fr"})

	var term struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(s.callTool(t, "create_term", map[string]any{"value": "hello"}), &term))
	s.callTool(t, "update_translation", map[string]any{"locale": "fr", "term_id": term.ID, "value": "bonjour"})

	var view struct {
		Rows []struct {
			TermID string `json:"term_id"`
			Value  string `json:"value"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(s.callTool(t, "translation_view", map[string]any{"locale": "fr"}), &view))
	require.Len(t, view.Rows, 1)
	require.Equal(t, "bonjour", view.Rows[0].Value)
}

func TestStdioFunctional_ToolsNeedSession(t *testing.T) {
	ts := testserver.New(t)
	s := newStdioSession(t, ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_projects", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.True(t, result.IsError)
}
