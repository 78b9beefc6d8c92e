package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/cli/prompt"
	"github.com/marmos91/idmctl/internal/session"
	"github.com/marmos91/idmctl/pkg/config"
)

const (
	typeUUID   = "76656a38-5f8e-401b-83aa-4ccb74ce88d2"
	otherUUID  = "a1b2c3d4-0000-4000-8000-000000000001"
	alphaTypes = "/am/json/realms/root/realms/alpha/resourcetypes/"
)

// fakeTenant is an httptest server answering the endpoints the commands
// call. Unknown routes return 404.
type fakeTenant struct {
	server *httptest.Server

	mu        sync.Mutex
	requests  []string
	authCalls int
	routes    map[string]http.HandlerFunc
}

func newFakeTenant(t *testing.T) *fakeTenant {
	t.Helper()
	ft := &fakeTenant{routes: map[string]http.HandlerFunc{}}
	ft.server = httptest.NewServer(http.HandlerFunc(ft.serve))
	t.Cleanup(ft.server.Close)
	return ft
}

func (ft *fakeTenant) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	_, _ = io.Copy(io.Discard, r.Body)

	ft.mu.Lock()
	ft.requests = append(ft.requests, key)
	handler, ok := ft.routes[key]
	if strings.HasSuffix(r.URL.Path, "/authenticate") {
		ft.authCalls++
	}
	ft.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if strings.HasSuffix(r.URL.Path, "/authenticate") {
		if r.Header.Get("X-OpenAM-Username") != "admin" || r.Header.Get("X-OpenAM-Password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"reason":"Unauthorized","message":"Authentication Failed"}`))
			return
		}
		_, _ = w.Write([]byte(`{"tokenId":"session-token","successUrl":"/am/console","realm":"/"}`))
		return
	}

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"reason":"Not Found","message":"Not Found"}`))
		return
	}
	handler(w, r)
}

func (ft *fakeTenant) handle(method, path, response string) {
	ft.routes[method+" "+path] = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(response))
	}
}

func (ft *fakeTenant) host() string {
	return ft.server.URL + "/am"
}

func (ft *fakeTenant) seen(key string) bool {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	for _, r := range ft.requests {
		if r == key {
			return true
		}
	}
	return false
}

func (ft *fakeTenant) auths() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.authCalls
}

func (ft *fakeTenant) requestCount() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return len(ft.requests)
}

type result struct {
	stdout string
	stderr string
	err    error
}

func (r result) exitCode() int {
	if r.err == nil {
		return 0
	}
	if exitErr, ok := r.err.(*cmdutil.ExitError); ok {
		return exitErr.Code
	}
	return 1
}

// isolate points every per-user file at a temp dir, clears IDMCTL_*
// variables and disables prompts.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{
		cmdutil.EnvHost, cmdutil.EnvRealm, cmdutil.EnvUsername, cmdutil.EnvPassword,
		cmdutil.EnvDeploymentType, "IDMCTL_NO_CACHE",
	} {
		t.Setenv(name, "")
	}

	interactive := prompt.Interactive
	prompt.Interactive = func() bool { return false }
	t.Cleanup(func() { prompt.Interactive = interactive })
}

func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	f := cmdutil.NewFactory("test")
	f.Dir = dir

	root := NewRootCmd(f)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestAgentWebDelete(t *testing.T) {
	const agentPath = "/am/json/realms/root/realms/alpha/realm-config/agents/WebAgent/"

	t.Run("by id", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)
		ft.handle(http.MethodDelete, agentPath+"my-agent", `{"_id":"my-agent"}`)

		res := run(t, "", "agent", "web", "delete", ft.host(), "alpha", "admin", "secret", "-i", "my-agent")

		require.NoError(t, res.err)
		assert.True(t, ft.seen("DELETE "+agentPath+"my-agent"))
		assert.Contains(t, res.stdout, "Deleted web agent my-agent.")
		assert.Empty(t, res.stderr)
	})

	t.Run("not found", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)

		res := run(t, "", "agent", "web", "delete", ft.host(), "alpha", "admin", "secret", "-i", "missing")

		assert.Equal(t, 1, res.exitCode())
		assert.Equal(t, "web agent \"missing\" not found in realm \"alpha\"\n", res.stderr)
	})

	t.Run("no options prints help", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)

		res := run(t, "", "agent", "web", "delete", ft.host(), "alpha", "admin", "secret", "--verbose")

		assert.Equal(t, 1, res.exitCode())
		assert.Contains(t, res.stdout, "Usage:")
		assert.Contains(t, res.stderr, "Unrecognized combination of options or no options...")
		assert.Equal(t, 1, ft.auths())
		assert.Equal(t, 1, ft.requestCount())
	})

	t.Run("id beats all", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)
		ft.handle(http.MethodDelete, agentPath+"x", `{"_id":"x"}`)

		res := run(t, "", "agent", "web", "delete", ft.host(), "alpha", "admin", "secret", "-a", "-i", "x")

		require.NoError(t, res.err)
		assert.True(t, ft.seen("DELETE "+agentPath+"x"))
		assert.False(t, ft.seen("GET /am/json/realms/root/realms/alpha/realm-config/agents/WebAgent"))
	})

	t.Run("all stops at first failure", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)
		ft.handle(http.MethodGet, "/am/json/realms/root/realms/alpha/realm-config/agents/WebAgent",
			`{"result":[{"_id":"a"},{"_id":"b"},{"_id":"c"}],"resultCount":3}`)
		ft.handle(http.MethodDelete, agentPath+"a", `{"_id":"a"}`)
		ft.handle(http.MethodDelete, agentPath+"c", `{"_id":"c"}`)

		res := run(t, "", "agent", "web", "delete", ft.host(), "alpha", "admin", "secret", "--all")

		assert.Equal(t, 1, res.exitCode())
		assert.Contains(t, res.stderr, `deleting web agent "b"`)
		assert.False(t, ft.seen("DELETE "+agentPath+"c"))
	})
}

func TestAuthenticationFailure(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)

	res := run(t, "", "realm", "list", ft.host(), "/", "admin", "wrong", "--no-cache")

	assert.Equal(t, 1, res.exitCode())
	assert.Contains(t, res.stderr, "authentication failed")
	assert.Equal(t, 1, ft.requestCount())
}

func TestRoleList_DeploymentTypeGate(t *testing.T) {
	t.Run("classic is denied without network", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)

		res := run(t, "", "role", "list", ft.host(), "/", "admin", "secret", "--type", "classic")

		assert.Equal(t, 1, res.exitCode())
		assert.Contains(t, res.stderr, "classic")
		assert.Zero(t, ft.requestCount())
	})

	t.Run("forgeops is allowed", func(t *testing.T) {
		isolate(t)
		ft := newFakeTenant(t)
		ft.handle(http.MethodGet, "/openidm/internal/role",
			`{"result":[{"_id":"r1","name":"openidm-admin","description":"Administrative access"}],"resultCount":1}`)

		res := run(t, "", "role", "list", ft.host(), "/", "admin", "secret", "-m", "forgeops")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "openidm-admin")
	})
}

func TestRealmList_JSON(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/global-config/realms",
		`{"result":[{"_id":"Lw","name":"/","active":true},{"_id":"L2FscGhh","name":"alpha","parentPath":"/","active":true}],"resultCount":2}`)

	res := run(t, "", "realm", "list", ft.host(), "/", "admin", "secret", "-o", "json")
	require.NoError(t, res.err)

	var realms []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &realms))
	require.Len(t, realms, 2)
	assert.Equal(t, "alpha", realms[1]["name"])
}

func TestAuthzTypeImport_IDBeatsName(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodPut, alphaTypes+typeUUID, `{"uuid":"`+typeUUID+`","name":"URL"}`)
	ft.handle(http.MethodPut, alphaTypes+otherUUID, `{"uuid":"`+otherUUID+`","name":"Other"}`)

	dir := t.TempDir()
	file := filepath.Join(dir, "types.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
  "meta": {"origin": "test", "realm": "alpha", "exportDate": "2024-01-01T00:00:00Z", "exportTool": "idmctl"},
  "resourcetype": {
    "`+typeUUID+`": {"uuid": "`+typeUUID+`", "name": "URL", "patterns": ["*://*:*/*"], "actions": {"GET": true}},
    "`+otherUUID+`": {"uuid": "`+otherUUID+`", "name": "Other", "patterns": [], "actions": {}}
  }
}`), 0o600))

	res := run(t, dir, "authz", "type", "import", ft.host(), "alpha", "admin", "secret",
		"-n", "Other", "-i", typeUUID, "-f", file)

	require.NoError(t, res.err)
	assert.True(t, ft.seen("PUT "+alphaTypes+typeUUID))
	assert.False(t, ft.seen("PUT "+alphaTypes+otherUUID))
	assert.Contains(t, res.stdout, "Imported resource type URL.")
}

func TestAuthzTypeExportAllSeparate(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/realms/root/realms/alpha/resourcetypes",
		`{"result":[{"uuid":"`+typeUUID+`","name":"URL","patterns":["*://*:*/*"],"actions":{"GET":true}}],"resultCount":1}`)

	dir := t.TempDir()
	res := run(t, dir, "authz", "type", "export", ft.host(), "alpha", "admin", "secret", "-A")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "URL.resourcetype.authz.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), typeUUID)
}

func TestTokenCacheReusedAcrossInvocations(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/global-config/realms", `{"result":[],"resultCount":0}`)

	for i := 0; i < 2; i++ {
		res := run(t, "", "realm", "list", ft.host(), "/", "admin", "secret")
		require.NoError(t, res.err)
	}
	assert.Equal(t, 1, ft.auths())

	res := run(t, "", "realm", "list", ft.host(), "/", "admin", "secret", "--no-cache")
	require.NoError(t, res.err)
	assert.Equal(t, 2, ft.auths())
}

func TestSessionFromSavedConnection(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/global-config/realms", `{"result":[],"resultCount":0}`)

	res := run(t, "", "conn", "save", ft.host(), "admin", "secret", "--type", "forgeops")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Saved connection")
	assert.Equal(t, 1, ft.auths())

	// Only a fragment of the host; the rest comes from the profile.
	fragment := strings.TrimPrefix(ft.server.URL, "http://")
	res = run(t, "", "realm", "list", fragment, "--no-cache")
	require.NoError(t, res.err)
	assert.Equal(t, 2, ft.auths())

	res = run(t, "", "conn", "list", "-o", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"deploymentType": "forgeops"`)
	assert.NotContains(t, res.stdout, "secret")

	res = run(t, "", "conn", "describe", fragment)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "yes (encrypted)")

	res = run(t, "", "conn", "delete", fragment)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--force")

	res = run(t, "", "conn", "delete", fragment, "--force")
	require.NoError(t, res.err)

	res = run(t, "", "conn", "describe", fragment)
	assert.Error(t, res.err)
}

func TestConnSave_ValidationFailureSavesNothing(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)

	res := run(t, "", "conn", "save", ft.host(), "admin", "wrong")
	require.Error(t, res.err)

	res = run(t, "", "conn", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No connections saved")
}

func TestEnvironmentSession(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/global-config/realms", `{"result":[],"resultCount":0}`)
	t.Setenv(cmdutil.EnvHost, ft.host())
	t.Setenv(cmdutil.EnvUsername, "admin")
	t.Setenv(cmdutil.EnvPassword, "secret")

	res := run(t, "", "realm", "list", "--no-cache")
	require.NoError(t, res.err)
	assert.Equal(t, 1, ft.auths())
}

func TestMissingHost(t *testing.T) {
	isolate(t)

	res := run(t, "", "realm", "list")
	assert.ErrorIs(t, res.err, session.ErrHostRequired)
}

func TestInvalidDeploymentType(t *testing.T) {
	isolate(t)

	res := run(t, "", "realm", "list", "https://tenant.example.com/am", "--type", "onprem")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid deployment type")
}

func TestCurlirize(t *testing.T) {
	isolate(t)
	ft := newFakeTenant(t)
	ft.handle(http.MethodGet, "/am/json/global-config/realms", `{"result":[],"resultCount":0}`)

	res := run(t, "", "realm", "list", ft.host(), "/", "admin", "secret", "--curlirize", "--no-cache")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "curl ")
	assert.NotContains(t, res.stdout, "secret")
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "idmctl.yaml")

	res := run(t, "", "config", "init", "--config", path)
	require.NoError(t, res.err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultConfig(), cfg)

	res = run(t, "", "config", "init", "--config", path)
	assert.Error(t, res.err)

	res = run(t, "", "config", "init", "--config", path, "--force")
	assert.NoError(t, res.err)
}

func TestInvalidConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  output: xml\n"), 0o600))

	res := run(t, "", "realm", "list", "https://tenant.example.com/am", "--config", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "configuration validation failed")
}

func TestVersion(t *testing.T) {
	isolate(t)

	res := run(t, "", "version", "--short")
	require.NoError(t, res.err)
	assert.Equal(t, Version+"\n", res.stdout)
}
