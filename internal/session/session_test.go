package session

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	sess, err := Bind("https://tenant.example.com/am/", "alpha", "admin", "s3cret", Options{
		DeploymentType: DeploymentForgeOps,
		Insecure:       true,
		Verbose:        true,
		Curlirize:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://tenant.example.com/am", sess.Host())
	assert.Equal(t, "alpha", sess.Realm())
	assert.Equal(t, "admin", sess.Username())
	assert.Equal(t, "s3cret", sess.Password())
	assert.Equal(t, DeploymentForgeOps, sess.DeploymentType())
	assert.True(t, sess.Insecure())
	assert.True(t, sess.Verbose())
	assert.False(t, sess.Debug())
	assert.True(t, sess.Curlirize())
}

func TestBind_HostRequired(t *testing.T) {
	_, err := Bind("  ", "alpha", "admin", "pw", Options{})
	require.ErrorIs(t, err, ErrHostRequired)
}

func TestBind_RealmDefaults(t *testing.T) {
	tests := []struct {
		name         string
		realm        string
		defaultRealm string
		expected     string
	}{
		{name: "explicit realm wins", realm: "bravo", defaultRealm: "alpha", expected: "bravo"},
		{name: "configured default", realm: "", defaultRealm: "alpha", expected: "alpha"},
		{name: "root realm fallback", realm: "", defaultRealm: "", expected: RootRealm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := Bind("https://h.example.com/am", tt.realm, "", "", Options{DefaultRealm: tt.defaultRealm})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sess.Realm())
		})
	}
}

func TestBind_InvalidDeploymentType(t *testing.T) {
	_, err := Bind("https://h.example.com/am", "", "", "", Options{DeploymentType: DeploymentType("saas")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestResolvedDeploymentType(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		explicit DeploymentType
		expected DeploymentType
	}{
		{name: "explicit type", host: "https://openam.example.com/am", explicit: DeploymentClassic, expected: DeploymentClassic},
		{name: "cloud host inferred", host: "https://openam-tenant.forgeblocks.com/am", expected: DeploymentCloud},
		{name: "cloud host with port", host: "https://id.forgerock.io:443/am", expected: DeploymentCloud},
		{name: "explicit beats inference", host: "https://openam-tenant.forgeblocks.com/am", explicit: DeploymentForgeOps, expected: DeploymentForgeOps},
		{name: "unknown host", host: "https://am.internal:8443/am", expected: DeploymentUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := Bind(tt.host, "", "", "", Options{DeploymentType: tt.explicit})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sess.ResolvedDeploymentType())
		})
	}
}

func TestParseDeploymentType(t *testing.T) {
	tests := []struct {
		input    string
		expected DeploymentType
		wantErr  bool
	}{
		{"", DeploymentUnspecified, false},
		{"cloud", DeploymentCloud, false},
		{"ForgeOps", DeploymentForgeOps, false},
		{" classic ", DeploymentClassic, false},
		{"saas", DeploymentUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDeploymentType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContext_SecretsNotRendered(t *testing.T) {
	sess, err := Bind("https://h.example.com/am", "alpha", "admin", "hunter2", Options{})
	require.NoError(t, err)

	assert.NotContains(t, sess.String(), "hunter2")

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("bound", "session", sess)
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), "session.username=admin")
}
