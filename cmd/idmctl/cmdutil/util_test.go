package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/idmctl/internal/cli/credentials"
	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/session"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvHost, EnvRealm, EnvUsername, EnvPassword, EnvDeploymentType} {
		t.Setenv(name, "")
	}
}

func newStore(t *testing.T) *credentials.Store {
	t.Helper()
	store, err := credentials.NewStoreAt(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestBindSession_Positionals(t *testing.T) {
	clearEnv(t)
	f := NewFactory("test")
	f.Flags.DeploymentType = "cloud"
	f.Flags.Verbose = true

	sess, err := f.BindSession([]string{"https://tenant.example.com/am/", "alpha", "admin", "secret"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://tenant.example.com/am", sess.Host())
	assert.Equal(t, "alpha", sess.Realm())
	assert.Equal(t, "admin", sess.Username())
	assert.Equal(t, "secret", sess.Password())
	assert.Equal(t, session.DeploymentCloud, sess.DeploymentType())
	assert.True(t, sess.Verbose())
}

func TestBindSession_Precedence(t *testing.T) {
	clearEnv(t)
	store := newStore(t)
	profile := &credentials.Profile{
		Host:           "https://tenant-a.example.com/am",
		Username:       "saved-user",
		DeploymentType: "forgeops",
		DefaultRealm:   "bravo",
	}
	require.NoError(t, store.SetPassword(profile, "saved-pass"))
	require.NoError(t, store.Save(profile))

	tests := []struct {
		name         string
		args         []string
		env          map[string]string
		wantUser     string
		wantPassword string
		wantRealm    string
	}{
		{
			name:         "profile fills the gaps",
			args:         []string{"tenant-a"},
			wantUser:     "saved-user",
			wantPassword: "saved-pass",
			wantRealm:    "bravo",
		},
		{
			name:         "environment beats profile",
			args:         []string{"tenant-a"},
			env:          map[string]string{EnvUsername: "env-user", EnvPassword: "env-pass", EnvRealm: "charlie"},
			wantUser:     "env-user",
			wantPassword: "env-pass",
			wantRealm:    "charlie",
		},
		{
			name:         "positionals beat environment",
			args:         []string{"tenant-a", "alpha", "arg-user", "arg-pass"},
			env:          map[string]string{EnvUsername: "env-user", EnvPassword: "env-pass"},
			wantUser:     "arg-user",
			wantPassword: "arg-pass",
			wantRealm:    "alpha",
		},
		{
			name:      "saved password is not used for another user",
			args:      []string{"tenant-a", "alpha", "other-user"},
			wantUser:  "other-user",
			wantRealm: "alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			sess, err := NewFactory("test").BindSession(tt.args, store)
			require.NoError(t, err)

			assert.Equal(t, profile.Host, sess.Host())
			assert.Equal(t, tt.wantUser, sess.Username())
			assert.Equal(t, tt.wantPassword, sess.Password())
			assert.Equal(t, tt.wantRealm, sess.Realm())
			assert.Equal(t, session.DeploymentForgeOps, sess.DeploymentType())
		})
	}
}

func TestBindSession_Errors(t *testing.T) {
	clearEnv(t)

	_, err := NewFactory("test").BindSession(nil, nil)
	assert.ErrorIs(t, err, session.ErrHostRequired)

	f := NewFactory("test")
	f.Flags.DeploymentType = "mainframe"
	_, err = f.BindSession([]string{"https://tenant.example.com/am"}, nil)
	assert.Error(t, err)

	store := newStore(t)
	require.NoError(t, store.Save(&credentials.Profile{Host: "https://one.example.com/am"}))
	require.NoError(t, store.Save(&credentials.Profile{Host: "https://two.example.com/am"}))
	_, err = NewFactory("test").BindSession([]string{"example.com"}, store)
	assert.ErrorIs(t, err, credentials.ErrAmbiguousHost)
}

func TestBindSession_ConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "https://tenant.example.com/am")

	f := NewFactory("test")
	f.Config.Defaults.Realm = "alpha"
	f.Config.Defaults.DeploymentType = "classic"

	sess, err := f.BindSession(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "alpha", sess.Realm())
	assert.Equal(t, session.DeploymentClassic, sess.DeploymentType())
}

func TestOutputFormat(t *testing.T) {
	f := NewFactory("test")

	format, err := f.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, output.FormatTable, format)

	f.Config.Defaults.Output = "yaml"
	format, err = f.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, format)

	f.Flags.Output = "json"
	format, err = f.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, format)

	f.Flags.Output = "xml"
	_, err = f.OutputFormat()
	assert.Error(t, err)
}

func TestCommandName(t *testing.T) {
	root := &cobra.Command{Use: "idmctl"}
	agent := &cobra.Command{Use: "agent"}
	web := &cobra.Command{Use: "web"}
	del := &cobra.Command{Use: "delete [host]"}
	root.AddCommand(agent)
	agent.AddCommand(web)
	web.AddCommand(del)

	assert.Equal(t, "agent web delete", CommandName(del))
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 1}
	assert.Equal(t, "exit status 1", err.Error())
}

func TestEmptyOr(t *testing.T) {
	assert.Equal(t, "-", EmptyOr("", "-"))
	assert.Equal(t, "x", EmptyOr("x", "-"))
}

func TestCommandOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want mode.Options
		kind mode.Kind
	}{
		{name: "identifier", args: []string{"-i", "agent-1"}, want: mode.Options{"agent-id": "agent-1"}, kind: mode.ByIdentifier},
		{name: "identifier beats all", args: []string{"--all", "-i", "agent-1"}, want: mode.Options{"agent-id": "agent-1", "all": true}, kind: mode.ByIdentifier},
		{name: "all", args: []string{"-a"}, want: mode.Options{"all": true}, kind: mode.All},
		{name: "globals are not options", args: []string{"--type", "cloud", "-o", "json"}, want: mode.Options{}, kind: mode.Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got mode.Options
			root := &cobra.Command{Use: "idmctl"}
			root.PersistentFlags().StringP("type", "m", "", "")
			root.PersistentFlags().StringP("output", "o", "", "")
			del := &cobra.Command{
				Use: "delete",
				RunE: func(cmd *cobra.Command, _ []string) error {
					got = CommandOptions(cmd)
					return nil
				},
			}
			del.Flags().StringP("agent-id", "i", "", "")
			del.Flags().BoolP(mode.OptionAll, "a", false, "")
			root.AddCommand(del)

			root.SetArgs(append([]string{"delete"}, tt.args...))
			require.NoError(t, root.Execute())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, mode.DeletePattern("agent-id").Resolve(got).Kind)
		})
	}
}
