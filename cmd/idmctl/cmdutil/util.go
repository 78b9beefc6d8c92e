// Package cmdutil provides shared utilities for idmctl commands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/internal/auth"
	"github.com/marmos91/idmctl/internal/cli/credentials"
	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
	"github.com/marmos91/idmctl/internal/runner"
	"github.com/marmos91/idmctl/internal/session"
	"github.com/marmos91/idmctl/pkg/apiclient"
	"github.com/marmos91/idmctl/pkg/config"
)

// Environment variables consulted when positionals are omitted.
const (
	EnvHost           = "IDMCTL_HOST"
	EnvRealm          = "IDMCTL_REALM"
	EnvUsername       = "IDMCTL_USERNAME"
	EnvPassword       = "IDMCTL_PASSWORD"
	EnvDeploymentType = "IDMCTL_DEPLOYMENT_TYPE"
)

// ExitError carries a non-zero exit code whose message has already been
// printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ConfigFile     string
	DeploymentType string
	Insecure       bool
	Verbose        bool
	Debug          bool
	Curlirize      bool
	NoCache        bool
	Output         string
	NoColor        bool
}

// Factory carries what every command needs: flags, configuration and
// build information. One Factory serves one root command.
type Factory struct {
	Flags   *GlobalFlags
	Config  *config.Config
	Version string
	// Dir is where --all-separate reads and writes; empty means the
	// working directory.
	Dir string
	Now func() time.Time
}

// NewFactory returns a Factory with default configuration.
func NewFactory(version string) *Factory {
	return &Factory{
		Flags:   &GlobalFlags{},
		Config:  config.GetDefaultConfig(),
		Version: version,
		Now:     time.Now,
	}
}

// LoadConfig reads the configuration file and applies it to the logger.
func (f *Factory) LoadConfig() error {
	cfg, err := config.Load(f.Flags.ConfigFile)
	if err != nil {
		return err
	}
	f.Config = cfg

	level := cfg.Logging.Level
	if f.Flags.Debug {
		level = "DEBUG"
	}
	return logger.Init(logger.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// OutputFormat returns the --output format, falling back to the configured
// default.
func (f *Factory) OutputFormat() (output.Format, error) {
	if f.Flags.Output != "" {
		return output.ParseFormat(f.Flags.Output)
	}
	return output.ParseFormat(f.Config.Defaults.Output)
}

// ColorEnabled reports whether w should receive ANSI colours.
func (f *Factory) ColorEnabled(w io.Writer) bool {
	return !f.Flags.NoColor && output.IsTerminal(w)
}

// Console builds the message sink for cmd.
func (f *Factory) Console(cmd *cobra.Command) *console.Console {
	return console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), console.Options{
		Verbose: f.Flags.Verbose,
		Debug:   f.Flags.Debug,
		Color:   f.ColorEnabled(cmd.ErrOrStderr()),
	})
}

// Store opens the connection profile store.
func (f *Factory) Store() (*credentials.Store, error) {
	store, err := credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connection store: %w", err)
	}
	return store, nil
}

// Client creates an API client for host.
func (f *Factory) Client(host string, insecure bool, c *console.Console) *apiclient.Client {
	opts := []apiclient.Option{
		apiclient.WithTimeout(f.Config.HTTP.Timeout),
		apiclient.WithInsecure(insecure || f.Config.HTTP.Insecure),
		apiclient.WithUserAgent(f.Config.HTTP.UserAgent),
		apiclient.WithCookieName(f.Config.HTTP.CookieName),
	}
	if f.Flags.Curlirize && c != nil {
		opts = append(opts, apiclient.WithCurl(func(line string) {
			c.PrintMessage(line, console.ChannelInfo)
		}))
	}
	return apiclient.New(host, opts...)
}

// BindSession builds the session from the [host] [realm] [username]
// [password] positionals. Missing values come from the environment, then
// from a saved connection profile, then from configuration.
func (f *Factory) BindSession(args []string, store *credentials.Store) (*session.Context, error) {
	host := firstNonEmpty(arg(args, 0), os.Getenv(EnvHost))
	realm := firstNonEmpty(arg(args, 1), os.Getenv(EnvRealm))
	username := firstNonEmpty(arg(args, 2), os.Getenv(EnvUsername))
	password := firstNonEmpty(arg(args, 3), os.Getenv(EnvPassword))
	deploymentType := firstNonEmpty(f.Flags.DeploymentType, os.Getenv(EnvDeploymentType))
	defaultRealm := f.Config.Defaults.Realm

	if host == "" {
		return nil, session.ErrHostRequired
	}

	if store != nil {
		profile, err := store.Find(host)
		switch {
		case err == nil:
			host = profile.Host
			if username == "" {
				username = profile.Username
			}
			if password == "" && username == profile.Username {
				if password, err = store.Password(profile); err != nil {
					return nil, fmt.Errorf("failed to read saved password for %s: %w", profile.Host, err)
				}
			}
			if deploymentType == "" {
				deploymentType = profile.DeploymentType
			}
			if profile.DefaultRealm != "" {
				defaultRealm = profile.DefaultRealm
			}
		case errors.Is(err, credentials.ErrProfileNotFound):
		default:
			return nil, err
		}
	}

	if deploymentType == "" {
		deploymentType = f.Config.Defaults.DeploymentType
	}
	dt, err := session.ParseDeploymentType(deploymentType)
	if err != nil {
		return nil, err
	}

	return session.Bind(host, realm, username, password, session.Options{
		DeploymentType: dt,
		DefaultRealm:   defaultRealm,
		Insecure:       f.Flags.Insecure,
		Verbose:        f.Flags.Verbose,
		Debug:          f.Flags.Debug,
		Curlirize:      f.Flags.Curlirize,
	})
}

// Spec describes a resource command to Run.
type Spec struct {
	Resolver        *mode.Resolver
	DeploymentTypes []session.DeploymentType
	Progress        func(m mode.Mode, realm string) string
	Operations      func(svc *ops.Service) dispatch.Table
}

// Run executes a resource command: bind the session, authenticate, pick the
// mode from the flags the user set, run the operation and report. A non-zero
// exit code is returned as *ExitError.
func (f *Factory) Run(cmd *cobra.Command, args []string, spec Spec) error {
	var store *credentials.Store
	if s, err := f.Store(); err == nil {
		store = s
	} else {
		logger.Warn("connection profiles unavailable", logger.Err(err))
	}

	sess, err := f.BindSession(args, store)
	if err != nil {
		return err
	}

	format, err := f.OutputFormat()
	if err != nil {
		return err
	}

	c := f.Console(cmd)
	client := f.Client(sess.Host(), sess.Insecure(), c)
	printer := output.NewPrinter(cmd.OutOrStdout(), format, f.ColorEnabled(cmd.OutOrStdout()))

	gateOpts := []auth.Option{auth.WithSessionTTL(f.Config.Cache.SessionTTL)}
	if store != nil && !f.Flags.NoCache && !f.Config.Cache.Disabled {
		gateOpts = append(gateOpts, auth.WithCache(store))
	}
	gate := auth.NewGate(client, gateOpts...)

	rc := runner.Command{
		Name:            CommandName(cmd),
		Resolver:        spec.Resolver,
		DeploymentTypes: spec.DeploymentTypes,
		Help:            cmd.Help,
		Operations: func(tokens *auth.Tokens) dispatch.Table {
			svc := ops.New(client.WithToken(tokens.SessionToken), ops.Config{
				Host:     sess.Host(),
				Realm:    sess.Realm(),
				Username: sess.Username(),
				Version:  f.Version,
				Dir:      f.Dir,
				Console:  c,
				Printer:  printer,
				Now:      f.Now,
			})
			return spec.Operations(svc)
		},
	}
	if spec.Progress != nil {
		rc.Progress = func(m mode.Mode) string { return spec.Progress(m, sess.Realm()) }
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res := runner.New(gate, c).Run(ctx, sess, CommandOptions(cmd), rc)
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

// CommandOptions returns the command's own flags that the user set. Global
// flags such as --type or --output are not options of the command.
func CommandOptions(cmd *cobra.Command) mode.Options {
	return mode.FromFlags(cmd.LocalNonPersistentFlags())
}

// CommandName returns the command path without the binary name, for
// example "agent web delete".
func CommandName(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
}

// SessionArgs is the positional usage shared by resource commands.
const SessionArgs = "[host] [realm] [username] [password]"

// EmptyOr returns the value if not empty, otherwise returns the fallback.
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func arg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
