// Package session holds the per-invocation connection settings for idmctl.
//
// A Context is built exactly once per command by Bind and is read-only
// afterwards. It is passed explicitly to the authenticator, the operations and
// the reporter; there is no process-wide session.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RootRealm is the realm used when none is given and no default is configured.
const RootRealm = "/"

// ErrHostRequired is returned by Bind when no tenant host is available.
var ErrHostRequired = errors.New("tenant host is required")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options carries the option-derived session settings.
type Options struct {
	DeploymentType DeploymentType
	DefaultRealm   string
	Insecure       bool
	Verbose        bool
	Debug          bool
	Curlirize      bool
}

// bound is the validated shape of a session.
type bound struct {
	Host           string `validate:"required"`
	Realm          string `validate:"required"`
	DeploymentType string `validate:"omitempty,oneof=cloud forgeops classic"`
}

// Context is an immutable session for one command invocation.
type Context struct {
	host           string
	realm          string
	username       string
	password       string
	deploymentType DeploymentType
	insecure       bool
	verbose        bool
	debug          bool
	curlirize      bool
}

// Bind builds the session for one invocation. The realm falls back to
// opts.DefaultRealm and then to RootRealm.
func Bind(host, realm, username, password string, opts Options) (*Context, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrHostRequired
	}

	realm = strings.TrimSpace(realm)
	if realm == "" {
		realm = opts.DefaultRealm
	}
	if realm == "" {
		realm = RootRealm
	}

	if err := validate.Struct(bound{
		Host:           host,
		Realm:          realm,
		DeploymentType: string(opts.DeploymentType),
	}); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	return &Context{
		host:           strings.TrimRight(host, "/"),
		realm:          realm,
		username:       username,
		password:       password,
		deploymentType: opts.DeploymentType,
		insecure:       opts.Insecure,
		verbose:        opts.Verbose,
		debug:          opts.Debug,
		curlirize:      opts.Curlirize,
	}, nil
}

// Host returns the tenant base URL without a trailing slash.
func (c *Context) Host() string { return c.host }

// Realm returns the realm the command operates on.
func (c *Context) Realm() string { return c.realm }

// Username returns the login name.
func (c *Context) Username() string { return c.username }

// Password returns the login secret.
func (c *Context) Password() string { return c.password }

// DeploymentType returns the type as given on the command line or profile.
func (c *Context) DeploymentType() DeploymentType { return c.deploymentType }

// ResolvedDeploymentType returns the explicit type, or the type inferred from
// the host when none was given.
func (c *Context) ResolvedDeploymentType() DeploymentType {
	if c.deploymentType != DeploymentUnspecified {
		return c.deploymentType
	}
	return inferDeploymentType(c.host)
}

// Insecure reports whether TLS verification is disabled.
func (c *Context) Insecure() bool { return c.insecure }

// Verbose reports whether progress messages are printed.
func (c *Context) Verbose() bool { return c.verbose }

// Debug reports whether debug output is enabled.
func (c *Context) Debug() bool { return c.debug }

// Curlirize reports whether requests are echoed as curl commands.
func (c *Context) Curlirize() bool { return c.curlirize }

// String renders the session without its password.
func (c *Context) String() string {
	return fmt.Sprintf("%s@%s realm=%s type=%s", c.username, c.host, c.realm, c.ResolvedDeploymentType())
}

// LogValue implements slog.LogValuer so the password never reaches the logs.
func (c *Context) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", c.host),
		slog.String("realm", c.realm),
		slog.String("username", c.username),
		slog.String("deployment_type", c.ResolvedDeploymentType().String()),
	)
}
