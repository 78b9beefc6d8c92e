// Package conn implements connection profile commands for idmctl.
package conn

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/cli/credentials"
	"github.com/marmos91/idmctl/internal/cli/timeutil"
)

// NewCmd returns the parent command for connection profiles.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conn",
		Aliases: []string{"connection"},
		Short:   "Manage saved connections",
		Long: `Manage saved tenant connections.

A saved connection stores the username, an encrypted password and the
deployment type for a host. Resource commands given only the host (or a
unique part of it) complete the rest from the saved connection.

Examples:
  # Save a connection, prompting for the password
  idmctl conn save https://tenant.example.com/am admin

  # Use it
  idmctl realm list tenant.example`,
	}
	cmd.AddCommand(newSaveCmd(f))
	cmd.AddCommand(newListCmd(f))
	cmd.AddCommand(newDescribeCmd(f))
	cmd.AddCommand(newDeleteCmd(f))
	return cmd
}

// connection is the printable view of a profile; secrets are never shown.
type connection struct {
	Host           string     `json:"host" yaml:"host"`
	Username       string     `json:"username" yaml:"username"`
	DeploymentType string     `json:"deploymentType,omitempty" yaml:"deploymentType,omitempty"`
	DefaultRealm   string     `json:"defaultRealm,omitempty" yaml:"defaultRealm,omitempty"`
	HasPassword    bool       `json:"hasPassword" yaml:"hasPassword"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty" yaml:"tokenExpiresAt,omitempty"`
}

func newConnection(p *credentials.Profile) connection {
	c := connection{
		Host:           p.Host,
		Username:       p.Username,
		DeploymentType: p.DeploymentType,
		DefaultRealm:   p.DefaultRealm,
		HasPassword:    p.HasPassword(),
	}
	if !p.IsTokenExpired() {
		t := p.TokenExpiresAt
		c.TokenExpiresAt = &t
	}
	return c
}

func tokenState(c connection, now time.Time) string {
	if c.TokenExpiresAt == nil {
		return "-"
	}
	return timeutil.FormatExpiry(*c.TokenExpiresAt, now)
}
