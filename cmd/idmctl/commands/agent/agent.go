// Package agent implements agent management commands for idmctl.
package agent

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
)

// NewCmd returns the parent command for agent management.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents",
	}
	cmd.AddCommand(newWebCmd(f))
	return cmd
}

func newWebCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Manage web agents",
		Long: `Manage web agents in a realm.

Examples:
  # List web agents
  idmctl agent web list https://tenant.example.com/am alpha

  # Delete one web agent
  idmctl agent web delete https://tenant.example.com/am alpha -i my-agent

  # Delete every web agent in the realm
  idmctl agent web delete https://tenant.example.com/am alpha --all`,
	}
	cmd.AddCommand(newListCmd(f))
	cmd.AddCommand(newDeleteCmd(f))
	return cmd
}
