// Package authz implements authorization policy commands for idmctl.
package authz

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
)

const (
	optionTypeID   = "type-id"
	optionTypeName = "type-name"
)

// NewCmd returns the parent command for authorization configuration.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authz",
		Short: "Manage authorization policies",
	}
	cmd.AddCommand(newTypeCmd(f))
	return cmd
}

func newTypeCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage authorization resource types",
		Long: `Manage authorization resource types.

Examples:
  # Export every resource type to one file
  idmctl authz type export https://tenant.example.com/am alpha -a -f types.json

  # Import one resource type by name from that file
  idmctl authz type import https://tenant.example.com/am alpha -n URL -f types.json

  # Delete a resource type by uuid
  idmctl authz type delete https://tenant.example.com/am alpha -i 76656a38-5f8e-401b-83aa-4ccb74ce88d2`,
	}
	cmd.AddCommand(newListCmd(f))
	cmd.AddCommand(newDeleteCmd(f))
	cmd.AddCommand(newExportCmd(f))
	cmd.AddCommand(newImportCmd(f))
	return cmd
}
