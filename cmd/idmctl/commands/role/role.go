// Package role implements internal role commands for idmctl.
package role

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
	"github.com/marmos91/idmctl/internal/session"
)

// deploymentTypes are the deployments that expose internal roles.
var deploymentTypes = []session.DeploymentType{
	session.DeploymentCloud,
	session.DeploymentForgeOps,
}

// NewCmd returns the parent command for roles.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage internal roles",
	}
	cmd.AddCommand(newListCmd(f))
	return cmd
}

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List internal roles",
		Long: `List internal roles.

Only available on cloud and forgeops deployments; pass --type when the
deployment cannot be inferred from the host.`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver:        mode.Always(mode.Default),
				DeploymentTypes: deploymentTypes,
				Progress:        func(mode.Mode, string) string { return "Listing all roles" },
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListInternalRoles(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}
