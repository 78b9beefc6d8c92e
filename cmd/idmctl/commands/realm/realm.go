// Package realm implements realm commands for idmctl.
package realm

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

// NewCmd returns the parent command for realms.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realm",
		Short: "Manage realms",
	}
	cmd.AddCommand(newListCmd(f))
	return cmd
}

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List realms",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Always(mode.Default),
				Progress: func(mode.Mode, string) string { return "Listing all realms..." },
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListRealms(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}
