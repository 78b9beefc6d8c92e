// Package app implements OAuth2 application commands for idmctl.
package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

// NewCmd returns the parent command for applications.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Manage OAuth2 applications",
	}
	cmd.AddCommand(newListCmd(f))
	return cmd
}

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List OAuth2 applications",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Always(mode.Default),
				Progress: func(_ mode.Mode, realm string) string {
					return fmt.Sprintf("Listing OAuth2 applications in realm %q...", realm)
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListOAuth2Clients(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}
