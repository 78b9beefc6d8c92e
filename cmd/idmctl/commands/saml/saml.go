// Package saml implements SAML entity provider commands for idmctl.
package saml

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

const optionEntityID = "entity-id"

// NewCmd returns the parent command for SAML entity providers.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saml",
		Short: "Manage SAML entity providers",
	}
	cmd.AddCommand(newListCmd(f))
	cmd.AddCommand(newDescribeCmd(f))
	return cmd
}

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List SAML entity providers",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Always(mode.Default),
				Progress: func(_ mode.Mode, realm string) string {
					return fmt.Sprintf("Listing SAML entity providers in realm %q...", realm)
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListSaml2Providers(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}

func newDescribeCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe " + cmdutil.SessionArgs,
		Short: "Describe the configuration of an entity provider",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Require(mode.ByIdentifier, optionEntityID),
				Progress: func(m mode.Mode, realm string) string {
					return fmt.Sprintf("Describing SAML entity provider %s in realm %q...", m.ID, realm)
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.DescribeSaml2Provider(ctx, m.ID)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionEntityID, "i", "", "Entity id")
	return cmd
}
