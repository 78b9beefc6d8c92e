// Package idp implements social identity provider commands for idmctl.
package idp

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

const optionIdPID = "idp-id"

// NewCmd returns the parent command for social identity providers.
func NewCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idp",
		Short: "Manage social identity providers",
	}
	cmd.AddCommand(newListCmd(f))
	cmd.AddCommand(newExportCmd(f))
	cmd.AddCommand(newImportCmd(f))
	return cmd
}

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List social identity providers",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Always(mode.Default),
				Progress: func(_ mode.Mode, realm string) string {
					return fmt.Sprintf("Listing social identity providers in realm %q...", realm)
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListSocialIdentityProviders(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}

func newExportCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export " + cmdutil.SessionArgs,
		Short: "Export social identity providers",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.ExportPattern(optionIdPID),
				Progress: func(m mode.Mode, realm string) string {
					switch m.Kind {
					case mode.ByIdentifier:
						return fmt.Sprintf("Exporting provider %q from realm %q...", m.ID, realm)
					case mode.AllFromSingleSource:
						return fmt.Sprintf("Exporting all providers from realm %q to one file...", realm)
					default:
						return fmt.Sprintf("Exporting all providers from realm %q to separate files...", realm)
					}
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.ExportSocialIdentityProvider(ctx, m.ID, m.File)
						},
						mode.AllFromSingleSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ExportSocialIdentityProviders(ctx, m.File)
						},
						mode.AllFromSeparateSources: func(ctx context.Context, _ mode.Mode) error {
							return svc.ExportSocialIdentityProvidersSeparate(ctx)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionIdPID, "i", "", "Provider id. If specified, -a and -A are ignored.")
	cmd.Flags().StringP(mode.OptionFile, "f", "", "Name of the export file")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Export all providers to a single file. Ignored with -i.")
	cmd.Flags().BoolP(mode.OptionAllSeparate, "A", false, "Export all providers to separate files (*.idp.json) in the current directory. Ignored with -i or -a.")
	return cmd
}

func newImportCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import " + cmdutil.SessionArgs,
		Short: "Import social identity providers",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.ImportPattern(optionIdPID, ""),
				Progress: func(m mode.Mode, realm string) string {
					switch m.Kind {
					case mode.ByIdentifier:
						return fmt.Sprintf("Importing provider %q into realm %q...", m.ID, realm)
					case mode.AllFromSingleSource:
						return fmt.Sprintf("Importing all providers from a single file (%s)...", m.File)
					case mode.AllFromSeparateSources:
						return "Importing all providers from separate files in current directory..."
					default:
						return fmt.Sprintf("Importing first provider from file %q into realm %q...", m.File, realm)
					}
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportSocialIdentityProvider(ctx, m.ID, m.File)
						},
						mode.AllFromSingleSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportSocialIdentityProviders(ctx, m.File)
						},
						mode.AllFromSeparateSources: func(ctx context.Context, _ mode.Mode) error {
							return svc.ImportSocialIdentityProvidersSeparate(ctx)
						},
						mode.FirstFromSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportFirstSocialIdentityProvider(ctx, m.File)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionIdPID, "i", "", "Provider id. If specified, -a and -A are ignored.")
	cmd.Flags().StringP(mode.OptionFile, "f", "", "Name of the file to import")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Import all providers from a single file. Ignored with -i.")
	cmd.Flags().BoolP(mode.OptionAllSeparate, "A", false, "Import all providers from separate files (*.idp.json) in the current directory. Ignored with -i or -a.")
	return cmd
}
