package authz

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list " + cmdutil.SessionArgs,
		Short: "List authorization resource types",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.Always(mode.Default),
				Progress: func(_ mode.Mode, realm string) string {
					return fmt.Sprintf("Listing authorization resource types in realm %q...", realm)
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.Default: func(ctx context.Context, _ mode.Mode) error {
							return svc.ListResourceTypes(ctx, long)
						},
					}
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long with all fields")
	return cmd
}

func newDeleteCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete " + cmdutil.SessionArgs,
		Short: "Delete authorization resource types",
		Long: `Delete authorization resource types by uuid, by name, or all of them.
-i takes precedence over -n, which takes precedence over -a.`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.DeleteByIDOrNamePattern(optionTypeID, optionTypeName),
				Progress: func(m mode.Mode, realm string) string {
					switch m.Kind {
					case mode.ByIdentifier:
						return fmt.Sprintf("Deleting authorization resource type %s in realm %q...", m.ID, realm)
					case mode.ByName:
						return fmt.Sprintf("Deleting authorization resource type %s in realm %q...", m.Name, realm)
					default:
						return fmt.Sprintf("Deleting all authorization resource types in realm %q...", realm)
					}
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.DeleteResourceType(ctx, m.ID)
						},
						mode.ByName: func(ctx context.Context, m mode.Mode) error {
							return svc.DeleteResourceTypeByName(ctx, m.Name)
						},
						mode.All: func(ctx context.Context, _ mode.Mode) error {
							return svc.DeleteResourceTypes(ctx)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionTypeID, "i", "", "Resource type uuid. If specified, -n and -a are ignored.")
	cmd.Flags().StringP(optionTypeName, "n", "", "Resource type name. If specified, -a is ignored.")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Delete all resource types in the realm. Ignored with -i and -n.")
	return cmd
}

func newExportCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export " + cmdutil.SessionArgs,
		Short: "Export authorization resource types",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.ExportPattern(optionTypeID),
				Progress: func(m mode.Mode, realm string) string {
					switch m.Kind {
					case mode.ByIdentifier:
						return fmt.Sprintf("Exporting authorization resource type %s from realm %q...", m.ID, realm)
					case mode.AllFromSingleSource:
						return fmt.Sprintf("Exporting all authorization resource types from realm %q to one file...", realm)
					default:
						return fmt.Sprintf("Exporting all authorization resource types from realm %q to separate files...", realm)
					}
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.ExportResourceType(ctx, m.ID, m.File)
						},
						mode.AllFromSingleSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ExportResourceTypes(ctx, m.File)
						},
						mode.AllFromSeparateSources: func(ctx context.Context, _ mode.Mode) error {
							return svc.ExportResourceTypesSeparate(ctx)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionTypeID, "i", "", "Resource type uuid. If specified, -a and -A are ignored.")
	cmd.Flags().StringP(mode.OptionFile, "f", "", "Name of the export file")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Export all resource types to a single file. Ignored with -i.")
	cmd.Flags().BoolP(mode.OptionAllSeparate, "A", false, "Export all resource types to separate files (*.resourcetype.authz.json) in the current directory. Ignored with -i or -a.")
	return cmd
}

func newImportCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import " + cmdutil.SessionArgs,
		Short: "Import authorization resource types",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.ImportPattern(optionTypeID, optionTypeName),
				Progress: func(m mode.Mode, _ string) string {
					switch m.Kind {
					case mode.ByIdentifier:
						return "Importing authorization resource type by uuid from file..."
					case mode.ByName:
						return "Importing authorization resource type by name from file..."
					case mode.AllFromSingleSource:
						return "Importing all authorization resource types from file..."
					case mode.AllFromSeparateSources:
						return "Importing all authorization resource types from separate files..."
					default:
						return fmt.Sprintf("Importing first authorization resource type from file %q...", m.File)
					}
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportResourceType(ctx, m.ID, m.File)
						},
						mode.ByName: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportResourceTypeByName(ctx, m.Name, m.File)
						},
						mode.AllFromSingleSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportResourceTypes(ctx, m.File)
						},
						mode.AllFromSeparateSources: func(ctx context.Context, _ mode.Mode) error {
							return svc.ImportResourceTypesSeparate(ctx)
						},
						mode.FirstFromSource: func(ctx context.Context, m mode.Mode) error {
							return svc.ImportFirstResourceType(ctx, m.File)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionTypeID, "i", "", "Resource type uuid. If specified, -a and -A are ignored.")
	cmd.Flags().StringP(optionTypeName, "n", "", "Resource type name. If specified, -a and -A are ignored.")
	cmd.Flags().StringP(mode.OptionFile, "f", "", "Name of the file to import")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Import all resource types from a single file. Ignored with -i.")
	cmd.Flags().BoolP(mode.OptionAllSeparate, "A", false, "Import all resource types from separate files (*.resourcetype.authz.json) in the current directory. Ignored with -i, -n, or -a.")
	return cmd
}
