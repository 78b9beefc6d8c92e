package conn

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/cli/output"
)

func newListCmd(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List saved connections",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.Store()
			if err != nil {
				return err
			}
			format, err := f.OutputFormat()
			if err != nil {
				return err
			}

			profiles := store.List()
			if len(profiles) == 0 && format == output.FormatTable {
				f.Console(cmd).Printf("No connections saved. Run 'idmctl conn save <host>' first.")
				return nil
			}

			conns := make([]connection, 0, len(profiles))
			for _, p := range profiles {
				conns = append(conns, newConnection(p))
			}

			listing := output.NewListing(conns, "HOST", "USERNAME", "TYPE", "REALM", "TOKEN")
			for _, c := range conns {
				listing.Table.AddRow(c.Host, cmdutil.EmptyOr(c.Username, "-"), cmdutil.EmptyOr(c.DeploymentType, "-"),
					cmdutil.EmptyOr(c.DefaultRealm, "-"), tokenState(c, f.Now()))
			}

			return output.NewPrinter(cmd.OutOrStdout(), format, f.ColorEnabled(cmd.OutOrStdout())).Print(listing)
		},
	}
}
