package conn

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/cli/timeutil"
)

func newDescribeCmd(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <host>",
		Short: "Describe a saved connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.Store()
			if err != nil {
				return err
			}
			format, err := f.OutputFormat()
			if err != nil {
				return err
			}

			p, err := store.Find(args[0])
			if err != nil {
				return err
			}
			c := newConnection(p)

			if format != output.FormatTable {
				return output.NewPrinter(cmd.OutOrStdout(), format, false).Print(c)
			}

			expiry := "-"
			if c.TokenExpiresAt != nil {
				expiry = timeutil.FormatTime(*c.TokenExpiresAt)
			}

			password := "no"
			if c.HasPassword {
				password = "yes (encrypted)"
			}
			return output.SimpleTable(cmd.OutOrStdout(), [][2]string{
				{"Host", c.Host},
				{"Username", cmdutil.EmptyOr(c.Username, "-")},
				{"Password", password},
				{"Deployment type", cmdutil.EmptyOr(c.DeploymentType, "-")},
				{"Default realm", cmdutil.EmptyOr(c.DefaultRealm, "-")},
				{"Session token", tokenState(c, f.Now())},
				{"Token expiry", expiry},
			})
		},
	}
}
