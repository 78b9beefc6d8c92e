package conn

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/cli/prompt"
)

func newDeleteCmd(f *cmdutil.Factory) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <host>",
		Short:   "Delete a saved connection",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.Store()
			if err != nil {
				return err
			}
			p, err := store.Find(args[0])
			if err != nil {
				return err
			}

			c := f.Console(cmd)
			confirmed, err := prompt.ConfirmWithForce(fmt.Sprintf("Delete connection '%s'?", p.Host), force)
			if err != nil {
				if prompt.IsAborted(err) {
					c.Printf("Aborted.")
					return nil
				}
				if errors.Is(err, prompt.ErrNotInteractive) {
					return fmt.Errorf("%w (use --force to skip confirmation)", err)
				}
				return err
			}
			if !confirmed {
				c.Printf("Aborted.")
				return nil
			}

			if err := store.Delete(p.Host); err != nil {
				return err
			}
			c.Success(fmt.Sprintf("Connection '%s' deleted successfully", p.Host))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
