package agent

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/ops"
)

const optionAgentID = "agent-id"

func newDeleteCmd(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete " + cmdutil.SessionArgs,
		Short: "Delete web agents",
		Long: `Delete one web agent by id, or every web agent with --all.
-i takes precedence over -a.`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.Run(cmd, args, cmdutil.Spec{
				Resolver: mode.DeletePattern(optionAgentID),
				Progress: func(m mode.Mode, realm string) string {
					if m.Kind == mode.ByIdentifier {
						return fmt.Sprintf("Deleting agent '%s' in realm %q...", m.ID, realm)
					}
					return "Deleting all agents..."
				},
				Operations: func(svc *ops.Service) dispatch.Table {
					return dispatch.Table{
						mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
							return svc.DeleteWebAgent(ctx, m.ID)
						},
						mode.All: func(ctx context.Context, _ mode.Mode) error {
							return svc.DeleteWebAgents(ctx)
						},
					}
				},
			})
		},
	}

	cmd.Flags().StringP(optionAgentID, "i", "", "Agent id. If specified, -a is ignored.")
	cmd.Flags().BoolP(mode.OptionAll, "a", false, "Delete all web agents. Ignored with -i.")
	return cmd
}
