// Package commands implements the idmctl command tree.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	agentcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/agent"
	appcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/app"
	authzcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/authz"
	conncmd "github.com/marmos91/idmctl/cmd/idmctl/commands/conn"
	idpcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/idp"
	realmcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/realm"
	rolecmd "github.com/marmos91/idmctl/cmd/idmctl/commands/role"
	samlcmd "github.com/marmos91/idmctl/cmd/idmctl/commands/saml"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the idmctl command tree around f.
func NewRootCmd(f *cmdutil.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "idmctl",
		Short: "Identity platform administration",
		Long: `idmctl manages the configuration of identity platform tenants:
agents, applications, realms, roles, SAML providers, authorization resource
types and social identity providers.

Resource commands take the tenant as positional arguments:

  idmctl <command> [host] [realm] [username] [password] [flags]

Omitted values come from IDMCTL_HOST, IDMCTL_REALM, IDMCTL_USERNAME and
IDMCTL_PASSWORD, then from a connection saved with "idmctl conn save".

Use "idmctl [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return f.LoadConfig()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.Flags.ConfigFile, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/idmctl/config.yaml)")
	pf.StringVarP(&f.Flags.DeploymentType, "type", "m", "", "Deployment type (cloud|forgeops|classic)")
	pf.BoolVarP(&f.Flags.Insecure, "insecure", "k", false, "Allow insecure TLS connections")
	pf.BoolVar(&f.Flags.Verbose, "verbose", false, "Verbose output during command execution")
	pf.BoolVar(&f.Flags.Debug, "debug", false, "Debug output during command execution")
	pf.BoolVar(&f.Flags.Curlirize, "curlirize", false, "Print every request as a curl command")
	pf.BoolVar(&f.Flags.NoCache, "no-cache", false, "Do not reuse or store session tokens")
	pf.StringVarP(&f.Flags.Output, "output", "o", "", "Output format (table|json|yaml)")
	pf.BoolVar(&f.Flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(agentcmd.NewCmd(f))
	rootCmd.AddCommand(appcmd.NewCmd(f))
	rootCmd.AddCommand(authzcmd.NewCmd(f))
	rootCmd.AddCommand(idpcmd.NewCmd(f))
	rootCmd.AddCommand(realmcmd.NewCmd(f))
	rootCmd.AddCommand(rolecmd.NewCmd(f))
	rootCmd.AddCommand(samlcmd.NewCmd(f))
	rootCmd.AddCommand(conncmd.NewCmd(f))
	rootCmd.AddCommand(newConfigCmd(f))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs idmctl with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(cmdutil.NewFactory(Version)).ExecuteContext(ctx)
}
