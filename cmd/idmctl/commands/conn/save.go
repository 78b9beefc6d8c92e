package conn

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/idmctl/cmd/idmctl/cmdutil"
	"github.com/marmos91/idmctl/internal/auth"
	"github.com/marmos91/idmctl/internal/cli/credentials"
	"github.com/marmos91/idmctl/internal/cli/prompt"
	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/internal/session"
)

func newSaveCmd(f *cmdutil.Factory) *cobra.Command {
	var (
		realm      string
		noValidate bool
	)

	cmd := &cobra.Command{
		Use:   "save <host> [username] [password]",
		Short: "Save a connection",
		Long: `Save a connection to a tenant.

Missing username and password are prompted for. Unless --no-validate is
given, the credentials are checked by logging in before they are saved.`,
		Aliases: []string{"add"},
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.Store()
			if err != nil {
				return err
			}

			host := args[0]
			username := argAt(args, 1)
			password := argAt(args, 2)

			if username == "" {
				if username, err = prompt.InputRequired("Username"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt.Password("Password"); err != nil {
					return err
				}
			}

			dt, err := session.ParseDeploymentType(f.Flags.DeploymentType)
			if err != nil {
				return err
			}
			sess, err := session.Bind(host, realm, username, password, session.Options{
				DeploymentType: dt,
				Insecure:       f.Flags.Insecure,
			})
			if err != nil {
				return err
			}

			c := f.Console(cmd)
			var tokens *auth.Tokens
			if !noValidate {
				client := f.Client(sess.Host(), sess.Insecure(), c)
				gate := auth.NewGate(client, auth.WithSessionTTL(f.Config.Cache.SessionTTL))
				if tokens, err = gate.AcquireTokens(cmd.Context(), sess); err != nil {
					return err
				}
			}

			profile := &credentials.Profile{
				Host:           sess.Host(),
				Username:       username,
				DeploymentType: string(dt),
				DefaultRealm:   realm,
			}
			if err := store.SetPassword(profile, password); err != nil {
				return fmt.Errorf("failed to encrypt password: %w", err)
			}
			if err := store.Save(profile); err != nil {
				return fmt.Errorf("failed to save connection: %w", err)
			}
			if tokens != nil && !f.Flags.NoCache && !f.Config.Cache.Disabled {
				if err := store.UpdateToken(profile.Host, username, tokens.SessionToken, tokens.ExpiresAt); err != nil {
					logger.Warn("failed to cache session token", logger.Host(profile.Host), logger.Err(err))
				}
			}

			c.Success(fmt.Sprintf("Saved connection for %s", profile.Host))
			return nil
		},
	}

	cmd.Flags().StringVar(&realm, "realm", "", "Default realm for this connection")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Save without logging in first")
	return cmd
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
