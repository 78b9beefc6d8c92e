package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/marmos91/idmctl/internal/cli/output"
)

// ListOAuth2Clients prints the OAuth2 applications of the realm.
func (s *Service) ListOAuth2Clients(ctx context.Context, long bool) error {
	clients, err := s.api.ListOAuth2Clients(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing OAuth2 clients: %w", err)
	}

	if !long {
		listing := output.NewListing(clients, "Client Id")
		for _, c := range clients {
			listing.Table.AddRow(c.ID)
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(clients, "Client Id", "Status", "Client Type", "Grant Types", "Scopes", "Redirect URIs")
	for _, c := range clients {
		listing.Table.AddRow(
			c.ID,
			c.Core.Status.Value,
			c.Core.ClientType.Value,
			strings.Join(c.Advanced.GrantTypes.Value, ", "),
			strings.Join(c.Core.Scopes.Value, ", "),
			strings.Join(c.Core.RedirectionURIs.Value, ", "),
		)
	}
	return s.printer.Print(listing)
}
