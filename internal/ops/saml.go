package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// ListSaml2Providers prints the SAML entity providers of the realm.
func (s *Service) ListSaml2Providers(ctx context.Context, long bool) error {
	providers, err := s.api.ListSaml2Providers(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing SAML entity providers: %w", err)
	}

	if !long {
		listing := output.NewListing(providers, "Entity Id")
		for _, p := range providers {
			listing.Table.AddRow(p.EntityID)
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(providers, "Entity Id", "Location", "Roles")
	for _, p := range providers {
		listing.Table.AddRow(p.EntityID, p.Location, strings.Join(p.Roles, ", "))
	}
	return s.printer.Print(listing)
}

// DescribeSaml2Provider prints one entity provider. Table output shows a
// summary; JSON and YAML show the full configuration.
func (s *Service) DescribeSaml2Provider(ctx context.Context, entityID string) error {
	provider, err := s.api.FindSaml2Provider(ctx, s.realm, entityID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("entity provider %q not found in realm %q", entityID, s.realm)
		}
		return fmt.Errorf("finding entity provider %q: %w", entityID, err)
	}

	cfg, err := s.api.GetSaml2Provider(ctx, s.realm, provider)
	if err != nil {
		return fmt.Errorf("reading entity provider %q: %w", entityID, err)
	}

	if s.printer.Format() != output.FormatTable {
		return s.printer.Print(cfg)
	}
	return output.SimpleTable(s.printer.Writer(), [][2]string{
		{"Entity Id", provider.EntityID},
		{"Location", provider.Location},
		{"Roles", strings.Join(provider.Roles, ", ")},
		{"Realm", s.realm},
	})
}
