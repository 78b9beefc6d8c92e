package ops

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/marmos91/idmctl/internal/cli/output"
)

// ListRealms prints every realm of the tenant, ordered by path.
func (s *Service) ListRealms(ctx context.Context, long bool) error {
	realms, err := s.api.ListRealms(ctx)
	if err != nil {
		return fmt.Errorf("listing realms: %w", err)
	}
	sort.Slice(realms, func(i, j int) bool { return realms[i].Path() < realms[j].Path() })

	if !long {
		listing := output.NewListing(realms, "Name")
		for _, r := range realms {
			listing.Table.AddRow(r.Path())
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(realms, "Name", "Status", "Custom Domain Name", "Parent")
	for _, r := range realms {
		status := "inactive"
		if r.Active {
			status = "active"
		}
		listing.Table.AddRow(r.Path(), status, strings.Join(r.Aliases, ", "), r.ParentPath)
	}
	return s.printer.Print(listing)
}
