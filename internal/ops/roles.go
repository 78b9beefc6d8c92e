package ops

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marmos91/idmctl/internal/cli/output"
)

// ListInternalRoles prints the internal roles of the tenant.
func (s *Service) ListInternalRoles(ctx context.Context, long bool) error {
	roles, err := s.api.ListInternalRoles(ctx)
	if err != nil {
		return fmt.Errorf("listing roles: %w", err)
	}

	if !long {
		listing := output.NewListing(roles, "Name")
		for _, r := range roles {
			listing.Table.AddRow(r.Name)
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(roles, "Name", "Description", "Privileges", "Condition")
	for _, r := range roles {
		listing.Table.AddRow(r.Name, r.Description, strconv.Itoa(len(r.Privileges)), r.Condition)
	}
	return s.printer.Print(listing)
}
