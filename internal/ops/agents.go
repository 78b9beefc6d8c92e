package ops

import (
	"context"
	"fmt"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// ListWebAgents prints the web agents of the realm.
func (s *Service) ListWebAgents(ctx context.Context, long bool) error {
	agents, err := s.api.ListWebAgents(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing web agents: %w", err)
	}

	listing := output.NewListing(agents, "Agent Id")
	if long {
		listing = output.NewListing(agents, "Agent Id", "Type")
	}
	for _, a := range agents {
		if long {
			listing.Table.AddRow(a.ID, a.Type.Name)
		} else {
			listing.Table.AddRow(a.ID)
		}
	}
	return s.printer.Print(listing)
}

// DeleteWebAgent deletes one web agent.
func (s *Service) DeleteWebAgent(ctx context.Context, id string) error {
	if err := s.api.DeleteWebAgent(ctx, s.realm, id); err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("web agent %q not found in realm %q", id, s.realm)
		}
		return fmt.Errorf("deleting web agent %q: %w", id, err)
	}
	s.console.Printf("Deleted web agent %s.", id)
	return nil
}

// DeleteWebAgents deletes every web agent in the realm. The first failure
// aborts the run.
func (s *Service) DeleteWebAgents(ctx context.Context) error {
	agents, err := s.api.ListWebAgents(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing web agents: %w", err)
	}
	for _, a := range agents {
		s.console.DebugMessage("Deleting web agent " + a.ID)
		if err := s.api.DeleteWebAgent(ctx, s.realm, a.ID); err != nil {
			return fmt.Errorf("deleting web agent %q: %w", a.ID, err)
		}
	}
	logger.DebugCtx(ctx, "deleted web agents", logger.Count(len(agents)))
	s.console.Printf("Deleted %d web agents.", len(agents))
	return nil
}
