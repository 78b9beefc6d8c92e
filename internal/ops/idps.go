package ops

import (
	"context"
	"fmt"
	"sort"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// ListSocialIdentityProviders prints the social identity providers of the
// realm.
func (s *Service) ListSocialIdentityProviders(ctx context.Context, long bool) error {
	idps, err := s.listIdPs(ctx)
	if err != nil {
		return err
	}

	if !long {
		listing := output.NewListing(idps, "Id")
		for _, p := range idps {
			listing.Table.AddRow(p.ID())
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(idps, "Id", "Type", "Enabled")
	for _, p := range idps {
		listing.Table.AddRow(p.ID(), p.TypeName(), yesNo(p.Enabled()))
	}
	return s.printer.Print(listing)
}

func (s *Service) listIdPs(ctx context.Context) ([]apiclient.SocialIdentityProvider, error) {
	idps, err := s.api.ListSocialIdentityProviders(ctx, s.realm)
	if err != nil {
		return nil, fmt.Errorf("listing social identity providers: %w", err)
	}
	sort.Slice(idps, func(i, j int) bool { return idps[i].ID() < idps[j].ID() })
	return idps, nil
}

// ExportSocialIdentityProvider writes the provider id to file, or to
// <id>.idp.json when file is empty.
func (s *Service) ExportSocialIdentityProvider(ctx context.Context, id, file string) error {
	idps, err := s.listIdPs(ctx)
	if err != nil {
		return err
	}
	for _, p := range idps {
		if p.ID() != id {
			continue
		}
		path := s.outputPath(file, fileName(id, IdPSuffix))
		if err := writeExport(path, idpKind, s.meta(), map[string]apiclient.SocialIdentityProvider{id: p}); err != nil {
			return err
		}
		s.console.Printf("Exported provider %s to %s.", id, path)
		return nil
	}
	return fmt.Errorf("provider %q not found in realm %q", id, s.realm)
}

// ExportSocialIdentityProviders writes every provider to a single file.
func (s *Service) ExportSocialIdentityProviders(ctx context.Context, file string) error {
	idps, err := s.listIdPs(ctx)
	if err != nil {
		return err
	}
	items := make(map[string]apiclient.SocialIdentityProvider, len(idps))
	for _, p := range idps {
		items[p.ID()] = p
	}
	path := s.outputPath(file, "allProviders"+IdPSuffix)
	if err := writeExport(path, idpKind, s.meta(), items); err != nil {
		return err
	}
	s.console.Printf("Exported %d providers to %s.", len(items), path)
	return nil
}

// ExportSocialIdentityProvidersSeparate writes each provider to
// <id>.idp.json.
func (s *Service) ExportSocialIdentityProvidersSeparate(ctx context.Context) error {
	idps, err := s.listIdPs(ctx)
	if err != nil {
		return err
	}
	meta := s.meta()
	for _, p := range idps {
		path := s.outputPath("", fileName(p.ID(), IdPSuffix))
		if err := writeExport(path, idpKind, meta, map[string]apiclient.SocialIdentityProvider{p.ID(): p}); err != nil {
			return err
		}
	}
	s.console.Printf("Exported %d providers to separate files.", len(idps))
	return nil
}

func (s *Service) readIdPs(file string) (map[string]apiclient.SocialIdentityProvider, error) {
	if file == "" {
		return nil, ErrFileRequired
	}
	return readExport[apiclient.SocialIdentityProvider](file, idpKind)
}

func (s *Service) putIdP(ctx context.Context, p apiclient.SocialIdentityProvider) error {
	if _, err := s.api.PutSocialIdentityProvider(ctx, s.realm, p); err != nil {
		return fmt.Errorf("importing provider %q: %w", p.ID(), err)
	}
	return nil
}

// ImportSocialIdentityProvider imports the provider id from file.
func (s *Service) ImportSocialIdentityProvider(ctx context.Context, id, file string) error {
	items, err := s.readIdPs(file)
	if err != nil {
		return err
	}
	p, ok := items[id]
	if !ok {
		return fmt.Errorf("provider %q not found in %s", id, file)
	}
	if err := s.putIdP(ctx, p); err != nil {
		return err
	}
	s.console.Printf("Imported provider %s.", id)
	return nil
}

// ImportSocialIdentityProviders imports every provider in file. The first
// failure aborts the run.
func (s *Service) ImportSocialIdentityProviders(ctx context.Context, file string) error {
	items, err := s.readIdPs(file)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(items) {
		if err := s.putIdP(ctx, items[key]); err != nil {
			return err
		}
	}
	s.console.Printf("Imported %d providers.", len(items))
	return nil
}

// ImportSocialIdentityProvidersSeparate imports every *.idp.json file in
// the working directory.
func (s *Service) ImportSocialIdentityProvidersSeparate(ctx context.Context) error {
	files, err := filesWithSuffix(s.dir, IdPSuffix)
	if err != nil {
		return err
	}
	total := 0
	for _, f := range files {
		items, err := readExport[apiclient.SocialIdentityProvider](f, idpKind)
		if err != nil {
			return err
		}
		for _, key := range sortedKeys(items) {
			if err := s.putIdP(ctx, items[key]); err != nil {
				return err
			}
		}
		total += len(items)
	}
	s.console.Printf("Imported %d providers from %d files.", total, len(files))
	return nil
}

// ImportFirstSocialIdentityProvider imports the first provider in file.
func (s *Service) ImportFirstSocialIdentityProvider(ctx context.Context, file string) error {
	items, err := s.readIdPs(file)
	if err != nil {
		return err
	}
	keys := sortedKeys(items)
	if len(keys) == 0 {
		return fmt.Errorf("%s contains no providers", file)
	}
	if err := s.putIdP(ctx, items[keys[0]]); err != nil {
		return err
	}
	s.console.Printf("Imported provider %s.", keys[0])
	return nil
}
