package ops

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// ListResourceTypes prints the authorization resource types of the realm.
func (s *Service) ListResourceTypes(ctx context.Context, long bool) error {
	types, err := s.api.ListResourceTypes(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing resource types: %w", err)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })

	if !long {
		listing := output.NewListing(types, "Name")
		for _, rt := range types {
			listing.Table.AddRow(rt.Name)
		}
		return s.printer.Print(listing)
	}

	listing := output.NewListing(types, "Id", "Name", "Description", "Patterns", "Actions")
	for _, rt := range types {
		actions := make([]string, 0, len(rt.Actions))
		for a := range rt.Actions {
			actions = append(actions, a)
		}
		sort.Strings(actions)
		listing.Table.AddRow(rt.UUID, rt.Name, rt.Description, strings.Join(rt.Patterns, ", "), strings.Join(actions, ", "))
	}
	return s.printer.Print(listing)
}

// DeleteResourceType deletes the resource type with the given uuid.
func (s *Service) DeleteResourceType(ctx context.Context, id string) error {
	if err := s.api.DeleteResourceType(ctx, s.realm, id); err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("resource type %q not found in realm %q", id, s.realm)
		}
		return fmt.Errorf("deleting resource type %q: %w", id, err)
	}
	s.console.Printf("Deleted resource type %s.", id)
	return nil
}

// DeleteResourceTypeByName deletes the resource type named name.
func (s *Service) DeleteResourceTypeByName(ctx context.Context, name string) error {
	rt, err := s.api.GetResourceTypeByName(ctx, s.realm, name)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("resource type %q not found in realm %q", name, s.realm)
		}
		return fmt.Errorf("finding resource type %q: %w", name, err)
	}
	if err := s.api.DeleteResourceType(ctx, s.realm, rt.UUID); err != nil {
		return fmt.Errorf("deleting resource type %q: %w", name, err)
	}
	s.console.Printf("Deleted resource type %s.", name)
	return nil
}

// DeleteResourceTypes deletes every resource type in the realm. The first
// failure aborts the run.
func (s *Service) DeleteResourceTypes(ctx context.Context) error {
	types, err := s.api.ListResourceTypes(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing resource types: %w", err)
	}
	for _, rt := range types {
		if err := s.api.DeleteResourceType(ctx, s.realm, rt.UUID); err != nil {
			return fmt.Errorf("deleting resource type %q: %w", rt.Name, err)
		}
	}
	s.console.Printf("Deleted %d resource types.", len(types))
	return nil
}

// ExportResourceType writes one resource type to file, or to
// <name>.resourcetype.authz.json when file is empty.
func (s *Service) ExportResourceType(ctx context.Context, id, file string) error {
	rt, err := s.api.GetResourceType(ctx, s.realm, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("resource type %q not found in realm %q", id, s.realm)
		}
		return fmt.Errorf("reading resource type %q: %w", id, err)
	}
	path := s.outputPath(file, fileName(rt.Name, ResourceTypeSuffix))
	if err := writeExport(path, resourceTypeKind, s.meta(), map[string]apiclient.ResourceType{rt.UUID: *rt}); err != nil {
		return err
	}
	s.console.Printf("Exported resource type %s to %s.", rt.Name, path)
	return nil
}

// ExportResourceTypes writes every resource type to a single file.
func (s *Service) ExportResourceTypes(ctx context.Context, file string) error {
	types, err := s.api.ListResourceTypes(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing resource types: %w", err)
	}
	items := make(map[string]apiclient.ResourceType, len(types))
	for _, rt := range types {
		items[rt.UUID] = rt
	}
	path := s.outputPath(file, "allResourceTypes"+ResourceTypeSuffix)
	if err := writeExport(path, resourceTypeKind, s.meta(), items); err != nil {
		return err
	}
	s.console.Printf("Exported %d resource types to %s.", len(items), path)
	return nil
}

// ExportResourceTypesSeparate writes each resource type to its own file.
func (s *Service) ExportResourceTypesSeparate(ctx context.Context) error {
	types, err := s.api.ListResourceTypes(ctx, s.realm)
	if err != nil {
		return fmt.Errorf("listing resource types: %w", err)
	}
	meta := s.meta()
	for _, rt := range types {
		path := s.outputPath("", fileName(rt.Name, ResourceTypeSuffix))
		if err := writeExport(path, resourceTypeKind, meta, map[string]apiclient.ResourceType{rt.UUID: rt}); err != nil {
			return err
		}
	}
	s.console.Printf("Exported %d resource types to separate files.", len(types))
	return nil
}

// putResourceType updates rt, creating it when the tenant does not have it.
func (s *Service) putResourceType(ctx context.Context, rt apiclient.ResourceType) error {
	_, err := s.api.PutResourceType(ctx, s.realm, &rt)
	if apiclient.IsNotFound(err) {
		_, err = s.api.CreateResourceType(ctx, s.realm, &rt)
	}
	if err != nil {
		return fmt.Errorf("importing resource type %q: %w", rt.Name, err)
	}
	logger.DebugCtx(ctx, "imported resource type", logger.ID(rt.UUID), logger.Name(rt.Name))
	return nil
}

func (s *Service) readResourceTypes(file string) (map[string]apiclient.ResourceType, error) {
	if file == "" {
		return nil, ErrFileRequired
	}
	return readExport[apiclient.ResourceType](file, resourceTypeKind)
}

// ImportResourceType imports the resource type id from file.
func (s *Service) ImportResourceType(ctx context.Context, id, file string) error {
	items, err := s.readResourceTypes(file)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(items) {
		if rt := items[key]; key == id || rt.UUID == id {
			if rt.UUID == "" {
				rt.UUID = key
			}
			if err := s.putResourceType(ctx, rt); err != nil {
				return err
			}
			s.console.Printf("Imported resource type %s.", rt.Name)
			return nil
		}
	}
	return fmt.Errorf("resource type %q not found in %s", id, file)
}

// ImportResourceTypeByName imports the resource type named name from file.
func (s *Service) ImportResourceTypeByName(ctx context.Context, name, file string) error {
	items, err := s.readResourceTypes(file)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(items) {
		if rt := items[key]; rt.Name == name {
			if rt.UUID == "" {
				rt.UUID = key
			}
			if err := s.putResourceType(ctx, rt); err != nil {
				return err
			}
			s.console.Printf("Imported resource type %s.", rt.Name)
			return nil
		}
	}
	return fmt.Errorf("resource type %q not found in %s", name, file)
}

// ImportResourceTypes imports every resource type in file. The first
// failure aborts the run.
func (s *Service) ImportResourceTypes(ctx context.Context, file string) error {
	items, err := s.readResourceTypes(file)
	if err != nil {
		return err
	}
	n, err := s.importAllResourceTypes(ctx, items)
	if err != nil {
		return err
	}
	s.console.Printf("Imported %d resource types.", n)
	return nil
}

// ImportResourceTypesSeparate imports every *.resourcetype.authz.json file
// in the working directory.
func (s *Service) ImportResourceTypesSeparate(ctx context.Context) error {
	files, err := filesWithSuffix(s.dir, ResourceTypeSuffix)
	if err != nil {
		return err
	}
	total := 0
	for _, f := range files {
		items, err := readExport[apiclient.ResourceType](f, resourceTypeKind)
		if err != nil {
			return err
		}
		n, err := s.importAllResourceTypes(ctx, items)
		if err != nil {
			return err
		}
		total += n
	}
	s.console.Printf("Imported %d resource types from %d files.", total, len(files))
	return nil
}

// ImportFirstResourceType imports the first resource type in file.
func (s *Service) ImportFirstResourceType(ctx context.Context, file string) error {
	items, err := s.readResourceTypes(file)
	if err != nil {
		return err
	}
	keys := sortedKeys(items)
	if len(keys) == 0 {
		return fmt.Errorf("%s contains no resource types", file)
	}
	rt := items[keys[0]]
	if rt.UUID == "" {
		rt.UUID = keys[0]
	}
	if err := s.putResourceType(ctx, rt); err != nil {
		return err
	}
	s.console.Printf("Imported resource type %s.", rt.Name)
	return nil
}

func (s *Service) importAllResourceTypes(ctx context.Context, items map[string]apiclient.ResourceType) (int, error) {
	for _, key := range sortedKeys(items) {
		rt := items[key]
		if rt.UUID == "" {
			rt.UUID = key
		}
		if err := s.putResourceType(ctx, rt); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}
