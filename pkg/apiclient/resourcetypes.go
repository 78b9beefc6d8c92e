package apiclient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ResourceType is an authorization resource type: a set of URL patterns and
// the actions policies may grant on them.
type ResourceType struct {
	UUID             string          `json:"uuid"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Patterns         []string        `json:"patterns"`
	Actions          map[string]bool `json:"actions"`
	CreatedBy        string          `json:"createdBy,omitempty"`
	CreationDate     int64           `json:"creationDate,omitempty"`
	LastModifiedBy   string          `json:"lastModifiedBy,omitempty"`
	LastModifiedDate int64           `json:"lastModifiedDate,omitempty"`
}

// ValidateResourceTypeID checks that id is a UUID.
func ValidateResourceTypeID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid resource type id %q: %w", id, err)
	}
	return nil
}

func resourceTypesPath(realm string) string {
	return realmPath(realm) + "/resourcetypes"
}

func resourceTypePath(realm, id string) (string, error) {
	if err := ValidateResourceTypeID(id); err != nil {
		return "", err
	}
	return resourceTypesPath(realm) + "/" + id, nil
}

// ListResourceTypes returns every resource type in realm.
func (c *Client) ListResourceTypes(ctx context.Context, realm string) ([]ResourceType, error) {
	return queryResources[ResourceType](ctx, c, resourceTypesPath(realm)+"?_queryFilter=true", apiVersionResourceTypes)
}

// GetResourceType returns the resource type with the given uuid.
func (c *Client) GetResourceType(ctx context.Context, realm, id string) (*ResourceType, error) {
	path, err := resourceTypePath(realm, id)
	if err != nil {
		return nil, err
	}
	return getResource[ResourceType](ctx, c, path, apiVersionResourceTypes)
}

// GetResourceTypeByName returns the resource type named name or an error
// wrapping ErrNotFound.
func (c *Client) GetResourceTypeByName(ctx context.Context, realm, name string) (*ResourceType, error) {
	types, err := queryResources[ResourceType](ctx, c, resourceTypesPath(realm)+"?"+queryFilter("name", name), apiVersionResourceTypes)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("resource type %q %w in realm %q", name, ErrNotFound, realm)
	}
	return &types[0], nil
}

// CreateResourceType creates rt and returns the stored version.
func (c *Client) CreateResourceType(ctx context.Context, realm string, rt *ResourceType) (*ResourceType, error) {
	return createResource[ResourceType](ctx, c, resourceTypesPath(realm)+"?_action=create", apiVersionResourceTypes, rt)
}

// PutResourceType creates or replaces the resource type rt.UUID.
func (c *Client) PutResourceType(ctx context.Context, realm string, rt *ResourceType) (*ResourceType, error) {
	path, err := resourceTypePath(realm, rt.UUID)
	if err != nil {
		return nil, err
	}
	return updateResource[ResourceType](ctx, c, path, apiVersionResourceTypes, rt)
}

// DeleteResourceType deletes the resource type with the given uuid.
func (c *Client) DeleteResourceType(ctx context.Context, realm, id string) error {
	path, err := resourceTypePath(realm, id)
	if err != nil {
		return err
	}
	return deleteResource(ctx, c, path, apiVersionResourceTypes)
}
