package apiclient

import (
	"context"
	"strings"
)

// Realm is a realm definition from global configuration.
type Realm struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	ParentPath string   `json:"parentPath,omitempty"`
	Active     bool     `json:"active"`
	Aliases    []string `json:"aliases,omitempty"`
}

// Path returns the realm's full path, "/" for the root realm.
func (r Realm) Path() string {
	if r.ParentPath == "" {
		return "/"
	}
	if r.ParentPath == "/" {
		return "/" + r.Name
	}
	return strings.TrimRight(r.ParentPath, "/") + "/" + r.Name
}

// ListRealms returns every realm on the tenant.
func (c *Client) ListRealms(ctx context.Context) ([]Realm, error) {
	return queryResources[Realm](ctx, c, "/json/global-config/realms?_queryFilter=true", apiVersionGlobalConfig)
}
