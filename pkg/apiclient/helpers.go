package apiclient

import (
	"context"
	"net/url"
	"strings"
)

// Accept-API-Version values per endpoint family.
const (
	apiVersionAuthenticate  = "resource=2.0, protocol=1.0"
	apiVersionRealmConfig   = "protocol=2.0,resource=1.0"
	apiVersionGlobalConfig  = "protocol=2.0,resource=1.0"
	apiVersionSaml2         = "protocol=2.1,resource=1.0"
	apiVersionResourceTypes = "protocol=1.0,resource=1.0"
)

// realmPath maps a realm ("/", "alpha", "/alpha/sub") to its REST prefix,
// e.g. /json/realms/root/realms/alpha.
func realmPath(realm string) string {
	var b strings.Builder
	b.WriteString("/json/realms/root")
	for _, part := range strings.Split(strings.Trim(realm, "/"), "/") {
		if part == "" || part == "root" {
			continue
		}
		b.WriteString("/realms/")
		b.WriteString(url.PathEscape(part))
	}
	return b.String()
}

// queryFilter renders `field eq "value"` as an escaped _queryFilter
// parameter.
func queryFilter(field, value string) string {
	return "_queryFilter=" + url.QueryEscape(field+` eq "`+strings.ReplaceAll(value, `"`, `\"`)+`"`)
}

// queryResult is the envelope of every query endpoint.
type queryResult[T any] struct {
	Result      []T `json:"result"`
	ResultCount int `json:"resultCount"`
}

// getResource performs a GET and decodes the body into a T.
func getResource[T any](ctx context.Context, c *Client, path, apiVersion string) (*T, error) {
	var result T
	if err := c.get(ctx, path, apiVersion, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// queryResources performs a GET against a query endpoint and returns the
// result list.
func queryResources[T any](ctx context.Context, c *Client, path, apiVersion string) ([]T, error) {
	var result queryResult[T]
	if err := c.get(ctx, path, apiVersion, &result); err != nil {
		return nil, err
	}
	return result.Result, nil
}

// createResource performs a POST and decodes the body into a T.
func createResource[T any](ctx context.Context, c *Client, path, apiVersion string, body any) (*T, error) {
	var result T
	if err := c.post(ctx, path, apiVersion, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// updateResource performs a PUT and decodes the body into a T.
func updateResource[T any](ctx context.Context, c *Client, path, apiVersion string, body any) (*T, error) {
	var result T
	if err := c.put(ctx, path, apiVersion, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// deleteResource performs a DELETE.
func deleteResource(ctx context.Context, c *Client, path, apiVersion string) error {
	return c.delete(ctx, path, apiVersion, nil)
}
