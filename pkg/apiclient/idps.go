package apiclient

import (
	"context"
	"errors"
	"net/url"
)

// SocialIdentityProvider is a social identity provider configuration. It is
// kept as a raw document so that export and import preserve every
// provider-specific field.
type SocialIdentityProvider map[string]any

// ID returns the provider id.
func (p SocialIdentityProvider) ID() string {
	id, _ := p["_id"].(string)
	return id
}

// TypeID returns the provider type, e.g. "googleConfig".
func (p SocialIdentityProvider) TypeID() string {
	t, _ := p["_type"].(map[string]any)
	id, _ := t["_id"].(string)
	return id
}

// TypeName returns the display name of the provider type.
func (p SocialIdentityProvider) TypeName() string {
	t, _ := p["_type"].(map[string]any)
	name, _ := t["name"].(string)
	return name
}

// Enabled reports whether the provider is enabled.
func (p SocialIdentityProvider) Enabled() bool {
	enabled, _ := p["enabled"].(bool)
	return enabled
}

func socialProvidersPath(realm string) string {
	return realmPath(realm) + "/realm-config/services/SocialIdentityProviders"
}

// ListSocialIdentityProviders returns every social provider in realm.
func (c *Client) ListSocialIdentityProviders(ctx context.Context, realm string) ([]SocialIdentityProvider, error) {
	var result queryResult[SocialIdentityProvider]
	if err := c.post(ctx, socialProvidersPath(realm)+"?_action=nextdescendents", apiVersionRealmConfig, struct{}{}, &result); err != nil {
		return nil, err
	}
	return result.Result, nil
}

// PutSocialIdentityProvider creates or replaces p.
func (c *Client) PutSocialIdentityProvider(ctx context.Context, realm string, p SocialIdentityProvider) (SocialIdentityProvider, error) {
	if p.ID() == "" || p.TypeID() == "" {
		return nil, errors.New("social identity provider requires _id and _type._id")
	}
	body := make(SocialIdentityProvider, len(p))
	for k, v := range p {
		if k == "_rev" {
			continue
		}
		body[k] = v
	}
	path := socialProvidersPath(realm) + "/" + url.PathEscape(p.TypeID()) + "/" + url.PathEscape(p.ID())
	out, err := updateResource[SocialIdentityProvider](ctx, c, path, apiVersionRealmConfig, body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
